// internal/core/domain/rates.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is used when the rate request does not carry one.
const DefaultCurrency = "USD"

// ShippingRate is a single carrier-rate option in the commerce platform's
// callback wire format.
type ShippingRate struct {
	ServiceName     string `json:"service_name"`
	ServiceCode     string `json:"service_code"`
	Description     string `json:"description"`
	TotalPrice      string `json:"total_price"`
	Currency        string `json:"currency"`
	MinDeliveryDate string `json:"min_delivery_date"`
	MaxDeliveryDate string `json:"max_delivery_date"`
}

// rateTier is one row of the tier table. A tier applies when the total
// requested quantity is at least minItems.
type rateTier struct {
	serviceName string
	serviceCode string
	price       decimal.Decimal
	minDays     int
	maxDays     int
	minItems    int
	describe    func(totalItems int) string
}

var rateTiers = []rateTier{
	{
		serviceName: "Standard Delivery",
		serviceCode: "STANDARD",
		price:       decimal.Zero,
		minDays:     4,
		maxDays:     4,
		minItems:    1,
		describe: func(totalItems int) string {
			switch totalItems {
			case 1:
				return "Standard delivery for a single item"
			case 2:
				return "Standard delivery for two items"
			default:
				return "Standard delivery for multiple items"
			}
		},
	},
	{
		serviceName: "Moderate Delivery",
		serviceCode: "MODERATE",
		price:       decimal.NewFromInt(500),
		minDays:     2,
		maxDays:     3,
		minItems:    2,
		describe:    func(int) string { return "Moderately fast shipping" },
	},
	{
		serviceName: "Fast Delivery",
		serviceCode: "FAST",
		price:       decimal.NewFromInt(1000),
		minDays:     1,
		maxDays:     1,
		minItems:    3,
		describe:    func(int) string { return "Fastest available shipping" },
	},
}

// QuoteRates returns the ordered shipping options for the given total item
// quantity. It is deterministic for a fixed (totalItems, currency, today)
// triple. A non-positive quantity is a validation failure.
func QuoteRates(totalItems int, currency string, today time.Time) ([]ShippingRate, error) {
	if totalItems <= 0 {
		return nil, &ValidationError{Field: "rate.items", Reason: "total quantity must be positive"}
	}
	if currency == "" {
		currency = DefaultCurrency
	}

	daysFromNow := func(days int) string {
		return today.AddDate(0, 0, days).UTC().Format(time.RFC3339)
	}

	rates := make([]ShippingRate, 0, len(rateTiers))
	for _, tier := range rateTiers {
		if totalItems < tier.minItems {
			continue
		}
		rates = append(rates, ShippingRate{
			ServiceName:     tier.serviceName,
			ServiceCode:     tier.serviceCode,
			Description:     tier.describe(totalItems),
			TotalPrice:      tier.price.String(),
			Currency:        currency,
			MinDeliveryDate: daysFromNow(tier.minDays),
			MaxDeliveryDate: daysFromNow(tier.maxDays),
		})
	}
	return rates, nil
}
