// internal/core/domain/rates_test.go
package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saiashu12/fulfillment-task/internal/core/domain"
)

func TestQuoteRates_TierTable(t *testing.T) {
	today := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		totalItems    int
		currency      string
		expectedCodes []string
		expectedPrice map[string]string
	}{
		{
			name:          "single_item_standard_only",
			totalItems:    1,
			currency:      "",
			expectedCodes: []string{"STANDARD"},
			expectedPrice: map[string]string{"STANDARD": "0"},
		},
		{
			name:          "two_items_adds_moderate",
			totalItems:    2,
			currency:      "EUR",
			expectedCodes: []string{"STANDARD", "MODERATE"},
			expectedPrice: map[string]string{"STANDARD": "0", "MODERATE": "500"},
		},
		{
			name:          "three_items_adds_fast",
			totalItems:    3,
			currency:      "USD",
			expectedCodes: []string{"STANDARD", "MODERATE", "FAST"},
			expectedPrice: map[string]string{"STANDARD": "0", "MODERATE": "500", "FAST": "1000"},
		},
		{
			name:          "ten_items_still_three_options",
			totalItems:    10,
			currency:      "USD",
			expectedCodes: []string{"STANDARD", "MODERATE", "FAST"},
			expectedPrice: map[string]string{"STANDARD": "0", "MODERATE": "500", "FAST": "1000"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rates, err := domain.QuoteRates(tt.totalItems, tt.currency, today)
			require.NoError(t, err)
			require.Len(t, rates, len(tt.expectedCodes))

			for i, code := range tt.expectedCodes {
				assert.Equal(t, code, rates[i].ServiceCode)
				assert.Equal(t, tt.expectedPrice[code], rates[i].TotalPrice)
			}
		})
	}
}

func TestQuoteRates_CurrencyDefaultsToUSD(t *testing.T) {
	today := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	rates, err := domain.QuoteRates(1, "", today)
	require.NoError(t, err)
	require.Len(t, rates, 1)

	assert.Equal(t, "Standard Delivery", rates[0].ServiceName)
	assert.Equal(t, "USD", rates[0].Currency)
	assert.Equal(t, "0", rates[0].TotalPrice)

	// Standard tier delivers in exactly four days.
	expected := today.AddDate(0, 0, 4).Format(time.RFC3339)
	assert.Equal(t, expected, rates[0].MinDeliveryDate)
	assert.Equal(t, expected, rates[0].MaxDeliveryDate)
}

func TestQuoteRates_RejectsNonPositiveQuantity(t *testing.T) {
	today := time.Now()

	for _, n := range []int{0, -1} {
		_, err := domain.QuoteRates(n, "USD", today)
		require.Error(t, err)

		var validation *domain.ValidationError
		assert.ErrorAs(t, err, &validation)
	}
}

func TestQuoteRates_Deterministic(t *testing.T) {
	today := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)

	first, err := domain.QuoteRates(5, "USD", today)
	require.NoError(t, err)
	second, err := domain.QuoteRates(5, "USD", today)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
