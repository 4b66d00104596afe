// internal/core/domain/consolidation.go
package domain

// LocationResult records the outcome of a single per-location inventory
// correction during consolidation.
type LocationResult struct {
	LocationID string `json:"location_id"`
	Success    bool   `json:"success"`
	Reason     string `json:"reason,omitempty"`
}

// VariantResult records the outcome of consolidating one variant. Skipped
// variants (no inventory-item mapping) carry a warning instead of location
// results.
type VariantResult struct {
	VariantID string           `json:"variant_id"`
	SKU       string           `json:"sku"`
	Skipped   bool             `json:"skipped"`
	Warning   string           `json:"warning,omitempty"`
	Quantity  int              `json:"quantity"`
	Locations []LocationResult `json:"locations,omitempty"`
	Activated bool             `json:"activated"`
}

// Failed reports whether any per-location correction or the target
// activation failed for this variant.
func (r VariantResult) Failed() bool {
	if r.Skipped {
		return false
	}
	if !r.Activated {
		return true
	}
	for _, loc := range r.Locations {
		if !loc.Success {
			return true
		}
	}
	return false
}

// ConsolidationReport is the aggregated, per-item outcome of a
// consolidation batch. Partial failures are collected here rather than
// aborting the batch.
type ConsolidationReport struct {
	Shop             string          `json:"shop"`
	TargetLocationID string          `json:"target_location_id"`
	Variants         []VariantResult `json:"variants"`
}

// PartialFailures returns the results that did not fully converge.
func (r *ConsolidationReport) PartialFailures() []VariantResult {
	var failed []VariantResult
	for _, v := range r.Variants {
		if v.Failed() {
			failed = append(failed, v)
		}
	}
	return failed
}
