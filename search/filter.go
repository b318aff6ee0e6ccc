// Package search implements the catalog filtering and autocomplete engines.
// Everything here is a pure function over the in-memory catalog: no I/O, no
// retained state, safe to re-run on every keystroke.
package search

import (
	"strings"

	"github.com/halalsenpai/electricwheels/models"
)

// Selection is the active facet state. Values inside one facet are
// OR-combined; facets with at least one value are AND-combined with each
// other and with the free-text query.
type Selection struct {
	Brands       []string `json:"brands,omitempty"`
	PriceRanges  []string `json:"priceRanges,omitempty"`
	Ranges       []string `json:"ranges,omitempty"`
	BatteryTypes []string `json:"batteryTypes,omitempty"`
	MotorPower   []string `json:"motorPower,omitempty"`
	TopSpeed     []string `json:"topSpeed,omitempty"`
	Weight       []string `json:"weight,omitempty"`
	Brakes       []string `json:"brakes,omitempty"`
}

// Active reports whether any facet has a selected value.
func (s Selection) Active() bool {
	return len(s.Brands) > 0 || len(s.PriceRanges) > 0 || len(s.Ranges) > 0 ||
		len(s.BatteryTypes) > 0 || len(s.MotorPower) > 0 || len(s.TopSpeed) > 0 ||
		len(s.Weight) > 0 || len(s.Brakes) > 0
}

// Filter returns the bikes matching the query and every active facet,
// preserving catalog order. An empty query and empty selection return the
// catalog unchanged (in a fresh slice).
//
// A bike whose spec sheet omits a field fails any active facet on that
// field. That is deliberate: an unlisted weight must not sneak through a
// weight filter.
func Filter(bikes []models.Bike, query string, sel Selection) []models.Bike {
	out := make([]models.Bike, 0, len(bikes))
	q := strings.ToLower(strings.TrimSpace(query))

	for _, b := range bikes {
		if q != "" && !matchesQuery(b, q) {
			continue
		}
		if !matchesSelection(b, sel) {
			continue
		}
		out = append(out, b)
	}
	return out
}

// matchesQuery is a case-insensitive substring test against name, brand and
// description. A missing description simply contributes no match.
func matchesQuery(b models.Bike, q string) bool {
	return strings.Contains(strings.ToLower(b.Name), q) ||
		strings.Contains(strings.ToLower(b.Brand), q) ||
		(b.Description != "" && strings.Contains(strings.ToLower(b.Description), q))
}

func matchesSelection(b models.Bike, sel Selection) bool {
	if len(sel.Brands) > 0 && !containsString(sel.Brands, b.Brand) {
		return false
	}
	if len(sel.PriceRanges) > 0 &&
		!anyBucketContains(PriceBuckets, sel.PriceRanges, float64(b.Price.MSRP)) {
		return false
	}
	if len(sel.Ranges) > 0 {
		if b.Specs.RangeKm <= 0 ||
			!anyBucketContains(RangeBuckets, sel.Ranges, float64(b.Specs.RangeKm)) {
			return false
		}
	}
	if len(sel.BatteryTypes) > 0 {
		if b.Specs.BatteryType == "" || !containsString(sel.BatteryTypes, b.Specs.BatteryType) {
			return false
		}
	}
	if len(sel.MotorPower) > 0 &&
		!anyBucketContains(MotorPowerBuckets, sel.MotorPower, float64(b.Specs.MotorPowerW)) {
		return false
	}
	if len(sel.TopSpeed) > 0 &&
		!anyBucketContains(TopSpeedBuckets, sel.TopSpeed, float64(b.Specs.TopSpeedKmh)) {
		return false
	}
	if len(sel.Weight) > 0 {
		if b.Specs.WeightKg == nil ||
			!anyBucketContains(WeightBuckets, sel.Weight, *b.Specs.WeightKg) {
			return false
		}
	}
	if len(sel.Brakes) > 0 && !matchesBrakes(sel.Brakes, b.Specs.Brakes) {
		return false
	}
	return true
}

func matchesBrakes(selected []string, spec string) bool {
	if spec == "" {
		return false
	}
	for _, value := range selected {
		for _, opt := range BrakeOptions {
			if opt.Value == value && opt.Spec == spec {
				return true
			}
		}
	}
	return false
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
