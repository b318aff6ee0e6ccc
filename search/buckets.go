package search

import "math"

// Bucket is one half-open numeric interval [Min, Max) within a facet.
// Max of +Inf marks the open-ended top bucket. The boundary values are the
// canonical ones used across the whole site; keep them in one place.
type Bucket struct {
	Value string
	Label string
	Min   float64
	Max   float64
}

// Contains reports whether v falls inside the bucket.
func (b Bucket) Contains(v float64) bool {
	return v >= b.Min && v < b.Max
}

var (
	// PriceBuckets partition MSRP in PKR.
	PriceBuckets = []Bucket{
		{Value: "under-100k", Label: "Under PKR 100K", Min: 0, Max: 100000},
		{Value: "100k-200k", Label: "PKR 100K - 200K", Min: 100000, Max: 200000},
		{Value: "200k-300k", Label: "PKR 200K - 300K", Min: 200000, Max: 300000},
		{Value: "300k-500k", Label: "PKR 300K - 500K", Min: 300000, Max: 500000},
		{Value: "over-500k", Label: "Over PKR 500K", Min: 500000, Max: math.Inf(1)},
	}

	// RangeBuckets partition claimed range in km.
	RangeBuckets = []Bucket{
		{Value: "under-50km", Label: "Under 50 km", Min: 0, Max: 50},
		{Value: "50-80km", Label: "50 - 80 km", Min: 50, Max: 80},
		{Value: "80-120km", Label: "80 - 120 km", Min: 80, Max: 120},
		{Value: "over-120km", Label: "Over 120 km", Min: 120, Max: math.Inf(1)},
	}

	// MotorPowerBuckets partition motor power in watts.
	MotorPowerBuckets = []Bucket{
		{Value: "under-1kw", Label: "Under 1kW", Min: 0, Max: 1000},
		{Value: "1-2kw", Label: "1kW - 2kW", Min: 1000, Max: 2000},
		{Value: "2-3kw", Label: "2kW - 3kW", Min: 2000, Max: 3000},
		{Value: "over-3kw", Label: "Over 3kW", Min: 3000, Max: math.Inf(1)},
	}

	// TopSpeedBuckets partition top speed in km/h.
	TopSpeedBuckets = []Bucket{
		{Value: "under-60kmh", Label: "Under 60 km/h", Min: 0, Max: 60},
		{Value: "60-70kmh", Label: "60 - 70 km/h", Min: 60, Max: 70},
		{Value: "70-80kmh", Label: "70 - 80 km/h", Min: 70, Max: 80},
		{Value: "over-80kmh", Label: "Over 80 km/h", Min: 80, Max: math.Inf(1)},
	}

	// WeightBuckets partition kerb weight in kg.
	WeightBuckets = []Bucket{
		{Value: "under-90kg", Label: "Under 90 kg", Min: 0, Max: 90},
		{Value: "90-100kg", Label: "90 - 100 kg", Min: 90, Max: 100},
		{Value: "over-100kg", Label: "Over 100 kg", Min: 100, Max: math.Inf(1)},
	}

	// BrakeOptions map facet tokens to the spec-sheet label they select on.
	BrakeOptions = []struct {
		Value string
		Label string
		Spec  string
	}{
		{Value: "drum", Label: "Drum Brakes", Spec: "Drum"},
		{Value: "disc", Label: "Disc Brakes", Spec: "Disc"},
	}
)

// bucketByValue resolves a selected token against a bucket table.
// Unknown tokens return false, matching nothing.
func bucketByValue(table []Bucket, value string) (Bucket, bool) {
	for _, b := range table {
		if b.Value == value {
			return b, true
		}
	}
	return Bucket{}, false
}

// anyBucketContains reports whether v falls in any of the selected buckets.
func anyBucketContains(table []Bucket, selected []string, v float64) bool {
	for _, value := range selected {
		if b, ok := bucketByValue(table, value); ok && b.Contains(v) {
			return true
		}
	}
	return false
}
