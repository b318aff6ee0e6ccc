package search

import "testing"

// Each facet's buckets are half-open [Min, Max): the boundary value belongs
// to the upper bucket. These tables pin the exact published boundaries.
func TestBuckets_Boundaries(t *testing.T) {
	tests := []struct {
		facet string
		table []Bucket
		value float64
		want  string
	}{
		{"price", PriceBuckets, 0, "under-100k"},
		{"price", PriceBuckets, 99999, "under-100k"},
		{"price", PriceBuckets, 100000, "100k-200k"},
		{"price", PriceBuckets, 199999, "100k-200k"},
		{"price", PriceBuckets, 200000, "200k-300k"},
		{"price", PriceBuckets, 299999, "200k-300k"},
		{"price", PriceBuckets, 300000, "300k-500k"},
		{"price", PriceBuckets, 499999, "300k-500k"},
		{"price", PriceBuckets, 500000, "over-500k"},
		{"price", PriceBuckets, 2000000, "over-500k"},

		{"range", RangeBuckets, 49, "under-50km"},
		{"range", RangeBuckets, 50, "50-80km"},
		{"range", RangeBuckets, 79, "50-80km"},
		{"range", RangeBuckets, 80, "80-120km"},
		{"range", RangeBuckets, 119, "80-120km"},
		{"range", RangeBuckets, 120, "over-120km"},

		{"motor", MotorPowerBuckets, 999, "under-1kw"},
		{"motor", MotorPowerBuckets, 1000, "1-2kw"},
		{"motor", MotorPowerBuckets, 1999, "1-2kw"},
		{"motor", MotorPowerBuckets, 2000, "2-3kw"},
		{"motor", MotorPowerBuckets, 2999, "2-3kw"},
		{"motor", MotorPowerBuckets, 3000, "over-3kw"},

		{"speed", TopSpeedBuckets, 59, "under-60kmh"},
		{"speed", TopSpeedBuckets, 60, "60-70kmh"},
		{"speed", TopSpeedBuckets, 69, "60-70kmh"},
		{"speed", TopSpeedBuckets, 70, "70-80kmh"},
		{"speed", TopSpeedBuckets, 79, "70-80kmh"},
		{"speed", TopSpeedBuckets, 80, "over-80kmh"},

		{"weight", WeightBuckets, 89.9, "under-90kg"},
		{"weight", WeightBuckets, 90, "90-100kg"},
		{"weight", WeightBuckets, 99.9, "90-100kg"},
		{"weight", WeightBuckets, 100, "over-100kg"},
	}

	for _, tt := range tests {
		matched := ""
		for _, b := range tt.table {
			if b.Contains(tt.value) {
				if matched != "" {
					t.Errorf("%s value %v matched both %q and %q", tt.facet, tt.value, matched, b.Value)
				}
				matched = b.Value
			}
		}
		if matched != tt.want {
			t.Errorf("%s value %v matched %q, want %q", tt.facet, tt.value, matched, tt.want)
		}
	}
}

func TestBuckets_EveryValueFallsInExactlyOneBucket(t *testing.T) {
	tables := map[string][]Bucket{
		"price":  PriceBuckets,
		"range":  RangeBuckets,
		"motor":  MotorPowerBuckets,
		"speed":  TopSpeedBuckets,
		"weight": WeightBuckets,
	}

	probes := []float64{0, 1, 49.5, 50, 89, 99.99, 100, 500, 999, 5000, 100000, 750000}
	for facet, table := range tables {
		for _, v := range probes {
			count := 0
			for _, b := range table {
				if b.Contains(v) {
					count++
				}
			}
			if count != 1 {
				t.Errorf("%s: value %v falls in %d buckets, want exactly 1", facet, v, count)
			}
		}
	}
}
