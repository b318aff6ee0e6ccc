package catalog

import (
	"testing"

	"github.com/halalsenpai/electricwheels/models"
	"github.com/halalsenpai/electricwheels/search"
)

func mustLoad(t *testing.T) *Store {
	t.Helper()
	s, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	return s
}

func TestLoad_Fixtures(t *testing.T) {
	s := mustLoad(t)

	if s.Len() == 0 {
		t.Fatal("catalog has no bikes")
	}
	if len(s.Brands()) == 0 {
		t.Fatal("catalog has no brands")
	}
	if len(s.Dealers("")) == 0 {
		t.Fatal("catalog has no dealers")
	}

	brandIDs := make(map[string]bool, len(s.Brands()))
	for _, br := range s.Brands() {
		brandIDs[br.ID] = true
	}
	for _, b := range s.Bikes() {
		if !brandIDs[b.BrandID] {
			t.Errorf("bike %q references unknown brand %q", b.ID, b.BrandID)
		}
	}
	for _, d := range s.Dealers("") {
		for _, id := range d.BrandIDs {
			if !brandIDs[id] {
				t.Errorf("dealer %q references unknown brand %q", d.ID, id)
			}
		}
	}
}

func TestStore_Lookups(t *testing.T) {
	s := mustLoad(t)

	b := s.ByID("evee-c1")
	if b == nil || b.Name != "Evee C1" {
		t.Fatalf("ByID(evee-c1) = %+v", b)
	}
	if got := s.BySlug(b.Slug); got == nil || got.ID != b.ID {
		t.Fatalf("BySlug(%q) did not round-trip to the same bike", b.Slug)
	}

	if s.ByID("no-such-bike") != nil {
		t.Error("ByID must return nil for unknown ids")
	}
	if s.BySlug("no-such-slug") != nil {
		t.Error("BySlug must return nil for unknown slugs")
	}
}

func TestStore_BrandsWithCounts(t *testing.T) {
	s := mustLoad(t)

	total := 0
	for _, bc := range s.BrandsWithCounts() {
		if bc.ModelCount <= 0 {
			t.Errorf("brand %q lists no models", bc.ID)
		}
		total += bc.ModelCount
	}
	if total != s.Len() {
		t.Fatalf("brand model counts sum to %d, want %d", total, s.Len())
	}
}

func TestStore_DealersByBrand(t *testing.T) {
	s := mustLoad(t)

	got := s.Dealers("b-vlektra")
	if len(got) == 0 {
		t.Fatal("no dealers carry Vlektra")
	}
	for _, d := range got {
		carries := false
		for _, id := range d.BrandIDs {
			if id == "b-vlektra" {
				carries = true
			}
		}
		if !carries {
			t.Errorf("dealer %q returned but does not carry the brand", d.ID)
		}
	}

	if len(s.Dealers("b-unknown")) != 0 {
		t.Error("unknown brand id should match no dealers")
	}
}

// The shipped fixtures must exercise every published filter bucket, so the
// storefront never renders a facet option that can't match anything.
func TestFixtures_CoverEveryBucket(t *testing.T) {
	s := mustLoad(t)

	covered := func(facet string, buckets []search.Bucket, value func(models.Bike) (float64, bool)) {
		for _, bucket := range buckets {
			hit := false
			for _, b := range s.Bikes() {
				if v, ok := value(b); ok && bucket.Contains(v) {
					hit = true
					break
				}
			}
			if !hit {
				t.Errorf("%s bucket %q matches no fixture bike", facet, bucket.Value)
			}
		}
	}

	covered("price", search.PriceBuckets, func(b models.Bike) (float64, bool) {
		return float64(b.Price.MSRP), true
	})
	covered("range", search.RangeBuckets, func(b models.Bike) (float64, bool) {
		return float64(b.Specs.RangeKm), b.Specs.RangeKm > 0
	})
	covered("motor", search.MotorPowerBuckets, func(b models.Bike) (float64, bool) {
		return float64(b.Specs.MotorPowerW), b.Specs.MotorPowerW > 0
	})
	covered("speed", search.TopSpeedBuckets, func(b models.Bike) (float64, bool) {
		return float64(b.Specs.TopSpeedKmh), b.Specs.TopSpeedKmh > 0
	})
	covered("weight", search.WeightBuckets, func(b models.Bike) (float64, bool) {
		if b.Specs.WeightKg == nil {
			return 0, false
		}
		return *b.Specs.WeightKg, true
	})
}

// At least one bike must be missing optional spec fields so the fail-closed
// filtering path stays exercised by real data.
func TestFixtures_IncludeIncompleteSpecSheets(t *testing.T) {
	s := mustLoad(t)

	missingWeight, missingBattery := false, false
	for _, b := range s.Bikes() {
		if b.Specs.WeightKg == nil {
			missingWeight = true
		}
		if b.Specs.BatteryType == "" {
			missingBattery = true
		}
	}
	if !missingWeight || !missingBattery {
		t.Error("fixtures should include bikes with incomplete spec sheets")
	}
}
