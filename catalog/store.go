// Package catalog loads the static bike/brand/dealer fixtures shipped with
// the binary and serves them as an immutable in-memory store. There is no
// database behind this service; the fixtures are the catalog.
package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/halalsenpai/electricwheels/models"
)

//go:embed data/*.json
var fixtures embed.FS

type Store struct {
	bikes   []models.Bike
	brands  []models.Brand
	dealers []models.Dealer
	byID    map[string]*models.Bike
	bySlug  map[string]*models.Bike
}

var (
	once         sync.Once
	defaultStore *Store
	loadErr      error
)

// Get returns the process-wide catalog, loading it on first use.
// The returned store and every slice it hands out are read-only.
func Get() *Store {
	once.Do(func() {
		defaultStore, loadErr = Load()
		if loadErr != nil {
			log.Fatalf("❌ Failed to load catalog fixtures: %v", loadErr)
		}
		log.Printf("✅ Catalog loaded: %d bikes, %d brands, %d dealers",
			len(defaultStore.bikes), len(defaultStore.brands), len(defaultStore.dealers))
	})
	return defaultStore
}

// Load parses and validates the embedded fixtures. Exposed separately from
// Get so the seed tool and tests can exercise validation directly.
func Load() (*Store, error) {
	s := &Store{
		byID:   make(map[string]*models.Bike),
		bySlug: make(map[string]*models.Bike),
	}

	if err := readFixture("data/brands.json", &s.brands); err != nil {
		return nil, err
	}
	if err := readFixture("data/bikes.json", &s.bikes); err != nil {
		return nil, err
	}
	if err := readFixture("data/dealers.json", &s.dealers); err != nil {
		return nil, err
	}

	for i := range s.bikes {
		b := &s.bikes[i]
		if err := validateBike(b); err != nil {
			return nil, err
		}
		if _, dup := s.byID[b.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate bike id %q", b.ID)
		}
		if _, dup := s.bySlug[b.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate bike slug %q", b.Slug)
		}
		s.byID[b.ID] = b
		s.bySlug[b.Slug] = b
	}

	return s, nil
}

func readFixture(name string, out any) error {
	raw, err := fixtures.ReadFile(name)
	if err != nil {
		return fmt.Errorf("catalog: read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("catalog: parse %s: %w", name, err)
	}
	return nil
}

func validateBike(b *models.Bike) error {
	if b.ID == "" || b.Slug == "" {
		return fmt.Errorf("catalog: bike %q missing id or slug", b.Name)
	}
	if b.Price.MSRP <= 0 {
		return fmt.Errorf("catalog: bike %q has non-positive msrp %d", b.ID, b.Price.MSRP)
	}
	if b.Specs.MotorPowerW < 0 || b.Specs.TopSpeedKmh < 0 || b.Specs.RangeKm < 0 {
		return fmt.Errorf("catalog: bike %q has negative spec values", b.ID)
	}
	for name, v := range map[string]*float64{
		"batteryCapacityAh": b.Specs.BatteryCapacityAh,
		"chargingTimeH":     b.Specs.ChargingTimeH,
		"weightKg":          b.Specs.WeightKg,
		"wheelSizeIn":       b.Specs.WheelSizeIn,
	} {
		if v != nil && *v < 0 {
			return fmt.Errorf("catalog: bike %q has negative %s", b.ID, name)
		}
	}
	return nil
}

// ─────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────

// Bikes returns every catalog entry in fixture order.
func (s *Store) Bikes() []models.Bike { return s.bikes }

func (s *Store) Brands() []models.Brand { return s.brands }

// BrandsWithCounts returns brands decorated with their model counts.
func (s *Store) BrandsWithCounts() []models.BrandWithCount {
	counts := make(map[string]int, len(s.brands))
	for i := range s.bikes {
		counts[s.bikes[i].BrandID]++
	}
	out := make([]models.BrandWithCount, 0, len(s.brands))
	for _, br := range s.brands {
		out = append(out, models.BrandWithCount{Brand: br, ModelCount: counts[br.ID]})
	}
	return out
}

// Dealers returns all dealers, or only those carrying brandID when set.
func (s *Store) Dealers(brandID string) []models.Dealer {
	if brandID == "" {
		return s.dealers
	}
	out := make([]models.Dealer, 0)
	for _, d := range s.dealers {
		for _, id := range d.BrandIDs {
			if id == brandID {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

// ByID returns the bike with the given id, or nil. Unknown ids are a normal
// not-found condition, never an error.
func (s *Store) ByID(id string) *models.Bike { return s.byID[id] }

// BySlug returns the bike with the given slug, or nil.
func (s *Store) BySlug(slug string) *models.Bike { return s.bySlug[slug] }

func (s *Store) Len() int { return len(s.bikes) }
