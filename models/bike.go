package models

// ═══════════════════════════════════════════════════════════
// Catalog Models
// ═══════════════════════════════════════════════════════════

// Brand is a bike manufacturer as listed in the catalog fixtures.
type Brand struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	Country string `json:"country,omitempty"`
}

// BikeSpecs holds the technical sheet of a model. Optional fields use
// pointers (or the empty string) so "not published by the manufacturer"
// stays distinguishable from a real zero.
type BikeSpecs struct {
	MotorPowerW       int      `json:"motorPowerW"`
	TopSpeedKmh       int      `json:"topSpeedKmh"`
	RangeKm           int      `json:"rangeKm"`
	BatteryCapacityAh *float64 `json:"batteryCapacityAh,omitempty"`
	BatteryVoltageV   *int     `json:"batteryVoltageV,omitempty"`
	BatteryType       string   `json:"batteryType,omitempty"`
	ChargingTimeH     *float64 `json:"chargingTimeH,omitempty"`
	WeightKg          *float64 `json:"weightKg,omitempty"`
	WheelSizeIn       *float64 `json:"wheelSizeIn,omitempty"`
	Brakes            string   `json:"brakes,omitempty"`
}

// Price is the canonical MSRP entry. Amounts are whole rupees.
type Price struct {
	Currency  string `json:"currency"`
	MSRP      int    `json:"msrp"`
	UpdatedAt string `json:"updatedAt"`
}

// Bike is one catalog entry. Immutable once loaded.
type Bike struct {
	ID          string    `json:"id"`
	BrandID     string    `json:"brandId"`
	Brand       string    `json:"brand"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Specs       BikeSpecs `json:"specs"`
	Price       Price     `json:"price"`
	Images      []string  `json:"images,omitempty"`
	Description string    `json:"description,omitempty"`
}

// Dealer is a physical showroom carrying one or more brands.
type Dealer struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	City     string   `json:"city"`
	Phone    string   `json:"phone,omitempty"`
	WhatsApp string   `json:"whatsapp,omitempty"`
	Address  string   `json:"address,omitempty"`
	BrandIDs []string `json:"brandIds"`
}

// ═══════════════════════════════════════════════════════════
// Response Models
// ═══════════════════════════════════════════════════════════

// BrandWithCount decorates a brand with how many catalog models it has.
type BrandWithCount struct {
	Brand
	ModelCount int `json:"modelCount"`
}
