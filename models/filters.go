package models

// FilterOption is one selectable value inside a facet, with a live count of
// catalog models matching it.
type FilterOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// FilterMetadata is the full facet option set for the storefront sidebar.
type FilterMetadata struct {
	Brands       []FilterOption `json:"brands"`
	PriceRanges  []FilterOption `json:"priceRanges"`
	Ranges       []FilterOption `json:"ranges"`
	BatteryTypes []FilterOption `json:"batteryTypes"`
	MotorPower   []FilterOption `json:"motorPower"`
	TopSpeed     []FilterOption `json:"topSpeed"`
	Weight       []FilterOption `json:"weight"`
	Brakes       []FilterOption `json:"brakes"`
}

// Suggestion is one search-bar autocomplete entry. Type is one of
// "brand", "model" or "feature" and only drives the display icon.
type Suggestion struct {
	Text  string `json:"text"`
	Type  string `json:"type"`
	Count int    `json:"count,omitempty"`
}
