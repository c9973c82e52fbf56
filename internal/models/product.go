package models

// Product describes one catalog item offered by the storefront
type Product struct {
	Name          string  `json:"name"`
	UnitPrice     float64 `json:"unit_price"`
	Origin        string  `json:"origin"`
	Stock         int     `json:"stock"`
	CarbonKg      float64 `json:"carbon_kg"`      // Carbon footprint per unit
	DeliveryHours int     `json:"delivery_hours"` // Estimated farm-to-door time
	Description   string  `json:"description,omitempty"`
}
