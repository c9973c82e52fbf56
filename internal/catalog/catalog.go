// Package catalog holds the storefront's product data. The catalog is
// seeded with the demo inventory and read-only thereafter; it backs price
// lookups for the cart and stock validation for the ledger.
package catalog

import (
	"sync"

	"greenchain/internal/models"
)

// Catalog is a thread-safe product lookup.
type Catalog struct {
	mu       sync.RWMutex
	products map[string]models.Product
	names    []string // preserves presentation order
}

// NewCatalog creates a catalog seeded with the demo product range.
func NewCatalog() *Catalog {
	c := &Catalog{products: make(map[string]models.Product)}
	for _, p := range defaultProducts {
		c.products[p.Name] = p
		c.names = append(c.names, p.Name)
	}
	return c
}

// Lookup returns the product with the given name.
func (c *Catalog) Lookup(name string) (models.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[name]
	return p, ok
}

// Available returns the stock on hand for a product name. The second
// return value is false for unknown products.
func (c *Catalog) Available(name string) (int, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.products[name]
	if !ok {
		return 0, false
	}
	return p.Stock, true
}

// List returns the products in presentation order.
func (c *Catalog) List() []models.Product {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Product, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.products[name])
	}
	return out
}

var defaultProducts = []models.Product{
	{
		Name:          "vine tomatoes",
		UnitPrice:     8,
		Origin:        "Hebei farm",
		Stock:         120,
		CarbonKg:      0.4,
		DeliveryHours: 6,
		Description:   "Greenhouse-grown tomatoes picked the same morning they ship.",
	},
	{
		Name:          "organic cabbage",
		UnitPrice:     6,
		Origin:        "Shandong farm",
		Stock:         80,
		CarbonKg:      0.3,
		DeliveryHours: 5,
		Description:   "Certified organic napa cabbage from a rotating plot.",
	},
	{
		Name:          "new potatoes",
		UnitPrice:     5,
		Origin:        "Gansu farm",
		Stock:         200,
		CarbonKg:      0.2,
		DeliveryHours: 8,
	},
	{
		Name:          "purple eggplant",
		UnitPrice:     7,
		Origin:        "Henan farm",
		Stock:         64,
		CarbonKg:      0.35,
		DeliveryHours: 6,
	},
	{
		Name:          "mountain carrots",
		UnitPrice:     4,
		Origin:        "Shaanxi farm",
		Stock:         150,
		CarbonKg:      0.25,
		DeliveryHours: 7,
	},
	{
		Name:          "fresh chili peppers",
		UnitPrice:     6,
		Origin:        "Sichuan farm",
		Stock:         90,
		CarbonKg:      0.3,
		DeliveryHours: 6,
	},
}
