package services

import (
	"fmt"

	"dunn-delivery/models"

	"github.com/shopspring/decimal"
)

// Catalog holds the menu, price and delivery tables. It is built once by
// NewCatalog and never modified afterwards; accessors return copies.
type Catalog struct {
	categories []models.Category
	prices     []models.PriceEntry
	priceIndex map[string]int
	locations  []models.Location
	locIndex   map[string]int
}

// NewCatalog validates the tables and returns an immutable catalog.
// Every item listed in a category must have a price entry.
func NewCatalog(categories []models.Category, prices []models.PriceEntry, locations []models.Location) (*Catalog, error) {
	c := &Catalog{
		priceIndex: make(map[string]int, len(prices)),
		locIndex:   make(map[string]int, len(locations)),
	}

	for _, p := range prices {
		if p.Name == "" {
			return nil, fmt.Errorf("price entry name is required")
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("price for %q must be >= 0", p.Name)
		}
		if _, dup := c.priceIndex[p.Name]; dup {
			return nil, fmt.Errorf("duplicate price entry %q", p.Name)
		}
		c.priceIndex[p.Name] = len(c.prices)
		c.prices = append(c.prices, p)
	}

	seenCat := make(map[string]bool, len(categories))
	for _, cat := range categories {
		if cat.Name == "" {
			return nil, fmt.Errorf("category name is required")
		}
		if seenCat[cat.Name] {
			return nil, fmt.Errorf("duplicate category %q", cat.Name)
		}
		seenCat[cat.Name] = true
		for _, item := range cat.Items {
			if _, ok := c.priceIndex[item]; !ok {
				return nil, fmt.Errorf("category %q lists %q with no price: %w", cat.Name, item, ErrItemUnavailable)
			}
		}
		c.categories = append(c.categories, models.Category{
			Name:  cat.Name,
			Items: append([]string(nil), cat.Items...),
		})
	}

	for _, l := range locations {
		if l.Name == "" {
			return nil, fmt.Errorf("location name is required")
		}
		if l.BaseMinutes <= 0 {
			return nil, fmt.Errorf("base minutes for %q must be > 0", l.Name)
		}
		if _, dup := c.locIndex[l.Name]; dup {
			return nil, fmt.Errorf("duplicate location %q", l.Name)
		}
		c.locIndex[l.Name] = len(c.locations)
		c.locations = append(c.locations, l)
	}
	return c, nil
}

// DefaultCatalog returns the campus menu.
func DefaultCatalog() *Catalog {
	p := decimal.RequireFromString
	c, err := NewCatalog(
		[]models.Category{
			{Name: "Energy Drinks", Items: []string{"Monster", "Rockstar"}},
			{Name: "Coffee Drinks", Items: []string{"Latte", "Cappuccino", "Peppermint Hot Mocha", "Caramel Macchiato", "Iced Shaken Espresso"}},
			{Name: "Breakfast", Items: []string{"Bagel", "Muffin", "Scone"}},
			{Name: "Lunch", Items: []string{"Falafel Wrap", "Hummus & Pita", "Chicken Wrap"}},
		},
		[]models.PriceEntry{
			{Name: "Monster", Price: p("3.99")},
			{Name: "Rockstar", Price: p("3.99")},
			{Name: "Latte", Price: p("4.99")},
			{Name: "Cappuccino", Price: p("4.99")},
			{Name: "Peppermint Hot Mocha", Price: p("4.99")},
			{Name: "Caramel Macchiato", Price: p("3.99")},
			{Name: "Iced Shaken Espresso", Price: p("5.99")},
			{Name: "Bagel", Price: p("2.99")},
			{Name: "Muffin", Price: p("2.99")},
			{Name: "Scone", Price: p("2.99")},
			{Name: "Falafel Wrap", Price: p("8.99")},
			{Name: "Hummus & Pita", Price: p("7.99")},
			{Name: "Chicken Wrap", Price: p("8.99")},
		},
		[]models.Location{
			{Name: "Library", BaseMinutes: 10},
			{Name: "Academic Success Center", BaseMinutes: 8},
			{Name: "ITEC Computer Lab", BaseMinutes: 5},
		},
	)
	if err != nil {
		panic("default catalog: " + err.Error())
	}
	return c
}

// MenuCategory returns the items of one category in display order.
func (c *Catalog) MenuCategory(name string) ([]models.MenuItem, error) {
	for _, cat := range c.categories {
		if cat.Name == name {
			return c.categoryItems(cat), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Menu returns every category's items, categories in declaration order.
func (c *Catalog) Menu() []models.MenuItem {
	var items []models.MenuItem
	for _, cat := range c.categories {
		items = append(items, c.categoryItems(cat)...)
	}
	return items
}

func (c *Catalog) categoryItems(cat models.Category) []models.MenuItem {
	items := make([]models.MenuItem, 0, len(cat.Items))
	for _, name := range cat.Items {
		items = append(items, models.MenuItem{
			Category: cat.Name,
			Name:     name,
			Price:    c.prices[c.priceIndex[name]].Price,
		})
	}
	return items
}

func (c *Catalog) Price(item string) (decimal.Decimal, bool) {
	i, ok := c.priceIndex[item]
	if !ok {
		return decimal.Decimal{}, false
	}
	return c.prices[i].Price, true
}

func (c *Catalog) HasItem(item string) bool {
	_, ok := c.priceIndex[item]
	return ok
}

// ValidateItems reports the first item missing from the price table.
func (c *Catalog) ValidateItems(items []string) error {
	for _, item := range items {
		if !c.HasItem(item) {
			return fmt.Errorf("%w: %q", ErrItemUnavailable, item)
		}
	}
	return nil
}

func (c *Catalog) Locations() []models.Location {
	return append([]models.Location(nil), c.locations...)
}

func (c *Catalog) Location(name string) (models.Location, bool) {
	i, ok := c.locIndex[name]
	if !ok {
		return models.Location{}, false
	}
	return c.locations[i], true
}

// SearchByMaxPrice returns items priced at or below maxPrice, in price-table order.
func (c *Catalog) SearchByMaxPrice(maxPrice decimal.Decimal) []models.MenuItem {
	var found []models.MenuItem
	for _, p := range c.prices {
		if p.Price.LessThanOrEqual(maxPrice) {
			found = append(found, models.MenuItem{Category: c.categoryOf(p.Name), Name: p.Name, Price: p.Price})
		}
	}
	return found
}

func (c *Catalog) categoryOf(item string) string {
	for _, cat := range c.categories {
		for _, name := range cat.Items {
			if name == item {
				return cat.Name
			}
		}
	}
	return ""
}
