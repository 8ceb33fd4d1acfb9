package models

import "github.com/shopspring/decimal"

type MenuItem struct {
	Category string
	Name     string
	Price    decimal.Decimal
}

// Category is one section of the menu; Items keeps the display order.
type Category struct {
	Name  string
	Items []string
}

type PriceEntry struct {
	Name  string
	Price decimal.Decimal
}

// Location is a campus delivery drop-off point.
type Location struct {
	Name        string
	BaseMinutes int
}
