package models

import "github.com/shopspring/decimal"

type Order struct {
	ID           string
	Location     string
	Items        []string
	CurrentHour  int
	HasStudentID bool
	Priority     bool
}

// Quote is the price breakdown of an order.
type Quote struct {
	Subtotal        decimal.Decimal
	Discount        decimal.Decimal // amount taken off the subtotal, zero when not applied
	Surcharge       decimal.Decimal // priority delivery fee, zero when not chosen
	Total           decimal.Decimal
	DiscountApplied bool
}

type Receipt struct {
	OrderID         string
	Location        string
	Lines           []MenuItem
	Quote           Quote
	Priority        bool
	DeliveryMinutes int
}
