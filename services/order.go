package services

import (
	"fmt"

	"dunn-delivery/config"
	"dunn-delivery/models"

	"github.com/shopspring/decimal"
)

// Calculator prices orders and estimates delivery against one catalog.
type Calculator struct {
	catalog  *Catalog
	pricing  config.PricingConfig
	delivery config.DeliveryConfig
}

func NewCalculator(catalog *Catalog, pricing config.PricingConfig, delivery config.DeliveryConfig) *Calculator {
	delivery.PeakWindows = append([]config.HourWindow(nil), delivery.PeakWindows...)
	return &Calculator{catalog: catalog, pricing: pricing, delivery: delivery}
}

// IsPeakHour reports whether hour falls inside one of the peak windows.
func (c *Calculator) IsPeakHour(hour int) bool {
	for _, w := range c.delivery.PeakWindows {
		if hour >= w.Start && hour <= w.End {
			return true
		}
	}
	return false
}

func (c *Calculator) Catalog() *Catalog {
	return c.catalog
}

func (c *Calculator) PrioritySurcharge() decimal.Decimal {
	return c.pricing.PrioritySurcharge
}

func (c *Calculator) PriorityReductionMinutes() int {
	return c.delivery.PriorityReductionMinutes
}

// Subtotal sums the unit prices of items.
func (c *Calculator) Subtotal(items []string) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, item := range items {
		price, ok := c.catalog.Price(item)
		if !ok {
			return decimal.Zero, fmt.Errorf("%w: %q", ErrItemUnavailable, item)
		}
		sum = sum.Add(price)
	}
	return sum, nil
}

// CalculateTotal applies the student discount when the subtotal exceeds the
// threshold, then adds the priority surcharge on top of the discounted amount.
func (c *Calculator) CalculateTotal(items []string, hasStudentID, priority bool) (models.Quote, error) {
	subtotal, err := c.Subtotal(items)
	if err != nil {
		return models.Quote{}, err
	}

	q := models.Quote{Subtotal: subtotal, Total: subtotal}
	if hasStudentID && subtotal.GreaterThan(c.pricing.StudentDiscountThreshold) {
		q.Total = subtotal.Mul(decimal.NewFromInt(1).Sub(c.pricing.StudentDiscountRate))
		q.Discount = subtotal.Sub(q.Total)
		q.DiscountApplied = true
	}
	if priority {
		q.Surcharge = c.pricing.PrioritySurcharge
		q.Total = q.Total.Add(q.Surcharge)
	}
	return q, nil
}

// EstimateDelivery returns minutes to deliver to location. During peak hours
// the delay is added and the priority reduction is not applied.
func (c *Calculator) EstimateDelivery(location string, hour int, priority bool) (int, error) {
	loc, ok := c.catalog.Location(location)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLocation, location)
	}
	minutes := loc.BaseMinutes

	if c.IsPeakHour(hour) {
		return minutes + c.delivery.PeakDelayMinutes, nil
	}

	if priority {
		minutes -= c.delivery.PriorityReductionMinutes
		if minutes < c.delivery.MinMinutes {
			minutes = c.delivery.MinMinutes
		}
	}
	return minutes, nil
}

// PrepareReceipt validates the whole order before pricing it, so an order
// with an unavailable item produces no partial receipt.
func (c *Calculator) PrepareReceipt(o models.Order) (*models.Receipt, error) {
	if len(o.Items) == 0 {
		return nil, ErrEmptyOrder
	}
	if err := c.catalog.ValidateItems(o.Items); err != nil {
		return nil, err
	}

	quote, err := c.CalculateTotal(o.Items, o.HasStudentID, o.Priority)
	if err != nil {
		return nil, err
	}
	minutes, err := c.EstimateDelivery(o.Location, o.CurrentHour, o.Priority)
	if err != nil {
		return nil, err
	}

	lines := make([]models.MenuItem, 0, len(o.Items))
	for _, item := range o.Items {
		price, _ := c.catalog.Price(item)
		lines = append(lines, models.MenuItem{Category: c.catalog.categoryOf(item), Name: item, Price: price})
	}

	return &models.Receipt{
		OrderID:         o.ID,
		Location:        o.Location,
		Lines:           lines,
		Quote:           quote,
		Priority:        o.Priority,
		DeliveryMinutes: minutes,
	}, nil
}
