package services

import (
	"errors"
	"testing"

	"dunn-delivery/config"
	"dunn-delivery/models"

	"github.com/shopspring/decimal"
)

func newTestCalculator() *Calculator {
	cfg := config.Default()
	return NewCalculator(DefaultCatalog(), cfg.Pricing, cfg.Delivery)
}

func TestCalculateTotal(t *testing.T) {
	calc := newTestCalculator()
	tests := []struct {
		name         string
		items        []string
		student      bool
		priority     bool
		wantSubtotal string
		wantTotal    string
		wantDiscount bool
	}{
		{"plain sum", []string{"Latte", "Bagel"}, false, false, "7.98", "7.98", false},
		{"student under threshold", []string{"Latte", "Bagel"}, true, false, "7.98", "7.98", false},
		{"student over threshold", []string{"Falafel Wrap", "Latte"}, true, false, "13.98", "12.58", true},
		{"no student id over threshold", []string{"Falafel Wrap", "Latte"}, false, false, "13.98", "13.98", false},
		{"priority only", []string{"Latte", "Bagel"}, false, true, "7.98", "9.98", false},
		{"student and priority", []string{"Falafel Wrap", "Latte"}, true, true, "13.98", "14.58", true},
		{"empty order", nil, true, false, "0.00", "0.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := calc.CalculateTotal(tt.items, tt.student, tt.priority)
			if err != nil {
				t.Fatalf("CalculateTotal: %v", err)
			}
			if got := FormatMoney(q.Subtotal); got != tt.wantSubtotal {
				t.Errorf("subtotal = %s, want %s", got, tt.wantSubtotal)
			}
			if got := FormatMoney(q.Total); got != tt.wantTotal {
				t.Errorf("total = %s, want %s", got, tt.wantTotal)
			}
			if q.DiscountApplied != tt.wantDiscount {
				t.Errorf("DiscountApplied = %v, want %v", q.DiscountApplied, tt.wantDiscount)
			}
		})
	}
}

func TestCalculateTotalExactArithmetic(t *testing.T) {
	calc := newTestCalculator()
	q, err := calc.CalculateTotal([]string{"Falafel Wrap", "Latte"}, true, true)
	if err != nil {
		t.Fatalf("CalculateTotal: %v", err)
	}
	// 13.98 * 0.9 + 2.00
	want := decimal.RequireFromString("14.582")
	if !q.Total.Equal(want) {
		t.Errorf("total = %s, want %s", q.Total, want)
	}
	if !q.Discount.Equal(decimal.RequireFromString("1.398")) {
		t.Errorf("discount = %s, want 1.398", q.Discount)
	}
	if !q.Surcharge.Equal(decimal.NewFromInt(2)) {
		t.Errorf("surcharge = %s, want 2", q.Surcharge)
	}
}

func TestCalculateTotalThresholdIsStrict(t *testing.T) {
	cfg := config.Default()
	catalog, err := NewCatalog(nil, []models.PriceEntry{
		{Name: "Meal Deal", Price: decimal.RequireFromString("10.00")},
		{Name: "Big Meal Deal", Price: decimal.RequireFromString("10.01")},
	}, nil)
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	calc := NewCalculator(catalog, cfg.Pricing, cfg.Delivery)

	q, _ := calc.CalculateTotal([]string{"Meal Deal"}, true, false)
	if q.DiscountApplied {
		t.Error("discount applied at exactly the threshold")
	}
	q, _ = calc.CalculateTotal([]string{"Big Meal Deal"}, true, false)
	if !q.DiscountApplied {
		t.Error("discount not applied above the threshold")
	}
}

func TestCalculateTotalUnknownItem(t *testing.T) {
	calc := newTestCalculator()
	if _, err := calc.CalculateTotal([]string{"Latte", "Pizza"}, false, false); !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("err = %v, want ErrItemUnavailable", err)
	}
}

func TestEstimateDelivery(t *testing.T) {
	calc := newTestCalculator()
	tests := []struct {
		location string
		hour     int
		priority bool
		want     int
	}{
		{"Library", 9, false, 15},
		{"Library", 9, true, 15}, // peak ignores priority
		{"Library", 10, true, 15},
		{"Library", 11, false, 15},
		{"Library", 13, true, 15},
		{"Library", 14, true, 7},
		{"Library", 14, false, 10},
		{"Library", 8, false, 10},
		{"ITEC Computer Lab", 16, true, 2},
		{"ITEC Computer Lab", 12, true, 10},
		{"Academic Success Center", 0, true, 5},
		{"Academic Success Center", 23, false, 8},
	}
	for _, tt := range tests {
		got, err := calc.EstimateDelivery(tt.location, tt.hour, tt.priority)
		if err != nil {
			t.Fatalf("EstimateDelivery(%q, %d, %v): %v", tt.location, tt.hour, tt.priority, err)
		}
		if got != tt.want {
			t.Errorf("EstimateDelivery(%q, %d, %v) = %d, want %d", tt.location, tt.hour, tt.priority, got, tt.want)
		}
	}
}

func TestEstimateDeliveryMinimum(t *testing.T) {
	cfg := config.Default()
	catalog, err := NewCatalog(nil, nil, []models.Location{{Name: "Next Door", BaseMinutes: 2}})
	if err != nil {
		t.Fatalf("NewCatalog: %v", err)
	}
	calc := NewCalculator(catalog, cfg.Pricing, cfg.Delivery)
	got, _ := calc.EstimateDelivery("Next Door", 15, true)
	if got != 1 {
		t.Errorf("EstimateDelivery = %d, want 1", got)
	}
}

func TestEstimateDeliveryUnknownLocation(t *testing.T) {
	calc := newTestCalculator()
	if _, err := calc.EstimateDelivery("Stadium", 15, false); !errors.Is(err, ErrUnknownLocation) {
		t.Errorf("err = %v, want ErrUnknownLocation", err)
	}
}

func TestIsPeakHour(t *testing.T) {
	calc := newTestCalculator()
	peak := map[int]bool{9: true, 10: true, 11: true, 12: true, 13: true}
	for h := 0; h < 24; h++ {
		if got := calc.IsPeakHour(h); got != peak[h] {
			t.Errorf("calc.IsPeakHour(%d) = %v, want %v", h, got, peak[h])
		}
	}
}

func TestPrepareReceipt(t *testing.T) {
	calc := newTestCalculator()
	r, err := calc.PrepareReceipt(models.Order{
		ID:           "abc",
		Location:     "Library",
		Items:        []string{"Falafel Wrap", "Latte"},
		CurrentHour:  14,
		HasStudentID: true,
		Priority:     true,
	})
	if err != nil {
		t.Fatalf("PrepareReceipt: %v", err)
	}
	if r.DeliveryMinutes != 7 {
		t.Errorf("DeliveryMinutes = %d, want 7", r.DeliveryMinutes)
	}
	if len(r.Lines) != 2 || r.Lines[0].Name != "Falafel Wrap" || r.Lines[1].Category != "Coffee Drinks" {
		t.Errorf("unexpected lines: %+v", r.Lines)
	}
	if FormatMoney(r.Quote.Total) != "14.58" {
		t.Errorf("total = %s", FormatMoney(r.Quote.Total))
	}
}

func TestPrepareReceiptRejectsWholeOrder(t *testing.T) {
	calc := newTestCalculator()
	r, err := calc.PrepareReceipt(models.Order{Location: "Library", Items: []string{"Latte", "Pizza"}, CurrentHour: 14})
	if !errors.Is(err, ErrItemUnavailable) {
		t.Errorf("err = %v, want ErrItemUnavailable", err)
	}
	if r != nil {
		t.Error("expected no receipt")
	}

	if _, err := calc.PrepareReceipt(models.Order{Location: "Library", CurrentHour: 14}); !errors.Is(err, ErrEmptyOrder) {
		t.Errorf("err = %v, want ErrEmptyOrder", err)
	}
}

func TestCalculatorKeepsOwnPeakWindows(t *testing.T) {
	cfg := config.Default()
	calc := NewCalculator(DefaultCatalog(), cfg.Pricing, cfg.Delivery)
	cfg.Delivery.PeakWindows[0] = config.HourWindow{Start: 15, End: 16}

	if calc.IsPeakHour(15) {
		t.Error("calculator picked up a change made to the config after construction")
	}
	if !calc.IsPeakHour(9) {
		t.Error("IsPeakHour(9) = false, want true")
	}
}
