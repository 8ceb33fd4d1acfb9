package services

import (
	"dunn-delivery/lang"
	"dunn-delivery/models"

	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount with two decimals, rounding half away from zero.
func FormatMoney(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// BuildMenuText returns menu lines, with a header whenever the category changes.
func BuildMenuText(items []models.MenuItem) []string {
	var lines []string
	current := ""
	for i, it := range items {
		if i == 0 || it.Category != current {
			current = it.Category
			lines = append(lines, lang.T("menu_header", current))
		}
		lines = append(lines, lang.T("menu_line", it.Name, FormatMoney(it.Price)))
	}
	return lines
}

// BuildReceiptText returns the order summary lines. reductionMinutes is only
// used in the priority notice.
func BuildReceiptText(r *models.Receipt, reductionMinutes int) []string {
	lines := []string{lang.T("order_header")}
	if r.OrderID != "" {
		lines = append(lines, lang.T("order_id", r.OrderID))
	}
	lines = append(lines,
		lang.T("order_location", r.Location),
		lang.T("order_items"),
	)
	for _, it := range r.Lines {
		lines = append(lines, lang.T("order_line", it.Name, FormatMoney(it.Price)))
	}
	lines = append(lines, lang.T("order_subtotal", FormatMoney(r.Quote.Subtotal)))
	// Printed whenever the discount was taken, even if the priority fee
	// lifts the total back above the subtotal.
	if r.Quote.DiscountApplied {
		lines = append(lines, lang.T("order_discount"))
	}
	if r.Priority {
		lines = append(lines, lang.T("order_priority", FormatMoney(r.Quote.Surcharge), reductionMinutes))
	}
	lines = append(lines,
		lang.T("order_total", FormatMoney(r.Quote.Total)),
		lang.T("order_eta", r.DeliveryMinutes),
	)
	return lines
}

// BuildSearchText returns the budget search result lines.
func BuildSearchText(maxPrice decimal.Decimal, found []models.MenuItem) []string {
	lines := []string{lang.T("search_header", FormatMoney(maxPrice))}
	if len(found) == 0 {
		return append(lines, lang.T("search_none"))
	}
	for _, it := range found {
		lines = append(lines, lang.T("order_line", it.Name, FormatMoney(it.Price)))
	}
	return lines
}
