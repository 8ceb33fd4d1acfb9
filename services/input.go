package services

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseLocation requires an exact match against the delivery table.
func ParseLocation(c *Catalog, s string) (string, error) {
	if _, ok := c.Location(s); !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLocation, s)
	}
	return s, nil
}

func ParseHour(s string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || h < 0 || h > 23 {
		return 0, ErrInvalidHour
	}
	return h, nil
}

func ParseYesNo(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, nil
	case "no", "n":
		return false, nil
	}
	return false, ErrInvalidAnswer
}

const maxAmount = 1_000_000

// ParseMoney accepts plain amounts like "3", "3.50" or "$3.50" up to one
// million. Exponent forms are rejected.
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if strings.ContainsAny(s, "eE") {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() || d.GreaterThan(decimal.NewFromInt(maxAmount)) {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

func ParseRating(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrRatingNotNumber
	}
	if n < 1 || n > 5 {
		return 0, ErrRatingOutOfRange
	}
	return n, nil
}

// IsDone reports whether s ends item entry.
func IsDone(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "done")
}
