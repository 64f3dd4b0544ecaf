package entity

import (
	"math"
	"strconv"
	"strings"
)

// Charge is an optional monetary amount. An unapplied charge means "not
// applicable" and serializes as an empty field, which is distinct from a
// zero amount.
type Charge struct {
	Amount  float64
	Applied bool
}

// AppliedCharge returns a charge carrying the given amount.
func AppliedCharge(amount float64) Charge {
	return Charge{Amount: amount, Applied: true}
}

// Value returns the amount, or 0 when the charge is not applied.
func (c Charge) Value() float64 {
	if !c.Applied {
		return 0
	}
	return c.Amount
}

// String renders the charge for a report row.
func (c Charge) String() string {
	if !c.Applied {
		return ""
	}
	return formatFloat(c.Amount)
}

// ParseCharge interprets a report field as an optional charge. Blank or
// non-numeric input degrades to "not applied".
func ParseCharge(field string) Charge {
	trimmed := strings.TrimSpace(field)
	if trimmed == "" {
		return Charge{}
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return Charge{}
	}
	return AppliedCharge(amount)
}

// formatFloat renders a float in locale-invariant shortest decimal form.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func parseFloatOrZero(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseIntOrZero(field string) int {
	v, err := strconv.Atoi(strings.TrimSpace(field))
	if err != nil {
		return 0
	}
	return v
}

// roundCents rounds to two decimal places, half away from zero.
func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// roundMils rounds to three decimal places, half away from zero.
func roundMils(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// fieldAt returns the row field at index i, or fallback when the row is too
// short.
func fieldAt(row []string, i int, fallback string) string {
	if i < len(row) {
		return row[i]
	}
	return fallback
}
