package schema

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Value parsing errors. Callers translate these into rule messages.
var (
	ErrEmptyValue      = errors.New("value is empty")
	ErrCurrencySymbol  = errors.New("value contains currency formatting")
	ErrLeadingPlus     = errors.New("value has a leading plus sign")
	ErrNotNumeric      = errors.New("value is not a valid decimal number")
	ErrTooManyDecimals = errors.New("value has more than two decimal places")
	ErrNegative        = errors.New("value is negative")
	ErrBadDate         = errors.New("value is not a recognized date")
)

// currencyRunes are formatting characters a numeric amount must not carry.
var currencyRunes = []string{"$", "€", "£", ",", " "}

// ParseAmount parses a monetary amount. The value must be a plain decimal
// with at most two fraction digits, no currency formatting, no grouping
// separators, and no leading plus sign.
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return decimal.Zero, ErrEmptyValue
	}
	for _, c := range currencyRunes {
		if strings.Contains(raw, c) {
			return decimal.Zero, ErrCurrencySymbol
		}
	}
	if strings.HasPrefix(raw, "+") {
		return decimal.Zero, ErrLeadingPlus
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotNumeric
	}
	if d.Exponent() < -2 {
		return decimal.Zero, ErrTooManyDecimals
	}
	return d, nil
}

// ParseNonNegativeAmount parses an amount and further rejects negatives.
func ParseNonNegativeAmount(s string) (decimal.Decimal, error) {
	d, err := ParseAmount(s)
	if err != nil {
		return decimal.Zero, err
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	return d, nil
}

// ParseDimension parses a non-negative physical dimension such as a
// storage height or width. Any decimal precision is accepted.
func ParseDimension(s string) (decimal.Decimal, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return decimal.Zero, ErrEmptyValue
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, ErrNotNumeric
	}
	if d.IsNegative() {
		return decimal.Zero, ErrNegative
	}
	return d, nil
}

// dateLayouts are the accepted schedule date forms, tried in order.
// Day-first is a fallback for feeds produced outside the US.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
}

// ParseDate parses a schedule date. Date-only forms are tried first,
// then ISO 8601 timestamps; the time portion is discarded.
func ParseDate(s string) (time.Time, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return time.Time{}, ErrEmptyValue
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return t.Truncate(24 * time.Hour), nil
	}
	return time.Time{}, ErrBadDate
}

// SplitValues splits a multi-valued element body on commas, newlines,
// and tabs, trimming whitespace and dropping empty entries.
func SplitValues(s string) []string {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// HasControlChars reports whether the text carries control characters
// other than tab, carriage return, and newline.
func HasControlChars(s string) bool {
	for _, r := range s {
		if r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
