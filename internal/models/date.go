package models

import (
	"time"

	"github.com/printhaus/go-shop-finance/internal/common"
)

// FormatDate renders a date-only value, empty for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(common.DateFormatYYYYMMDD)
}

// ParseDate parses YYYY-MM-DD in loc. An empty string gives fallback.
func ParseDate(s string, loc *time.Location, fallback time.Time) (time.Time, error) {
	if s == "" {
		return fallback, nil
	}
	t, err := time.ParseInLocation(common.DateFormatYYYYMMDD, s, loc)
	if err != nil {
		return time.Time{}, common.ErrInvalidFormatDate
	}
	return t, nil
}
