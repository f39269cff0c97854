package http

import (
	"time"

	"github.com/printhaus/go-shop-finance/internal/models"
)

// DateOrToday parses a YYYY-MM-DD value in loc. A blank value means today in loc.
func DateOrToday(value string, loc *time.Location) (time.Time, error) {
	return models.ParseDate(value, loc, models.TruncateToDate(time.Now().In(loc)))
}
