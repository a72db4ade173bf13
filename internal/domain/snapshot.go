package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NetWorthSnapshot is a monthly point-in-time record of the value held in
// each tracked account. Month is always normalized to the first of the
// month at midnight UTC, one snapshot per month.
type NetWorthSnapshot struct {
	ID        string
	Month     time.Time
	Values    map[string]decimal.Decimal // account ID -> value
	Total     decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RecomputeTotal re-derives Total from Values. Use cases call this at save
// time so the stored invariant Total == sum(Values) always holds; readers
// consume Total as stored.
func (s *NetWorthSnapshot) RecomputeTotal() {
	total := decimal.Zero
	for _, v := range s.Values {
		total = total.Add(v)
	}
	s.Total = total
}

// NormalizeMonth truncates a date to the first of its month, midnight UTC.
func NormalizeMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
