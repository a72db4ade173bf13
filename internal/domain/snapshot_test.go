package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestNetWorthSnapshot_RecomputeTotal(t *testing.T) {
	s := &NetWorthSnapshot{
		Values: map[string]decimal.Decimal{
			"checking": decimal.NewFromInt(1200),
			"savings":  decimal.RequireFromString("8300.50"),
			"cash":     decimal.NewFromInt(-20),
		},
		Total: decimal.NewFromInt(999), // stale
	}

	s.RecomputeTotal()

	assert.True(t, s.Total.Equal(decimal.RequireFromString("9480.50")), "got %s", s.Total)
}

func TestNetWorthSnapshot_RecomputeTotal_Empty(t *testing.T) {
	s := &NetWorthSnapshot{}
	s.RecomputeTotal()
	assert.True(t, s.Total.IsZero())
}

func TestNormalizeMonth(t *testing.T) {
	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{
			"mid month",
			time.Date(2025, time.March, 14, 15, 9, 2, 6, time.UTC),
			time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"already normalized",
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			"last day of december",
			time.Date(2024, time.December, 31, 23, 59, 59, 0, time.UTC),
			time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeMonth(tt.in))
		})
	}
}
