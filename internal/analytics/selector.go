package analytics

import (
	"fmt"
	"strings"
)

// RangeSelector names the analysis window the user picked.
type RangeSelector string

const (
	OneMonth    RangeSelector = "1M"
	ThreeMonths RangeSelector = "3M"
	SixMonths   RangeSelector = "6M"
	OneYear     RangeSelector = "1Y"
	YearToDate  RangeSelector = "YTD"
	Max         RangeSelector = "Max"
)

// Valid reports whether the selector is one of the known ranges.
func (s RangeSelector) Valid() bool {
	switch s {
	case OneMonth, ThreeMonths, SixMonths, OneYear, YearToDate, Max:
		return true
	}
	return false
}

// months returns the window length in calendar months for fixed-width
// selectors, 0 otherwise.
func (s RangeSelector) months() int {
	switch s {
	case OneMonth:
		return 1
	case ThreeMonths:
		return 3
	case SixMonths:
		return 6
	case OneYear:
		return 12
	}
	return 0
}

// ParseRangeSelector parses a user-supplied range selector.
func ParseRangeSelector(s string) (RangeSelector, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "1M":
		return OneMonth, nil
	case "3M":
		return ThreeMonths, nil
	case "6M":
		return SixMonths, nil
	case "1Y":
		return OneYear, nil
	case "YTD":
		return YearToDate, nil
	case "MAX":
		return Max, nil
	default:
		return "", fmt.Errorf("unknown range selector %q", s)
	}
}
