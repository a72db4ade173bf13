package analytics

import (
	"time"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// Period is a bounded date range, inclusive on both ends. An Open period
// has no lower bound (entire history).
type Period struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Open  bool      `json:"open,omitempty"`
}

// Contains reports whether the date falls within the period, boundaries
// included.
func (p Period) Contains(t time.Time) bool {
	if t.After(p.End) {
		return false
	}
	if p.Open {
		return true
	}
	return !t.Before(p.Start)
}

// EndMonth returns the normalized month of the period's last day, the
// point in time stock values are matched against.
func (p Period) EndMonth() time.Time {
	return domain.NormalizeMonth(p.End)
}

// Periods holds the resolved current window and, when the selector defines
// one, the immediately preceding comparison window.
type Periods struct {
	Current    Period  `json:"current"`
	Comparison *Period `json:"comparison,omitempty"`
}

// Resolve computes the current and comparison date ranges for a reference
// date and range selector. Boundaries are calendar-month based, so "this
// month vs last month" matches user expectation rather than fixed 30-day
// windows. Resolution never fails: a comparison window with no data in it
// is still returned with valid boundaries, absence is detected downstream.
func Resolve(reference time.Time, sel RangeSelector) Periods {
	ref := truncateToDay(reference)

	switch sel {
	case YearToDate:
		current := Period{
			Start: time.Date(ref.Year(), time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   ref,
		}
		comparison := Period{
			Start: time.Date(ref.Year()-1, time.January, 1, 0, 0, 0, 0, time.UTC),
			End:   time.Date(ref.Year()-1, time.December, 31, 0, 0, 0, 0, time.UTC),
		}
		return Periods{Current: current, Comparison: &comparison}

	case Max:
		return Periods{Current: Period{End: ref, Open: true}}

	default:
		n := sel.months()
		if n == 0 {
			n = 1
		}
		currentStart := domain.NormalizeMonth(ref).AddDate(0, -(n - 1), 0)
		current := Period{
			Start: currentStart,
			End:   endOfMonth(ref),
		}
		comparison := Period{
			Start: currentStart.AddDate(0, -n, 0),
			End:   currentStart.AddDate(0, 0, -1),
		}
		return Periods{Current: current, Comparison: &comparison}
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfMonth(t time.Time) time.Time {
	return domain.NormalizeMonth(t).AddDate(0, 1, -1)
}
