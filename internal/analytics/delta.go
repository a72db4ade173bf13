package analytics

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Delta is the absolute and percent variation between a current and a
// previous aggregate. HasBaseline is true only when a comparison-period
// value genuinely existed; a legitimate prior value of zero still counts
// as a baseline.
type Delta struct {
	Absolute    decimal.Decimal `json:"absolute"`
	Percent     decimal.Decimal `json:"percent"`
	HasBaseline bool            `json:"has_baseline"`
}

// NewDelta computes the variation from previous to current. The percent
// convention is deliberate: a zero previous value with non-zero current
// yields exactly +/-100 and two zeros yield 0, so NaN and infinities can
// never reach the presentation layer.
func NewDelta(current, previous decimal.Decimal, hasBaseline bool) Delta {
	absolute := current.Sub(previous)

	var percent decimal.Decimal
	switch {
	case !previous.IsZero():
		percent = absolute.Div(previous).Mul(hundred)
	case current.IsZero():
		percent = decimal.Zero
	case current.IsPositive():
		percent = hundred
	default:
		percent = hundred.Neg()
	}

	return Delta{
		Absolute:    absolute,
		Percent:     percent,
		HasBaseline: hasBaseline,
	}
}
