package analytics

import (
	"sort"

	"github.com/shopspring/decimal"
)

// materialityThreshold filters floating-point-scale noise, not meaningful
// change: differences at or below 0.01 currency units are discarded.
var materialityThreshold = decimal.RequireFromString("0.01")

// Mover is an entity whose aggregate value changed materially between two
// periods.
type Mover struct {
	Key   string          `json:"key"`
	Name  string          `json:"name,omitempty"`
	Delta decimal.Decimal `json:"delta"`
}

// Movers holds the ranked increases and decreases between two periods.
type Movers struct {
	Increases []Mover `json:"increases"`
	Decreases []Mover `json:"decreases"`
}

// TopMovers computes the signed difference for every key present in either
// map, discards immaterial changes, and ranks the rest. Increases are
// sorted descending, decreases ascending (most negative first); each list
// is truncated to n entries, n <= 0 meaning unbounded. Keys are merged in
// sorted order and sorting is stable, so the result is deterministic and
// never depends on map iteration order.
func TopMovers(current, previous map[string]decimal.Decimal, n int) Movers {
	keys := make([]string, 0, len(current)+len(previous))
	seen := make(map[string]struct{}, len(current)+len(previous))
	for k := range current {
		keys = append(keys, k)
		seen[k] = struct{}{}
	}
	for k := range previous {
		if _, ok := seen[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var increases, decreases []Mover
	for _, k := range keys {
		diff := current[k].Sub(previous[k])
		if diff.Abs().LessThanOrEqual(materialityThreshold) {
			continue
		}
		m := Mover{Key: k, Delta: diff}
		if diff.IsPositive() {
			increases = append(increases, m)
		} else {
			decreases = append(decreases, m)
		}
	}

	sort.SliceStable(increases, func(i, j int) bool {
		return increases[i].Delta.GreaterThan(increases[j].Delta)
	})
	sort.SliceStable(decreases, func(i, j int) bool {
		return decreases[i].Delta.LessThan(decreases[j].Delta)
	})

	if n > 0 {
		if len(increases) > n {
			increases = increases[:n]
		}
		if len(decreases) > n {
			decreases = decreases[:n]
		}
	}

	return Movers{Increases: increases, Decreases: decreases}
}
