package analytics_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesteggapp/nestegg/internal/analytics"
)

func TestTopMovers(t *testing.T) {
	current := map[string]decimal.Decimal{
		"checking": dec("1200"),
		"savings":  dec("450"),
	}
	previous := map[string]decimal.Decimal{
		"checking": dec("1000"),
		"savings":  dec("500"),
	}

	got := analytics.TopMovers(current, previous, 2)

	require.Len(t, got.Increases, 1)
	assert.Equal(t, "checking", got.Increases[0].Key)
	assert.True(t, got.Increases[0].Delta.Equal(dec("200")))

	require.Len(t, got.Decreases, 1)
	assert.Equal(t, "savings", got.Decreases[0].Key)
	assert.True(t, got.Decreases[0].Delta.Equal(dec("-50")))
}

func TestTopMovers_MaterialityThreshold(t *testing.T) {
	current := map[string]decimal.Decimal{
		"noise-up":   dec("100.005"),
		"noise-down": dec("99.999"),
		"exactly":    dec("100.01"),
		"real":       dec("101"),
	}
	previous := map[string]decimal.Decimal{
		"noise-up":   dec("100"),
		"noise-down": dec("100"),
		"exactly":    dec("100"),
		"real":       dec("100"),
	}

	got := analytics.TopMovers(current, previous, 0)

	// Differences at or below 0.01 are noise, not meaningful change.
	require.Len(t, got.Increases, 1)
	assert.Equal(t, "real", got.Increases[0].Key)
	assert.Empty(t, got.Decreases)
}

func TestTopMovers_RankingAndTruncation(t *testing.T) {
	current := map[string]decimal.Decimal{
		"a": dec("310"), "b": dec("120"), "c": dec("105"),
		"d": dec("80"), "e": dec("40"), "f": dec("97"),
	}
	previous := map[string]decimal.Decimal{
		"a": dec("100"), "b": dec("100"), "c": dec("100"),
		"d": dec("100"), "e": dec("100"), "f": dec("100"),
	}

	got := analytics.TopMovers(current, previous, 2)

	// Increases descending by magnitude, truncated to n.
	require.Len(t, got.Increases, 2)
	assert.Equal(t, "a", got.Increases[0].Key)
	assert.Equal(t, "b", got.Increases[1].Key)

	// Decreases most negative first, truncated to n.
	require.Len(t, got.Decreases, 2)
	assert.Equal(t, "e", got.Decreases[0].Key)
	assert.Equal(t, "d", got.Decreases[1].Key)
}

func TestTopMovers_UnboundedWhenNNonPositive(t *testing.T) {
	current := map[string]decimal.Decimal{"a": dec("10"), "b": dec("20"), "c": dec("30")}
	previous := map[string]decimal.Decimal{}

	got := analytics.TopMovers(current, previous, -1)

	assert.Len(t, got.Increases, 3)
}

func TestTopMovers_KeysMissingFromEitherSide(t *testing.T) {
	current := map[string]decimal.Decimal{"new": dec("75")}
	previous := map[string]decimal.Decimal{"gone": dec("75")}

	got := analytics.TopMovers(current, previous, 2)

	require.Len(t, got.Increases, 1)
	assert.Equal(t, "new", got.Increases[0].Key)
	require.Len(t, got.Decreases, 1)
	assert.Equal(t, "gone", got.Decreases[0].Key)
	assert.True(t, got.Decreases[0].Delta.Equal(dec("-75")))
}

func TestTopMovers_Deterministic(t *testing.T) {
	// Equal deltas must rank identically on every call regardless of map
	// iteration order; ties break on the sorted key merge.
	current := map[string]decimal.Decimal{
		"zeta": dec("150"), "alpha": dec("150"), "mid": dec("150"),
	}
	previous := map[string]decimal.Decimal{
		"zeta": dec("100"), "alpha": dec("100"), "mid": dec("100"),
	}

	first := analytics.TopMovers(current, previous, 3)
	for range 20 {
		again := analytics.TopMovers(current, previous, 3)
		assert.Equal(t, first, again)
	}

	require.Len(t, first.Increases, 3)
	assert.Equal(t, "alpha", first.Increases[0].Key)
	assert.Equal(t, "mid", first.Increases[1].Key)
	assert.Equal(t, "zeta", first.Increases[2].Key)
}

func TestTopMovers_Invariants(t *testing.T) {
	current := map[string]decimal.Decimal{
		"a": dec("103.5"), "b": dec("96"), "c": dec("100.004"),
		"d": dec("112"), "e": dec("88.2"),
	}
	previous := map[string]decimal.Decimal{
		"a": dec("100"), "b": dec("100"), "c": dec("100"),
		"d": dec("100"), "e": dec("100"),
	}
	threshold := dec("0.01")

	got := analytics.TopMovers(current, previous, 0)

	for i, m := range got.Increases {
		assert.True(t, m.Delta.GreaterThan(threshold), "increase %s below threshold", m.Key)
		if i > 0 {
			assert.True(t, got.Increases[i-1].Delta.GreaterThanOrEqual(m.Delta), "increases not sorted")
		}
	}
	for i, m := range got.Decreases {
		assert.True(t, m.Delta.LessThan(threshold.Neg()), "decrease %s below threshold", m.Key)
		if i > 0 {
			assert.True(t, got.Decreases[i-1].Delta.LessThanOrEqual(m.Delta), "decreases not sorted")
		}
	}
}
