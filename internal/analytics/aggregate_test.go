package analytics

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nesteggapp/nestegg/internal/domain"
)

func februaryPeriod() Period {
	return Period{
		Start: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC),
	}
}

func flowEntry(kind domain.EntryKind, date time.Time, amount, category string) domain.LedgerEntry {
	e := domain.LedgerEntry{
		Kind:   kind,
		Date:   date,
		Amount: decimal.RequireFromString(amount),
	}
	switch kind {
	case domain.KindIncome:
		e.DestinationAccountID = "acc-1"
		e.CategoryID = category
	case domain.KindExpense:
		e.SourceAccountID = "acc-1"
		e.CategoryID = category
	case domain.KindTransfer:
		e.SourceAccountID = "acc-1"
		e.DestinationAccountID = "acc-2"
	}
	return e
}

func TestAggregateFlows(t *testing.T) {
	feb10 := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)
	feb20 := time.Date(2025, time.February, 20, 0, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		flowEntry(domain.KindIncome, feb10, "2000", "salary"),
		flowEntry(domain.KindExpense, feb10, "300", "groceries"),
		flowEntry(domain.KindExpense, feb20, "150", "groceries"),
		flowEntry(domain.KindExpense, feb20, "80", ""),
	}

	got := aggregateFlows(entries, februaryPeriod())

	assert.True(t, got.Income.Equal(decimal.NewFromInt(2000)), "income %s", got.Income)
	assert.True(t, got.Expense.Equal(decimal.NewFromInt(530)), "expense %s", got.Expense)
	assert.True(t, got.ExpenseByCategory["groceries"].Equal(decimal.NewFromInt(450)))
	assert.True(t, got.ExpenseByCategory[UnknownCategory].Equal(decimal.NewFromInt(80)),
		"uncategorized entries bucket under the stable unknown key")
	assert.Equal(t, 4, got.EntryCount)
}

func TestAggregateFlows_ExcludesTransfers(t *testing.T) {
	feb10 := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		flowEntry(domain.KindIncome, feb10, "100", ""),
		flowEntry(domain.KindTransfer, feb10, "5000", ""),
	}

	got := aggregateFlows(entries, februaryPeriod())

	assert.True(t, got.Income.Equal(decimal.NewFromInt(100)))
	assert.True(t, got.Expense.IsZero())
	assert.Equal(t, 1, got.EntryCount)
}

func TestAggregateFlows_BoundariesInclusive(t *testing.T) {
	entries := []domain.LedgerEntry{
		flowEntry(domain.KindExpense, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), "10", ""),
		flowEntry(domain.KindExpense, time.Date(2025, time.February, 28, 23, 30, 0, 0, time.UTC), "20", ""),
		flowEntry(domain.KindExpense, time.Date(2025, time.January, 31, 0, 0, 0, 0, time.UTC), "40", ""),
		flowEntry(domain.KindExpense, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), "80", ""),
	}

	got := aggregateFlows(entries, februaryPeriod())

	assert.True(t, got.Expense.Equal(decimal.NewFromInt(30)), "expense %s", got.Expense)
}

func TestAggregateFlows_SkipsMalformedRecords(t *testing.T) {
	feb10 := time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

	entries := []domain.LedgerEntry{
		flowEntry(domain.KindExpense, feb10, "100", ""),
		// negative amount: malformed, contributes nothing
		flowEntry(domain.KindExpense, feb10, "-50", ""),
		// zero date: malformed, contributes nothing
		flowEntry(domain.KindExpense, time.Time{}, "75", ""),
	}

	got := aggregateFlows(entries, februaryPeriod())

	assert.True(t, got.Expense.Equal(decimal.NewFromInt(100)), "one bad row must not blank the total")
	assert.Equal(t, 1, got.EntryCount)
}

func TestAggregateFlows_OrderIndependent(t *testing.T) {
	feb := februaryPeriod()
	var entries []domain.LedgerEntry
	for i := range 50 {
		date := time.Date(2025, time.February, 1+i%28, 0, 0, 0, 0, time.UTC)
		kind := domain.KindExpense
		category := "a"
		if i%3 == 0 {
			kind = domain.KindIncome
			category = "b"
		}
		entries = append(entries, flowEntry(kind, date, decimal.NewFromInt(int64(i+1)).String(), category))
	}

	want := aggregateFlows(entries, feb)

	rng := rand.New(rand.NewSource(42))
	for range 10 {
		rng.Shuffle(len(entries), func(i, j int) {
			entries[i], entries[j] = entries[j], entries[i]
		})
		got := aggregateFlows(entries, feb)
		assert.True(t, got.Income.Equal(want.Income))
		assert.True(t, got.Expense.Equal(want.Expense))
		assert.Equal(t, want.EntryCount, got.EntryCount)
		for k, v := range want.ExpenseByCategory {
			assert.True(t, got.ExpenseByCategory[k].Equal(v))
		}
	}
}

func TestAggregateFlows_PerCategorySumsMatchTotals(t *testing.T) {
	feb := februaryPeriod()
	entries := []domain.LedgerEntry{
		flowEntry(domain.KindExpense, feb.Start, "12.34", "groceries"),
		flowEntry(domain.KindExpense, feb.Start, "56.78", "rent"),
		flowEntry(domain.KindExpense, feb.End, "9.10", ""),
		flowEntry(domain.KindIncome, feb.End, "1000", "salary"),
		flowEntry(domain.KindIncome, feb.End, "50", ""),
	}

	got := aggregateFlows(entries, feb)

	expenseSum := decimal.Zero
	for _, v := range got.ExpenseByCategory {
		expenseSum = expenseSum.Add(v)
	}
	incomeSum := decimal.Zero
	for _, v := range got.IncomeByCategory {
		incomeSum = incomeSum.Add(v)
	}

	assert.True(t, expenseSum.Equal(got.Expense), "per-category expense must sum to the combined total")
	assert.True(t, incomeSum.Equal(got.Income), "per-category income must sum to the combined total")
}

func TestSnapshotAt(t *testing.T) {
	snapshots := []domain.NetWorthSnapshot{
		{ID: "s1", Month: time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(10000)},
		{ID: "s2", Month: time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC), Total: decimal.NewFromInt(11000)},
		{ID: "bad"}, // zero month, ignored
	}

	got, ok := snapshotAt(snapshots, time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "s2", got.ID)

	_, ok = snapshotAt(snapshots, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}

func TestRelevantForPeriod(t *testing.T) {
	current := map[string]decimal.Decimal{"kept": decimal.NewFromInt(10), "flat": decimal.Zero}
	previous := map[string]decimal.Decimal{"gone": decimal.NewFromInt(5)}

	assert.True(t, RelevantForPeriod("kept", current, previous))
	assert.True(t, RelevantForPeriod("gone", current, previous), "archived entities with historical value stay relevant")
	assert.False(t, RelevantForPeriod("flat", current, previous))
	assert.False(t, RelevantForPeriod("absent", current, previous))
}
