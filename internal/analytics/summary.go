package analytics

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// DefaultTopMovers is the headline mover count.
const DefaultTopMovers = 2

// Input carries everything a summary computation depends on. The engine
// treats all of it as immutable; identical inputs always produce an
// identical PeriodSummary.
type Input struct {
	Entries    []domain.LedgerEntry
	Snapshots  []domain.NetWorthSnapshot
	Accounts   []domain.Account
	Categories []domain.Category

	// Reference anchors the analyzed window; callers step it backward and
	// forward one period at a time. Now only decides whether the current
	// window is the still-open live period.
	Reference time.Time
	Now       time.Time
	Selector  RangeSelector

	// LiveTotal is the caller-computed net worth fallback used when the
	// live period has no snapshot yet.
	LiveTotal decimal.Decimal

	// TopN bounds the headline mover lists; 0 means DefaultTopMovers,
	// negative means unbounded (detail views).
	TopN int
}

// Measure pairs a current and previous aggregate with their delta.
type Measure struct {
	Current  decimal.Decimal `json:"current"`
	Previous decimal.Decimal `json:"previous"`
	Delta    Delta           `json:"delta"`
}

func newMeasure(current, previous decimal.Decimal, hasBaseline bool) Measure {
	return Measure{
		Current:  current,
		Previous: previous,
		Delta:    NewDelta(current, previous, hasBaseline),
	}
}

// CategoryFlow is the per-category flow breakdown line.
type CategoryFlow struct {
	CategoryID string           `json:"category_id"`
	Name       string           `json:"name"`
	Kind       domain.EntryKind `json:"kind"`
	Measure
}

// AccountValue is the per-account stock breakdown line.
type AccountValue struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Measure
}

// PeriodSummary is the engine's sole output: a plain, immutable,
// serializable value recomputed fully on every call. It carries no
// behavior and no partial caching; memoization is a caller concern.
type PeriodSummary struct {
	Selector   RangeSelector `json:"selector"`
	Reference  time.Time     `json:"reference"`
	Current    Period        `json:"current_period"`
	Comparison *Period       `json:"comparison_period,omitempty"`
	LivePeriod bool          `json:"live_period"`

	// InsufficientData marks the first-time state (no snapshots ever
	// recorded) so the presentation layer can prompt instead of rendering
	// a misleadingly empty dashboard.
	InsufficientData bool `json:"insufficient_data"`

	NetWorth           Measure `json:"net_worth"`
	HasCurrentSnapshot bool    `json:"has_current_snapshot"`

	Income     Measure `json:"income"`
	Expense    Measure `json:"expense"`
	NetSavings Measure `json:"net_savings"`

	Categories []CategoryFlow `json:"categories"`
	Accounts   []AccountValue `json:"accounts"`

	AccountMovers  Movers `json:"account_movers"`
	CategoryMovers Movers `json:"category_movers"`

	Insight Insight `json:"insight"`
}

// Compute assembles the full period summary from its inputs. It is a pure
// function: no I/O, no clock reads beyond Input.Now, no mutation of the
// supplied slices and maps.
func Compute(in Input) PeriodSummary {
	periods := Resolve(in.Reference, in.Selector)
	live := isLivePeriod(periods.Current, in.Now)
	topN := in.TopN
	if topN == 0 {
		topN = DefaultTopMovers
	}

	summary := PeriodSummary{
		Selector:   in.Selector,
		Reference:  truncateToDay(in.Reference),
		Current:    periods.Current,
		Comparison: periods.Comparison,
		LivePeriod: live,
	}

	if !hasAnySnapshot(in.Snapshots) {
		// Zero snapshots ever recorded: nothing meaningful to compute.
		summary.InsufficientData = true
		summary.NetWorth = newMeasure(decimal.Zero, decimal.Zero, false)
		summary.Income = newMeasure(decimal.Zero, decimal.Zero, false)
		summary.Expense = newMeasure(decimal.Zero, decimal.Zero, false)
		summary.NetSavings = newMeasure(decimal.Zero, decimal.Zero, false)
		summary.Insight = evaluateInsight(signalSet{})
		return summary
	}

	// Flow aggregation.
	currentFlows := aggregateFlows(in.Entries, periods.Current)
	var comparisonFlows FlowTotals
	flowBaseline := false
	if periods.Comparison != nil {
		comparisonFlows = aggregateFlows(in.Entries, *periods.Comparison)
		flowBaseline = comparisonFlows.EntryCount > 0
	}

	summary.Income = newMeasure(currentFlows.Income, comparisonFlows.Income, flowBaseline)
	summary.Expense = newMeasure(currentFlows.Expense, comparisonFlows.Expense, flowBaseline)
	summary.NetSavings = newMeasure(currentFlows.NetSavings(), comparisonFlows.NetSavings(), flowBaseline)

	// Stock aggregation. The live period always carries a number: when no
	// snapshot exists yet the caller-supplied live total stands in,
	// flagged provisional via HasCurrentSnapshot.
	currentSnap, hasCurrentSnap := snapshotAt(in.Snapshots, periods.Current.EndMonth())
	summary.HasCurrentSnapshot = hasCurrentSnap

	currentTotal := decimal.Zero
	currentValues := map[string]decimal.Decimal{}
	hasCurrentStock := hasCurrentSnap
	switch {
	case hasCurrentSnap:
		currentTotal = currentSnap.Total
		currentValues = currentSnap.Values
	case live:
		currentTotal = in.LiveTotal
		hasCurrentStock = true
	}

	previousTotal := decimal.Zero
	previousValues := map[string]decimal.Decimal{}
	stockBaseline := false
	if periods.Comparison != nil {
		if prevSnap, ok := snapshotAt(in.Snapshots, periods.Comparison.EndMonth()); ok {
			previousTotal = prevSnap.Total
			previousValues = prevSnap.Values
			stockBaseline = true
		}
	}

	summary.NetWorth = newMeasure(currentTotal, previousTotal, stockBaseline)

	// Breakdowns and movers.
	names := displayNames(in.Accounts, in.Categories)
	summary.Accounts = accountBreakdown(currentValues, previousValues, stockBaseline, names)
	summary.Categories = categoryBreakdown(currentFlows, comparisonFlows, flowBaseline, names)
	summary.AccountMovers = namedMovers(TopMovers(currentValues, previousValues, topN), names)
	summary.CategoryMovers = namedMovers(TopMovers(currentFlows.ExpenseByCategory, comparisonFlows.ExpenseByCategory, topN), names)

	summary.Insight = evaluateInsight(signalSet{
		hasCurrentStock:    hasCurrentStock,
		livePeriod:         live,
		hasBaseline:        stockBaseline,
		wealthGrew:         summary.NetWorth.Delta.Absolute.IsPositive(),
		expensesDown:       summary.Expense.Delta.Percent.IsNegative(),
		netSavingsPositive: currentFlows.NetSavings().IsPositive(),
		overspent:          currentFlows.Expense.GreaterThan(currentFlows.Income),
	})

	return summary
}

// isLivePeriod reports whether the current window's final month is still
// the present (or a future) month. Snapshots are monthly, so a window
// whose last month has not closed yet cannot have a snapshot.
func isLivePeriod(current Period, now time.Time) bool {
	return !current.EndMonth().Before(domain.NormalizeMonth(now))
}

func hasAnySnapshot(snapshots []domain.NetWorthSnapshot) bool {
	for i := range snapshots {
		if !snapshots[i].Month.IsZero() {
			return true
		}
	}
	return false
}

func displayNames(accounts []domain.Account, categories []domain.Category) map[string]string {
	names := make(map[string]string, len(accounts)+len(categories)+1)
	for _, a := range accounts {
		names[a.ID] = a.Name
	}
	for _, c := range categories {
		names[c.ID] = c.Name
	}
	names[UnknownCategory] = "Uncategorized"
	return names
}

func accountBreakdown(current, previous map[string]decimal.Decimal, hasBaseline bool, names map[string]string) []AccountValue {
	keys := mergedKeys(current, previous)

	out := make([]AccountValue, 0, len(keys))
	for _, k := range keys {
		if !RelevantForPeriod(k, current, previous) {
			continue
		}
		out = append(out, AccountValue{
			AccountID: k,
			Name:      names[k],
			Measure:   newMeasure(current[k], previous[k], hasBaseline),
		})
	}
	return out
}

func categoryBreakdown(current, previous FlowTotals, hasBaseline bool, names map[string]string) []CategoryFlow {
	out := make([]CategoryFlow, 0,
		len(current.ExpenseByCategory)+len(current.IncomeByCategory))
	out = append(out, kindBreakdown(domain.KindExpense, current.ExpenseByCategory, previous.ExpenseByCategory, hasBaseline, names)...)
	out = append(out, kindBreakdown(domain.KindIncome, current.IncomeByCategory, previous.IncomeByCategory, hasBaseline, names)...)
	return out
}

func kindBreakdown(kind domain.EntryKind, current, previous map[string]decimal.Decimal, hasBaseline bool, names map[string]string) []CategoryFlow {
	keys := mergedKeys(current, previous)

	out := make([]CategoryFlow, 0, len(keys))
	for _, k := range keys {
		if !RelevantForPeriod(k, current, previous) {
			continue
		}
		out = append(out, CategoryFlow{
			CategoryID: k,
			Name:       names[k],
			Kind:       kind,
			Measure:    newMeasure(current[k], previous[k], hasBaseline),
		})
	}
	return out
}

// mergedKeys returns the sorted union of both key sets. Sorted merge keeps
// every breakdown and ranking independent of map iteration order.
func mergedKeys(current, previous map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(current)+len(previous))
	for k := range current {
		keys = append(keys, k)
	}
	for k := range previous {
		if _, ok := current[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func namedMovers(m Movers, names map[string]string) Movers {
	for i := range m.Increases {
		m.Increases[i].Name = names[m.Increases[i].Key]
	}
	for i := range m.Decreases {
		m.Decreases[i].Name = names[m.Decreases[i].Key]
	}
	return m
}
