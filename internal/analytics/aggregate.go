package analytics

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// UnknownCategory is the stable bucket key for flow entries without a
// category reference.
const UnknownCategory = "unknown"

// FlowTotals holds income and expense sums over a period, grouped by
// category. Transfers are excluded: they are zero-sum across the user's
// own accounts and would distort the totals.
type FlowTotals struct {
	Income            decimal.Decimal            `json:"income"`
	Expense           decimal.Decimal            `json:"expense"`
	IncomeByCategory  map[string]decimal.Decimal `json:"income_by_category"`
	ExpenseByCategory map[string]decimal.Decimal `json:"expense_by_category"`

	// EntryCount distinguishes "no prior data" from "prior flows were
	// legitimately zero" when deltas are computed downstream.
	EntryCount int `json:"entry_count"`
}

// aggregateFlows sums flow entries within the period in a single pass.
// Malformed rows (zero date, negative amount) are skipped rather than
// surfaced: one bad historical record must never blank the whole summary.
func aggregateFlows(entries []domain.LedgerEntry, period Period) FlowTotals {
	totals := FlowTotals{
		Income:            decimal.Zero,
		Expense:           decimal.Zero,
		IncomeByCategory:  make(map[string]decimal.Decimal),
		ExpenseByCategory: make(map[string]decimal.Decimal),
	}

	for i := range entries {
		e := &entries[i]
		if !e.IsFlow() {
			continue
		}
		if e.Date.IsZero() || e.Amount.IsNegative() {
			continue // malformed record, zero contribution
		}
		if !period.Contains(truncateToDay(e.Date)) {
			continue
		}

		key := e.CategoryID
		if key == "" {
			key = UnknownCategory
		}

		switch e.Kind {
		case domain.KindIncome:
			totals.Income = totals.Income.Add(e.Amount)
			totals.IncomeByCategory[key] = totals.IncomeByCategory[key].Add(e.Amount)
		case domain.KindExpense:
			totals.Expense = totals.Expense.Add(e.Amount)
			totals.ExpenseByCategory[key] = totals.ExpenseByCategory[key].Add(e.Amount)
		}

		totals.EntryCount++
	}

	return totals
}

// NetSavings returns income minus expense for the period.
func (f FlowTotals) NetSavings() decimal.Decimal {
	return f.Income.Sub(f.Expense)
}

// snapshotAt locates the snapshot whose normalized month matches the
// target month. Snapshots with a zero month are malformed and ignored.
func snapshotAt(snapshots []domain.NetWorthSnapshot, month time.Time) (*domain.NetWorthSnapshot, bool) {
	for i := range snapshots {
		s := &snapshots[i]
		if s.Month.IsZero() {
			continue
		}
		if domain.NormalizeMonth(s.Month).Equal(month) {
			return s, true
		}
	}
	return nil, false
}
