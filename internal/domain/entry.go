package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind classifies a ledger entry.
type EntryKind string

const (
	KindIncome   EntryKind = "income"
	KindExpense  EntryKind = "expense"
	KindTransfer EntryKind = "transfer"
)

// Valid reports whether the kind is one of the known entry kinds.
func (k EntryKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindTransfer:
		return true
	}
	return false
}

// LedgerEntry represents a single manually recorded money movement.
// Income credits the destination account, expense debits the source
// account, and a transfer moves money between two tracked accounts.
type LedgerEntry struct {
	ID                   string
	Kind                 EntryKind
	Date                 time.Time
	Amount               decimal.Decimal
	CategoryID           string // empty for transfers and uncategorized entries
	SourceAccountID      string
	DestinationAccountID string
	Note                 string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsFlow reports whether the entry contributes to income/expense
// aggregation. Transfers are zero-sum across tracked accounts and are
// excluded from flow totals.
func (e *LedgerEntry) IsFlow() bool {
	return e.Kind == KindIncome || e.Kind == KindExpense
}
