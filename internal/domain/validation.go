package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Validation errors
var (
	ErrInvalidName    = errors.New("invalid display name")
	ErrAmountTooLarge = errors.New("amount exceeds maximum allowed")
)

// Validation constants
const (
	MaxNameLength = 255
	MinNameLength = 1

	// MaxAmount bounds manually entered amounts; anything above this is a
	// typo, not a personal-finance record.
	MaxAmount = "1000000000"
)

func maxAmount() decimal.Decimal {
	d, _ := decimal.NewFromString(MaxAmount)
	return d
}

// ValidateName validates an account or category display name.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if len(name) < MinNameLength {
		return fmt.Errorf("%w: name is empty", ErrInvalidName)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidName, MaxNameLength)
	}

	return nil
}

// ValidateEntry validates a ledger entry before it is written.
// The engine never sees invalid entries through this path; historical rows
// that predate validation are skipped at aggregation time instead.
func (e *LedgerEntry) Validate() error {
	if !e.Kind.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidKind, e.Kind)
	}

	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if e.Amount.GreaterThan(maxAmount()) {
		return ErrAmountTooLarge
	}

	if e.Date.IsZero() {
		return ErrInvalidDate
	}

	switch e.Kind {
	case KindIncome:
		if e.DestinationAccountID == "" {
			return fmt.Errorf("%w: income needs a destination account", ErrMissingAccount)
		}
	case KindExpense:
		if e.SourceAccountID == "" {
			return fmt.Errorf("%w: expense needs a source account", ErrMissingAccount)
		}
	case KindTransfer:
		if e.SourceAccountID == "" || e.DestinationAccountID == "" {
			return fmt.Errorf("%w: transfer needs source and destination accounts", ErrMissingAccount)
		}
		if e.SourceAccountID == e.DestinationAccountID {
			return ErrSameAccount
		}
		if e.CategoryID != "" {
			return ErrTransferWithCategory
		}
	}

	return nil
}
