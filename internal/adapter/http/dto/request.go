package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
	"github.com/nesteggapp/nestegg/internal/usecase"
)

// DateFormat is the wire format for entry and snapshot dates.
const DateFormat = "2006-01-02"

// CreateEntryRequest represents a request to record a ledger entry.
type CreateEntryRequest struct {
	Kind                 string          `json:"kind"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	CategoryID           string          `json:"category_id,omitempty"`
	SourceAccountID      string          `json:"source_account_id,omitempty"`
	DestinationAccountID string          `json:"destination_account_id,omitempty"`
	Note                 string          `json:"note,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateEntryRequest) ToUseCaseInput() (usecase.CreateEntryInput, error) {
	date, err := time.ParseInLocation(DateFormat, r.Date, time.UTC)
	if err != nil {
		return usecase.CreateEntryInput{}, domain.ErrInvalidDate
	}
	return usecase.CreateEntryInput{
		Kind:                 domain.EntryKind(r.Kind),
		Date:                 date,
		Amount:               r.Amount,
		CategoryID:           r.CategoryID,
		SourceAccountID:      r.SourceAccountID,
		DestinationAccountID: r.DestinationAccountID,
		Note:                 r.Note,
	}, nil
}

// CreateAccountRequest represents a request to create an account.
type CreateAccountRequest struct {
	Name string `json:"name"`
}

// CreateCategoryRequest represents a request to create a category.
type CreateCategoryRequest struct {
	Name string `json:"name"`
}

// SaveSnapshotRequest represents a request to record a monthly snapshot.
// Any date within the month addresses that month's snapshot.
type SaveSnapshotRequest struct {
	Date   string                     `json:"date"`
	Values map[string]decimal.Decimal `json:"values"`
}

// ToUseCaseInput converts to use case input.
func (r *SaveSnapshotRequest) ToUseCaseInput() (usecase.SaveSnapshotInput, error) {
	date, err := time.ParseInLocation(DateFormat, r.Date, time.UTC)
	if err != nil {
		return usecase.SaveSnapshotInput{}, domain.ErrInvalidDate
	}
	return usecase.SaveSnapshotInput{
		Date:   date,
		Values: r.Values,
	}, nil
}
