package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// EntryResponse represents a ledger entry in API responses.
type EntryResponse struct {
	ID                   string          `json:"id"`
	Kind                 string          `json:"kind"`
	Date                 string          `json:"date"`
	Amount               decimal.Decimal `json:"amount"`
	CategoryID           string          `json:"category_id,omitempty"`
	SourceAccountID      string          `json:"source_account_id,omitempty"`
	DestinationAccountID string          `json:"destination_account_id,omitempty"`
	Note                 string          `json:"note,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// EntryFromDomain converts a domain entry to a response.
func EntryFromDomain(e *domain.LedgerEntry) *EntryResponse {
	return &EntryResponse{
		ID:                   e.ID,
		Kind:                 string(e.Kind),
		Date:                 e.Date.Format(DateFormat),
		Amount:               e.Amount,
		CategoryID:           e.CategoryID,
		SourceAccountID:      e.SourceAccountID,
		DestinationAccountID: e.DestinationAccountID,
		Note:                 e.Note,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

// EntriesFromDomain converts domain entries to responses.
func EntriesFromDomain(entries []domain.LedgerEntry) []*EntryResponse {
	result := make([]*EntryResponse, len(entries))
	for i := range entries {
		result[i] = EntryFromDomain(&entries[i])
	}
	return result
}

// ListEntriesResponse wraps the full ledger.
type ListEntriesResponse struct {
	Entries []*EntryResponse `json:"entries"`
	Total   int              `json:"total"`
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		Name:      a.Name,
		Active:    a.Active,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i := range accounts {
		result[i] = AccountFromDomain(&accounts[i])
	}
	return result
}

// CategoryResponse represents a category in API responses.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CategoryFromDomain converts a domain category to a response.
func CategoryFromDomain(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:        c.ID,
		Name:      c.Name,
		Active:    c.Active,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// CategoriesFromDomain converts domain categories to responses.
func CategoriesFromDomain(categories []domain.Category) []*CategoryResponse {
	result := make([]*CategoryResponse, len(categories))
	for i := range categories {
		result[i] = CategoryFromDomain(&categories[i])
	}
	return result
}

// SnapshotResponse represents a net worth snapshot in API responses.
type SnapshotResponse struct {
	ID        string                     `json:"id"`
	Month     string                     `json:"month"`
	Values    map[string]decimal.Decimal `json:"values"`
	Total     decimal.Decimal            `json:"total"`
	CreatedAt time.Time                  `json:"created_at"`
	UpdatedAt time.Time                  `json:"updated_at"`
}

// SnapshotFromDomain converts a domain snapshot to a response.
func SnapshotFromDomain(s *domain.NetWorthSnapshot) *SnapshotResponse {
	return &SnapshotResponse{
		ID:        s.ID,
		Month:     s.Month.Format("2006-01"),
		Values:    s.Values,
		Total:     s.Total,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SnapshotsFromDomain converts domain snapshots to responses.
func SnapshotsFromDomain(snapshots []domain.NetWorthSnapshot) []*SnapshotResponse {
	result := make([]*SnapshotResponse, len(snapshots))
	for i := range snapshots {
		result[i] = SnapshotFromDomain(&snapshots[i])
	}
	return result
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
