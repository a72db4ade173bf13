package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// EntryUseCase handles ledger entry business logic.
type EntryUseCase struct {
	entryRepo    EntryRepository
	accountRepo  AccountRepository
	categoryRepo CategoryRepository
	idGen        IDGenerator
	metrics      MetricsRecorder // optional
}

// NewEntryUseCase creates a new EntryUseCase. Metrics may be nil.
func NewEntryUseCase(entryRepo EntryRepository, accountRepo AccountRepository, categoryRepo CategoryRepository, idGen IDGenerator, metrics MetricsRecorder) *EntryUseCase {
	return &EntryUseCase{
		entryRepo:    entryRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// CreateEntryInput represents input for recording a ledger entry.
type CreateEntryInput struct {
	Kind                 domain.EntryKind
	Date                 time.Time
	Amount               decimal.Decimal
	CategoryID           string
	SourceAccountID      string
	DestinationAccountID string
	Note                 string
}

// CreateEntry records a new ledger entry. Archived accounts and categories
// reject new records; historical entries referencing them are untouched.
func (uc *EntryUseCase) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.LedgerEntry, error) {
	now := time.Now().UTC()

	entry := &domain.LedgerEntry{
		ID:                   uc.idGen.Generate(),
		Kind:                 input.Kind,
		Date:                 input.Date,
		Amount:               input.Amount,
		CategoryID:           input.CategoryID,
		SourceAccountID:      input.SourceAccountID,
		DestinationAccountID: input.DestinationAccountID,
		Note:                 input.Note,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, entry); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Create(ctx, entry); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.EntryCreated(string(entry.Kind))
	}

	return entry, nil
}

// UpdateEntry replaces the mutable fields of an existing entry.
func (uc *EntryUseCase) UpdateEntry(ctx context.Context, id string, input CreateEntryInput) (*domain.LedgerEntry, error) {
	entry, err := uc.entryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	entry.Kind = input.Kind
	entry.Date = input.Date
	entry.Amount = input.Amount
	entry.CategoryID = input.CategoryID
	entry.SourceAccountID = input.SourceAccountID
	entry.DestinationAccountID = input.DestinationAccountID
	entry.Note = input.Note
	entry.UpdatedAt = time.Now().UTC()

	if err := entry.Validate(); err != nil {
		return nil, err
	}
	if err := uc.checkReferences(ctx, entry); err != nil {
		return nil, err
	}

	if err := uc.entryRepo.Update(ctx, entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// DeleteEntry removes an entry from the ledger.
func (uc *EntryUseCase) DeleteEntry(ctx context.Context, id string) error {
	return uc.entryRepo.Delete(ctx, id)
}

// GetEntry retrieves an entry by ID.
func (uc *EntryUseCase) GetEntry(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	return uc.entryRepo.GetByID(ctx, id)
}

// ListEntries returns the full ledger.
func (uc *EntryUseCase) ListEntries(ctx context.Context) ([]domain.LedgerEntry, error) {
	return uc.entryRepo.List(ctx)
}

// checkReferences verifies that the accounts and category an entry points
// at exist and accept new records.
func (uc *EntryUseCase) checkReferences(ctx context.Context, entry *domain.LedgerEntry) error {
	for _, accountID := range []string{entry.SourceAccountID, entry.DestinationAccountID} {
		if accountID == "" {
			continue
		}
		account, err := uc.accountRepo.GetByID(ctx, accountID)
		if err != nil {
			return err
		}
		if !account.Active {
			return domain.ErrAccountArchived
		}
	}

	if entry.CategoryID != "" {
		category, err := uc.categoryRepo.GetByID(ctx, entry.CategoryID)
		if err != nil {
			return err
		}
		if !category.Active {
			return domain.ErrCategoryArchived
		}
	}

	return nil
}
