package usecase

import (
	"context"
	"time"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// AccountUseCase handles account business logic.
type AccountUseCase struct {
	accountRepo AccountRepository
	idGen       IDGenerator
}

// NewAccountUseCase creates a new AccountUseCase.
func NewAccountUseCase(accountRepo AccountRepository, idGen IDGenerator) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		idGen:       idGen,
	}
}

// CreateAccount creates a new tracked account.
func (uc *AccountUseCase) CreateAccount(ctx context.Context, name string) (*domain.Account, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:        uc.idGen.Generate(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// GetAccount retrieves an account by ID.
func (uc *AccountUseCase) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return uc.accountRepo.GetByID(ctx, id)
}

// ListAccounts lists all accounts, archived included.
func (uc *AccountUseCase) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return uc.accountRepo.List(ctx)
}

// ArchiveAccount blocks the account from new record entry. Historical
// entries and snapshot values referencing it are untouched.
func (uc *AccountUseCase) ArchiveAccount(ctx context.Context, id string) error {
	return uc.setActive(ctx, id, false)
}

// RestoreAccount reactivates an archived account.
func (uc *AccountUseCase) RestoreAccount(ctx context.Context, id string) error {
	return uc.setActive(ctx, id, true)
}

func (uc *AccountUseCase) setActive(ctx context.Context, id string, active bool) error {
	if _, err := uc.accountRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.accountRepo.SetActive(ctx, id, active, time.Now().UTC())
}
