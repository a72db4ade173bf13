package usecase

import (
	"context"
	"time"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// CategoryUseCase handles category business logic.
type CategoryUseCase struct {
	categoryRepo CategoryRepository
	idGen        IDGenerator
}

// NewCategoryUseCase creates a new CategoryUseCase.
func NewCategoryUseCase(categoryRepo CategoryRepository, idGen IDGenerator) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		idGen:        idGen,
	}
}

// CreateCategory creates a new category.
func (uc *CategoryUseCase) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	if err := domain.ValidateName(name); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	category := &domain.Category{
		ID:        uc.idGen.Generate(),
		Name:      name,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

// ListCategories lists all categories, archived included.
func (uc *CategoryUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return uc.categoryRepo.List(ctx)
}

// ArchiveCategory blocks the category from new record entry.
func (uc *CategoryUseCase) ArchiveCategory(ctx context.Context, id string) error {
	return uc.setActive(ctx, id, false)
}

// RestoreCategory reactivates an archived category.
func (uc *CategoryUseCase) RestoreCategory(ctx context.Context, id string) error {
	return uc.setActive(ctx, id, true)
}

func (uc *CategoryUseCase) setActive(ctx context.Context, id string, active bool) error {
	if _, err := uc.categoryRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.categoryRepo.SetActive(ctx, id, active, time.Now().UTC())
}
