package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// SnapshotUseCase handles net worth snapshot business logic.
type SnapshotUseCase struct {
	snapshotRepo SnapshotRepository
	accountRepo  AccountRepository
	idGen        IDGenerator
	metrics      MetricsRecorder // optional
}

// NewSnapshotUseCase creates a new SnapshotUseCase. Metrics may be nil.
func NewSnapshotUseCase(snapshotRepo SnapshotRepository, accountRepo AccountRepository, idGen IDGenerator, metrics MetricsRecorder) *SnapshotUseCase {
	return &SnapshotUseCase{
		snapshotRepo: snapshotRepo,
		accountRepo:  accountRepo,
		idGen:        idGen,
		metrics:      metrics,
	}
}

// SaveSnapshotInput represents input for recording a monthly snapshot.
type SaveSnapshotInput struct {
	Date   time.Time
	Values map[string]decimal.Decimal
}

// SaveSnapshot upserts the snapshot for the month containing the given
// date. The total is always recomputed from the values at save time, so
// the stored invariant total == sum(values) can never go stale.
func (uc *SnapshotUseCase) SaveSnapshot(ctx context.Context, input SaveSnapshotInput) (*domain.NetWorthSnapshot, error) {
	if input.Date.IsZero() {
		return nil, domain.ErrInvalidDate
	}

	for accountID := range input.Values {
		if _, err := uc.accountRepo.GetByID(ctx, accountID); err != nil {
			return nil, err
		}
	}

	month := domain.NormalizeMonth(input.Date)
	now := time.Now().UTC()

	snapshot, err := uc.snapshotRepo.GetByMonth(ctx, month)
	switch {
	case err == nil:
		snapshot.Values = input.Values
		snapshot.UpdatedAt = now
	case errors.Is(err, domain.ErrSnapshotNotFound):
		snapshot = &domain.NetWorthSnapshot{
			ID:        uc.idGen.Generate(),
			Month:     month,
			Values:    input.Values,
			CreatedAt: now,
			UpdatedAt: now,
		}
	default:
		return nil, err
	}

	snapshot.RecomputeTotal()

	if err := uc.snapshotRepo.Upsert(ctx, snapshot); err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.SnapshotSaved()
	}

	return snapshot, nil
}

// GetSnapshot retrieves the snapshot for the month containing the date.
func (uc *SnapshotUseCase) GetSnapshot(ctx context.Context, date time.Time) (*domain.NetWorthSnapshot, error) {
	return uc.snapshotRepo.GetByMonth(ctx, domain.NormalizeMonth(date))
}

// ListSnapshots returns the full snapshot history.
func (uc *SnapshotUseCase) ListSnapshots(ctx context.Context) ([]domain.NetWorthSnapshot, error) {
	return uc.snapshotRepo.List(ctx)
}
