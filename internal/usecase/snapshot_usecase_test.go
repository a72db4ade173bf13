package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nesteggapp/nestegg/internal/domain"
	"github.com/nesteggapp/nestegg/internal/usecase"
	"github.com/nesteggapp/nestegg/internal/usecase/mocks"
)

func newSnapshotFixture(t *testing.T) (*usecase.SnapshotUseCase, *mocks.MockSnapshotRepository) {
	t.Helper()

	snapshotRepo := mocks.NewMockSnapshotRepository()
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewSnapshotUseCase(snapshotRepo, accountRepo, mocks.NewMockIDGenerator(), nil)

	ctx := context.Background()
	require.NoError(t, accountRepo.Create(ctx, &domain.Account{ID: "acc-checking", Name: "Checking", Active: true}))
	require.NoError(t, accountRepo.Create(ctx, &domain.Account{ID: "acc-broker", Name: "Brokerage", Active: true}))

	return uc, snapshotRepo
}

func TestSnapshotUseCase_SaveSnapshot(t *testing.T) {
	t.Run("creates a snapshot with the total recomputed", func(t *testing.T) {
		uc, _ := newSnapshotFixture(t)

		snapshot, err := uc.SaveSnapshot(context.Background(), usecase.SaveSnapshotInput{
			Date: time.Date(2025, 3, 31, 18, 45, 0, 0, time.UTC),
			Values: map[string]decimal.Decimal{
				"acc-checking": decimal.RequireFromString("1200.50"),
				"acc-broker":   decimal.RequireFromString("8799.50"),
			},
		})
		require.NoError(t, err)

		assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), snapshot.Month)
		assert.True(t, snapshot.Total.Equal(decimal.RequireFromString("10000")),
			"total %s", snapshot.Total)
	})

	t.Run("saving the same month twice replaces the values", func(t *testing.T) {
		uc, snapshotRepo := newSnapshotFixture(t)
		ctx := context.Background()

		first, err := uc.SaveSnapshot(ctx, usecase.SaveSnapshotInput{
			Date:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("1000")},
		})
		require.NoError(t, err)

		second, err := uc.SaveSnapshot(ctx, usecase.SaveSnapshotInput{
			Date:   time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
			Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("2500")},
		})
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		all, err := snapshotRepo.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.True(t, all[0].Total.Equal(decimal.RequireFromString("2500")))
	})

	t.Run("rejects a zero date", func(t *testing.T) {
		uc, _ := newSnapshotFixture(t)

		_, err := uc.SaveSnapshot(context.Background(), usecase.SaveSnapshotInput{
			Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("1000")},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidDate)
	})

	t.Run("rejects values for an unknown account", func(t *testing.T) {
		uc, _ := newSnapshotFixture(t)

		_, err := uc.SaveSnapshot(context.Background(), usecase.SaveSnapshotInput{
			Date:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
			Values: map[string]decimal.Decimal{"acc-ghost": decimal.RequireFromString("1000")},
		})
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	})
}

func TestSnapshotUseCase_SaveSnapshotRecordsMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	metrics := mocks.NewMockMetricsRecorder(ctrl)

	snapshotRepo := mocks.NewMockSnapshotRepository()
	accountRepo := mocks.NewMockAccountRepository()
	uc := usecase.NewSnapshotUseCase(snapshotRepo, accountRepo, mocks.NewMockIDGenerator(), metrics)

	ctx := context.Background()
	require.NoError(t, accountRepo.Create(ctx, &domain.Account{ID: "acc-checking", Name: "Checking", Active: true}))

	metrics.EXPECT().SnapshotSaved().Times(1)

	_, err := uc.SaveSnapshot(ctx, usecase.SaveSnapshotInput{
		Date:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("1000")},
	})
	require.NoError(t, err)

	// A rejected save must not count.
	_, err = uc.SaveSnapshot(ctx, usecase.SaveSnapshotInput{
		Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("1000")},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestSnapshotUseCase_GetSnapshot(t *testing.T) {
	uc, _ := newSnapshotFixture(t)
	ctx := context.Background()

	_, err := uc.SaveSnapshot(ctx, usecase.SaveSnapshotInput{
		Date:   time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC),
		Values: map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("1000")},
	})
	require.NoError(t, err)

	got, err := uc.GetSnapshot(ctx, time.Date(2025, 3, 22, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got.Month)

	_, err = uc.GetSnapshot(ctx, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
