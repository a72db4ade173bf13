package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nesteggapp/nestegg/internal/analytics"
	"github.com/nesteggapp/nestegg/internal/domain"
	"github.com/nesteggapp/nestegg/internal/usecase"
	"github.com/nesteggapp/nestegg/internal/usecase/mocks"
)

type summaryFixture struct {
	entryRepo    *mocks.MockEntryRepository
	snapshotRepo *mocks.MockSnapshotRepository
	accountRepo  *mocks.MockAccountRepository
	categoryRepo *mocks.MockCategoryRepository
}

// newSummaryFixture seeds two months of history: February closed at 10000,
// March closed at 11000, plus one March salary entry.
func newSummaryFixture(t *testing.T) summaryFixture {
	t.Helper()
	ctx := context.Background()

	f := summaryFixture{
		entryRepo:    mocks.NewMockEntryRepository(),
		snapshotRepo: mocks.NewMockSnapshotRepository(),
		accountRepo:  mocks.NewMockAccountRepository(),
		categoryRepo: mocks.NewMockCategoryRepository(),
	}

	require.NoError(t, f.accountRepo.Create(ctx, &domain.Account{ID: "acc-checking", Name: "Checking", Active: true}))
	require.NoError(t, f.categoryRepo.Create(ctx, &domain.Category{ID: "cat-salary", Name: "Salary", Active: true}))

	stamp := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, f.snapshotRepo.Upsert(ctx, &domain.NetWorthSnapshot{
		ID:        "snap-feb",
		Month:     time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		Values:    map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("10000")},
		Total:     decimal.RequireFromString("10000"),
		UpdatedAt: stamp,
	}))
	require.NoError(t, f.snapshotRepo.Upsert(ctx, &domain.NetWorthSnapshot{
		ID:        "snap-mar",
		Month:     time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		Values:    map[string]decimal.Decimal{"acc-checking": decimal.RequireFromString("11000")},
		Total:     decimal.RequireFromString("11000"),
		UpdatedAt: stamp,
	}))
	require.NoError(t, f.entryRepo.Create(ctx, &domain.LedgerEntry{
		ID:                   "entry-salary",
		Kind:                 domain.KindIncome,
		Date:                 time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
		Amount:               decimal.RequireFromString("3000"),
		CategoryID:           "cat-salary",
		DestinationAccountID: "acc-checking",
		UpdatedAt:            stamp,
	}))

	return f
}

func (f summaryFixture) build(cache usecase.Cache, metrics usecase.MetricsRecorder) *usecase.SummaryUseCase {
	return usecase.NewSummaryUseCase(
		f.entryRepo, f.snapshotRepo, f.accountRepo, f.categoryRepo,
		cache, time.Minute, metrics, zerolog.Nop(),
	)
}

func marchReference() usecase.SummaryInput {
	return usecase.SummaryInput{
		Reference: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
		Selector:  analytics.OneMonth,
	}
}

func TestSummaryUseCase_GetSummary(t *testing.T) {
	t.Run("computes without a cache", func(t *testing.T) {
		f := newSummaryFixture(t)
		uc := f.build(nil, nil)

		summary, err := uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)

		assert.Equal(t, analytics.OneMonth, summary.Selector)
		assert.False(t, summary.InsufficientData)
		assert.True(t, summary.NetWorth.Current.Equal(decimal.RequireFromString("11000")))
		assert.True(t, summary.NetWorth.Delta.Absolute.Equal(decimal.RequireFromString("1000")))
		assert.True(t, summary.Income.Current.Equal(decimal.RequireFromString("3000")))
	})

	t.Run("rejects an unknown selector", func(t *testing.T) {
		f := newSummaryFixture(t)
		uc := f.build(nil, nil)

		_, err := uc.GetSummary(context.Background(), usecase.SummaryInput{
			Reference: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
			Selector:  analytics.RangeSelector("2W"),
		})
		assert.Error(t, err)
	})

	t.Run("memoizes while the data is unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newSummaryFixture(t)

		cache := mocks.NewMockCache(ctrl)
		metrics := mocks.NewMockMetricsRecorder(ctrl)
		uc := f.build(cache, metrics)

		var storedKey string
		var storedValue []byte

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrCacheMiss)
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).
			DoAndReturn(func(_ context.Context, key string, value []byte, _ time.Duration) error {
				storedKey = key
				storedValue = value
				return nil
			})
		metrics.EXPECT().SummaryComputed("1M", gomock.Any(), false)

		first, err := uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)
		require.NotEmpty(t, storedValue)

		cache.EXPECT().Get(gomock.Any(), storedKey).Return(storedValue, nil)
		metrics.EXPECT().SummaryComputed("1M", gomock.Any(), true)

		second, err := uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("a ledger write changes the cache key", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newSummaryFixture(t)

		cache := mocks.NewMockCache(ctrl)
		uc := f.build(cache, nil)

		var firstKey string
		cache.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) ([]byte, error) {
				firstKey = key
				return nil, usecase.ErrCacheMiss
			})
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)

		require.NoError(t, f.entryRepo.Create(context.Background(), &domain.LedgerEntry{
			ID:              "entry-rent",
			Kind:            domain.KindExpense,
			Date:            time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC),
			Amount:          decimal.RequireFromString("900"),
			SourceAccountID: "acc-checking",
			UpdatedAt:       time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		}))

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, key string) ([]byte, error) {
				assert.NotEqual(t, firstKey, key)
				return nil, usecase.ErrCacheMiss
			})
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		_, err = uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)
	})

	t.Run("cache failures degrade to recomputation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		f := newSummaryFixture(t)

		cache := mocks.NewMockCache(ctrl)
		uc := f.build(cache, nil)

		cache.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))
		cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

		summary, err := uc.GetSummary(context.Background(), marchReference())
		require.NoError(t, err)
		assert.True(t, summary.NetWorth.Current.Equal(decimal.RequireFromString("11000")))
	})

	t.Run("repository errors surface", func(t *testing.T) {
		f := newSummaryFixture(t)
		f.entryRepo.ListFunc = func(ctx context.Context) ([]domain.LedgerEntry, error) {
			return nil, errors.New("connection reset")
		}
		uc := f.build(nil, nil)

		_, err := uc.GetSummary(context.Background(), marchReference())
		assert.ErrorContains(t, err, "failed to load ledger")
	})
}
