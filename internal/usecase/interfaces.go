package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// ErrCacheMiss is returned by Cache implementations when a key is absent.
var ErrCacheMiss = errors.New("cache miss")

// EntryRepository defines data access for ledger entries.
type EntryRepository interface {
	Create(ctx context.Context, entry *domain.LedgerEntry) error
	GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error)
	Update(ctx context.Context, entry *domain.LedgerEntry) error
	Delete(ctx context.Context, id string) error
	// List returns the full ledger; the analytics engine imposes no
	// ordering requirement and filters internally.
	List(ctx context.Context) ([]domain.LedgerEntry, error)
}

// SnapshotRepository defines data access for net worth snapshots.
type SnapshotRepository interface {
	Upsert(ctx context.Context, snapshot *domain.NetWorthSnapshot) error
	GetByMonth(ctx context.Context, month time.Time) (*domain.NetWorthSnapshot, error)
	List(ctx context.Context) ([]domain.NetWorthSnapshot, error)
}

// AccountRepository defines data access for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	// List includes archived accounts; they remain referenced by
	// historical entries and snapshots.
	List(ctx context.Context) ([]domain.Account, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

// CategoryRepository defines data access for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *domain.Category) error
	GetByID(ctx context.Context, id string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	SetActive(ctx context.Context, id string, active bool, updatedAt time.Time) error
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations for memoized summaries.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// MetricsRecorder records use case outcomes.
type MetricsRecorder interface {
	SummaryComputed(selector string, duration time.Duration, cacheHit bool)
	EntryCreated(kind string)
	SnapshotSaved()
}
