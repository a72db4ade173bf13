package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/analytics"
	"github.com/nesteggapp/nestegg/internal/domain"
)

// SummaryUseCase produces period summaries. The analytics engine itself is
// pure; this layer owns everything the engine deliberately does not:
// loading inputs, the live net worth fallback, and memoization.
type SummaryUseCase struct {
	entryRepo    EntryRepository
	snapshotRepo SnapshotRepository
	accountRepo  AccountRepository
	categoryRepo CategoryRepository

	cache    Cache // optional
	cacheTTL time.Duration
	metrics  MetricsRecorder // optional
	logger   zerolog.Logger

	now func() time.Time
}

// NewSummaryUseCase creates a new SummaryUseCase. Cache and metrics may be
// nil; summaries are then recomputed on every call.
func NewSummaryUseCase(
	entryRepo EntryRepository,
	snapshotRepo SnapshotRepository,
	accountRepo AccountRepository,
	categoryRepo CategoryRepository,
	cache Cache,
	cacheTTL time.Duration,
	metrics MetricsRecorder,
	logger zerolog.Logger,
) *SummaryUseCase {
	return &SummaryUseCase{
		entryRepo:    entryRepo,
		snapshotRepo: snapshotRepo,
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		metrics:      metrics,
		logger:       logger,
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// SummaryInput represents input for computing a period summary.
type SummaryInput struct {
	Reference time.Time
	Selector  analytics.RangeSelector
	TopN      int
}

// GetSummary computes the period summary for the given reference date and
// range selector, serving a memoized copy when the underlying data has not
// changed. Cache failures degrade to recomputation, never to an error.
func (uc *SummaryUseCase) GetSummary(ctx context.Context, input SummaryInput) (*analytics.PeriodSummary, error) {
	start := uc.now()

	if !input.Selector.Valid() {
		return nil, fmt.Errorf("unknown range selector %q", input.Selector)
	}
	reference := input.Reference
	if reference.IsZero() {
		reference = start
	}

	entries, err := uc.entryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load ledger: %w", err)
	}
	snapshots, err := uc.snapshotRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshots: %w", err)
	}
	accounts, err := uc.accountRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", err)
	}
	categories, err := uc.categoryRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	key := summaryCacheKey(entries, snapshots, reference, input.Selector, input.TopN)

	if uc.cache != nil {
		if cached, err := uc.cache.Get(ctx, key); err == nil {
			var summary analytics.PeriodSummary
			if err := json.Unmarshal(cached, &summary); err == nil {
				uc.record(input.Selector, uc.now().Sub(start), true)
				return &summary, nil
			}
			uc.logger.Warn().Str("key", key).Msg("discarding undecodable cached summary")
		}
	}

	summary := analytics.Compute(analytics.Input{
		Entries:    entries,
		Snapshots:  snapshots,
		Accounts:   accounts,
		Categories: categories,
		Reference:  reference,
		Now:        uc.now(),
		Selector:   input.Selector,
		LiveTotal:  liveNetWorth(entries, snapshots),
		TopN:       input.TopN,
	})

	if uc.cache != nil {
		if encoded, err := json.Marshal(summary); err == nil {
			if err := uc.cache.Set(ctx, key, encoded, uc.cacheTTL); err != nil {
				uc.logger.Warn().Err(err).Msg("failed to cache summary")
			}
		}
	}

	uc.record(input.Selector, uc.now().Sub(start), false)
	return &summary, nil
}

func (uc *SummaryUseCase) record(selector analytics.RangeSelector, duration time.Duration, cacheHit bool) {
	if uc.metrics != nil {
		uc.metrics.SummaryComputed(string(selector), duration, cacheHit)
	}
}

// summaryCacheKey hashes the identity of a computation: the data versions
// (counts and newest update stamps) plus the request parameters. Any write
// to the ledger or the snapshots changes the key.
func summaryCacheKey(entries []domain.LedgerEntry, snapshots []domain.NetWorthSnapshot, reference time.Time, selector analytics.RangeSelector, topN int) string {
	var lastEntry, lastSnapshot time.Time
	for i := range entries {
		if entries[i].UpdatedAt.After(lastEntry) {
			lastEntry = entries[i].UpdatedAt
		}
	}
	for i := range snapshots {
		if snapshots[i].UpdatedAt.After(lastSnapshot) {
			lastSnapshot = snapshots[i].UpdatedAt
		}
	}

	h := sha256.Sum256(fmt.Appendf(nil, "%d|%s|%d|%s|%s|%s|%d",
		len(entries), lastEntry.UTC().Format(time.RFC3339Nano),
		len(snapshots), lastSnapshot.UTC().Format(time.RFC3339Nano),
		reference.UTC().Format(time.DateOnly), selector, topN,
	))
	return hex.EncodeToString(h[:])
}

// liveNetWorth computes the engine's fallback total for the still-open
// period: the latest snapshot total plus the net flow recorded after that
// snapshot's month. Transfers move value between tracked accounts and
// cancel out.
func liveNetWorth(entries []domain.LedgerEntry, snapshots []domain.NetWorthSnapshot) decimal.Decimal {
	var latest *domain.NetWorthSnapshot
	for i := range snapshots {
		s := &snapshots[i]
		if s.Month.IsZero() {
			continue
		}
		if latest == nil || s.Month.After(latest.Month) {
			latest = s
		}
	}
	if latest == nil {
		return decimal.Zero
	}

	// Flows within the snapshot month are already captured by its values.
	cutoff := domain.NormalizeMonth(latest.Month).AddDate(0, 1, 0)

	total := latest.Total
	for i := range entries {
		e := &entries[i]
		if !e.IsFlow() || e.Date.IsZero() || e.Amount.IsNegative() || e.Date.Before(cutoff) {
			continue
		}
		switch e.Kind {
		case domain.KindIncome:
			total = total.Add(e.Amount)
		case domain.KindExpense:
			total = total.Sub(e.Amount)
		}
	}

	return total
}
