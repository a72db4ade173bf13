package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// SnapshotRepository implements usecase.SnapshotRepository. A snapshot is
// stored as one snapshots row plus one snapshot_values row per account;
// both are replaced atomically on upsert.
type SnapshotRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewSnapshotRepository creates a new SnapshotRepository.
func NewSnapshotRepository(pool *pgxpool.Pool, retrier *Retrier) *SnapshotRepository {
	return &SnapshotRepository{pool: pool, retrier: retrier}
}

// Upsert writes the snapshot and its per-account values in one transaction.
func (r *SnapshotRepository) Upsert(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	return r.retrier.Retry(ctx, func() error {
		return r.upsert(ctx, snapshot)
	})
}

func (r *SnapshotRepository) upsert(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO snapshots (id, month, total, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (month) DO UPDATE
		SET total = EXCLUDED.total, updated_at = EXCLUDED.updated_at`,
		snapshot.ID,
		timeToPgTimestamptz(domain.NormalizeMonth(snapshot.Month)),
		decimalToNumeric(snapshot.Total),
		timeToPgTimestamptz(snapshot.CreatedAt),
		timeToPgTimestamptz(snapshot.UpdatedAt),
	)
	if err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		DELETE FROM snapshot_values
		WHERE snapshot_id IN (SELECT id FROM snapshots WHERE month = $1)`,
		timeToPgTimestamptz(domain.NormalizeMonth(snapshot.Month)),
	); err != nil {
		return err
	}

	for accountID, value := range snapshot.Values {
		if _, err := tx.Exec(ctx, `
			INSERT INTO snapshot_values (snapshot_id, account_id, value)
			SELECT id, $2, $3 FROM snapshots WHERE month = $1`,
			timeToPgTimestamptz(domain.NormalizeMonth(snapshot.Month)),
			accountID,
			decimalToNumeric(value),
		); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByMonth retrieves the snapshot for a normalized month.
func (r *SnapshotRepository) GetByMonth(ctx context.Context, month time.Time) (*domain.NetWorthSnapshot, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, month, total, created_at, updated_at
		FROM snapshots
		WHERE month = $1`,
		timeToPgTimestamptz(domain.NormalizeMonth(month)),
	)

	snapshot, err := scanSnapshot(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSnapshotNotFound
		}

		return nil, err
	}

	if err := r.loadValues(ctx, snapshot); err != nil {
		return nil, err
	}

	return snapshot, nil
}

// List returns the full snapshot history ordered by month.
func (r *SnapshotRepository) List(ctx context.Context) ([]domain.NetWorthSnapshot, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, month, total, created_at, updated_at
		FROM snapshots
		ORDER BY month`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snapshots []domain.NetWorthSnapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range snapshots {
		if err := r.loadValues(ctx, &snapshots[i]); err != nil {
			return nil, err
		}
	}

	return snapshots, nil
}

func (r *SnapshotRepository) loadValues(ctx context.Context, snapshot *domain.NetWorthSnapshot) error {
	rows, err := r.pool.Query(ctx, `
		SELECT account_id, value
		FROM snapshot_values
		WHERE snapshot_id = $1`, snapshot.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	snapshot.Values = make(map[string]decimal.Decimal)
	for rows.Next() {
		var (
			accountID string
			value     pgtype.Numeric
		)
		if err := rows.Scan(&accountID, &value); err != nil {
			return err
		}
		snapshot.Values[accountID] = numericToDecimal(value)
	}

	return rows.Err()
}

func scanSnapshot(row pgx.Row) (*domain.NetWorthSnapshot, error) {
	var snapshot domain.NetWorthSnapshot
	var total pgtype.Numeric

	err := row.Scan(
		&snapshot.ID,
		&snapshot.Month,
		&total,
		&snapshot.CreatedAt,
		&snapshot.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Total = numericToDecimal(total)
	snapshot.Month = domain.NormalizeMonth(snapshot.Month.UTC())

	return &snapshot, nil
}
