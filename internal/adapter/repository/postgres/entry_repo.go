package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nesteggapp/nestegg/internal/domain"
)

// EntryRepository implements usecase.EntryRepository.
type EntryRepository struct {
	pool *pgxpool.Pool
}

// NewEntryRepository creates a new EntryRepository.
func NewEntryRepository(pool *pgxpool.Pool) *EntryRepository {
	return &EntryRepository{pool: pool}
}

// Create inserts a new ledger entry.
func (r *EntryRepository) Create(ctx context.Context, entry *domain.LedgerEntry) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO entries (id, kind, entry_date, amount, category_id,
			source_account_id, destination_account_id, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		entry.ID,
		string(entry.Kind),
		timeToPgTimestamptz(entry.Date),
		decimalToNumeric(entry.Amount),
		nullableID(entry.CategoryID),
		nullableID(entry.SourceAccountID),
		nullableID(entry.DestinationAccountID),
		entry.Note,
		timeToPgTimestamptz(entry.CreatedAt),
		timeToPgTimestamptz(entry.UpdatedAt),
	)

	return err
}

// GetByID retrieves an entry by ID.
func (r *EntryRepository) GetByID(ctx context.Context, id string) (*domain.LedgerEntry, error) {
	row := r.pool.QueryRow(ctx, `
		SELECT id, kind, entry_date, amount, category_id,
			source_account_id, destination_account_id, note, created_at, updated_at
		FROM entries
		WHERE id = $1`, id)

	entry, err := scanEntry(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEntryNotFound
		}

		return nil, err
	}

	return entry, nil
}

// Update replaces the mutable fields of an entry.
func (r *EntryRepository) Update(ctx context.Context, entry *domain.LedgerEntry) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE entries
		SET kind = $2, entry_date = $3, amount = $4, category_id = $5,
			source_account_id = $6, destination_account_id = $7, note = $8,
			updated_at = $9
		WHERE id = $1`,
		entry.ID,
		string(entry.Kind),
		timeToPgTimestamptz(entry.Date),
		decimalToNumeric(entry.Amount),
		nullableID(entry.CategoryID),
		nullableID(entry.SourceAccountID),
		nullableID(entry.DestinationAccountID),
		entry.Note,
		timeToPgTimestamptz(entry.UpdatedAt),
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// Delete removes an entry.
func (r *EntryRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEntryNotFound
	}

	return nil
}

// List returns the full ledger ordered by date.
func (r *EntryRepository) List(ctx context.Context) ([]domain.LedgerEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, kind, entry_date, amount, category_id,
			source_account_id, destination_account_id, note, created_at, updated_at
		FROM entries
		ORDER BY entry_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}

	return entries, rows.Err()
}

func scanEntry(row pgx.Row) (*domain.LedgerEntry, error) {
	var (
		entry    domain.LedgerEntry
		kind     string
		amount   pgtype.Numeric
		category pgtype.Text
		source   pgtype.Text
		dest     pgtype.Text
	)

	err := row.Scan(
		&entry.ID,
		&kind,
		&entry.Date,
		&amount,
		&category,
		&source,
		&dest,
		&entry.Note,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	entry.Kind = domain.EntryKind(kind)
	entry.Amount = numericToDecimal(amount)
	entry.CategoryID = category.String
	entry.SourceAccountID = source.String
	entry.DestinationAccountID = dest.String

	return &entry, nil
}

// nullableID maps an empty ID to NULL so foreign keys stay meaningful.
func nullableID(id string) pgtype.Text {
	return pgtype.Text{String: id, Valid: id != ""}
}
