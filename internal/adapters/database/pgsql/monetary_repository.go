package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/finwise-app/finwise_backend/internal/apperrors"
	"github.com/finwise-app/finwise_backend/internal/core/domain"
	portsrepo "github.com/finwise-app/finwise_backend/internal/core/ports/repositories"
	"github.com/finwise-app/finwise_backend/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// monetaryStore is the shared pgx implementation behind the expense and
// income repositories. Both tables carry the same columns; only the table
// and primary-key identifiers differ. Identifiers are compile-time constants,
// never user input.
type monetaryStore struct {
	pool     *pgxpool.Pool
	table    string
	idColumn string
	kind     domain.RecordKind
}

const monetaryColumns = "user_id, amount, currency, description, category_id, date, created_at, created_by, last_updated_at, last_updated_by"

func (s *monetaryStore) Kind() domain.RecordKind {
	return s.kind
}

func (s *monetaryStore) scanRecord(row pgx.Row) (domain.MonetaryRecord, error) {
	var rec domain.MonetaryRecord
	err := row.Scan(
		&rec.RecordID,
		&rec.UserID,
		&rec.Amount,
		&rec.Currency,
		&rec.Description,
		&rec.CategoryID,
		&rec.Date,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	return rec, err
}

func (s *monetaryStore) findByID(ctx context.Context, recordID string) (*domain.MonetaryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE %s = $1;
	`, s.idColumn, monetaryColumns, s.table, s.idColumn)

	rec, err := s.scanRecord(s.pool.QueryRow(ctx, query, recordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find %s %s: %w", s.kind, recordID, err)
	}
	return &rec, nil
}

func (s *monetaryStore) save(ctx context.Context, rec domain.MonetaryRecord) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`, s.table, s.idColumn, monetaryColumns)

	_, err := s.pool.Exec(ctx, query,
		rec.RecordID, rec.UserID, rec.Amount, rec.Currency, rec.Description,
		rec.CategoryID, rec.Date, rec.CreatedAt, rec.CreatedBy,
		rec.LastUpdatedAt, rec.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save %s: %w", s.kind, err)
	}
	return nil
}

func (s *monetaryStore) update(ctx context.Context, rec domain.MonetaryRecord) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET amount = $2, currency = $3, description = $4, category_id = $5,
			date = $6, last_updated_at = $7, last_updated_by = $8
		WHERE %s = $1;
	`, s.table, s.idColumn)

	tag, err := s.pool.Exec(ctx, query,
		rec.RecordID, rec.Amount, rec.Currency, rec.Description,
		rec.CategoryID, rec.Date, rec.LastUpdatedAt, rec.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update %s %s: %w", s.kind, rec.RecordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *monetaryStore) delete(ctx context.Context, recordID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1;`, s.table, s.idColumn)

	tag, err := s.pool.Exec(ctx, query, recordID)
	if err != nil {
		return fmt.Errorf("failed to delete %s %s: %w", s.kind, recordID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// list returns a page of the user's records, newest date first with
// created_at as the tie-breaker, using keyset pagination.
func (s *monetaryStore) list(ctx context.Context, userID string, filter portsrepo.ListRecordsFilter) ([]domain.MonetaryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE user_id = $1
	`, s.idColumn, monetaryColumns, s.table)

	args := []interface{}{userID}
	argPos := 2

	if filter.CategoryID != "" {
		query += fmt.Sprintf(" AND category_id = $%d", argPos)
		args = append(args, filter.CategoryID)
		argPos++
	}
	if filter.DateFrom != nil {
		query += fmt.Sprintf(" AND date >= $%d", argPos)
		args = append(args, *filter.DateFrom)
		argPos++
	}
	if filter.DateTo != nil {
		query += fmt.Sprintf(" AND date <= $%d", argPos)
		args = append(args, *filter.DateTo)
		argPos++
	}
	if filter.NextToken != "" {
		afterDate, afterCreated, err := pagination.DecodeToken(filter.NextToken)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		query += fmt.Sprintf(" AND (date, created_at) < ($%d, $%d)", argPos, argPos+1)
		args = append(args, afterDate, afterCreated)
		argPos++
		argPos++
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += fmt.Sprintf(" ORDER BY date DESC, created_at DESC LIMIT $%d;", argPos)
	args = append(args, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s records: %w", s.kind, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonetaryRecord, error) {
		return s.scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s records: %w", s.kind, err)
	}
	return records, nil
}

// ListByUserAndCurrency returns every record of this collection owned by the
// user and still denominated in the given currency. The currency filter is
// what makes conversion retries safe: already-converted records no longer
// match.
func (s *monetaryStore) ListByUserAndCurrency(ctx context.Context, userID string, currencyCode string) ([]domain.MonetaryRecord, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s
		FROM %s
		WHERE user_id = $1 AND currency = $2;
	`, s.idColumn, monetaryColumns, s.table)

	rows, err := s.pool.Query(ctx, query, userID, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s records for user %s: %w", s.kind, userID, err)
	}
	defer rows.Close()

	records, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MonetaryRecord, error) {
		return s.scanRecord(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s records: %w", s.kind, err)
	}
	return records, nil
}

// BulkUpsert persists the records in one transaction using a single batch.
func (s *monetaryStore) BulkUpsert(ctx context.Context, records []domain.MonetaryRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (%s) DO UPDATE SET
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			description = EXCLUDED.description,
			category_id = EXCLUDED.category_id,
			date = EXCLUDED.date,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`, s.table, s.idColumn, monetaryColumns, s.idColumn)

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin %s upsert transaction: %w", s.kind, err)
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(query,
			rec.RecordID, rec.UserID, rec.Amount, rec.Currency, rec.Description,
			rec.CategoryID, rec.Date, rec.CreatedAt, rec.CreatedBy,
			rec.LastUpdatedAt, rec.LastUpdatedBy,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for range records {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to upsert %s records: %w", s.kind, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close %s upsert batch: %w", s.kind, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit %s upsert: %w", s.kind, err)
	}
	return nil
}
