// Package repository provides generic helpers for database access: scanning
// query results into typed records, transaction scoping, and translation of
// driver errors into domain sentinels.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// Scanner abstracts row scanning so scan functions work with both
// sql.Row and sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Queryer abstracts query execution so repository helpers work with both
// *sql.DB and *sql.Tx.
type Queryer interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// ScanFunc converts a scanned row into a typed record.
type ScanFunc[T any] func(s Scanner) (T, error)

// QueryOne executes a query expected to return exactly one row.
func QueryOne[T any](ctx context.Context, q Queryer, query string, args []any, scan ScanFunc[T]) (T, error) {
	return scan(q.QueryRowContext(ctx, query, args...))
}

// QueryMany executes a query and scans all returned rows.
func QueryMany[T any](ctx context.Context, q Queryer, query string, args []any, scan ScanFunc[T]) ([]T, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []T
	for rows.Next() {
		record, err := scan(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, record)
	}

	return results, rows.Err()
}

// WithTx executes fn within a transaction, committing on success and
// rolling back on error or panic.
func WithTx[T any](ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) (T, error)) (T, error) {
	var zero T

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return zero, fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	result, err := fn(tx)
	if err != nil {
		tx.Rollback()
		return zero, err
	}

	if err := tx.Commit(); err != nil {
		return zero, fmt.Errorf("commit transaction: %w", err)
	}

	return result, nil
}

// ExecExpectOne executes a statement and returns sql.ErrNoRows if no rows
// were affected.
func ExecExpectOne(ctx context.Context, q Queryer, query string, args ...any) error {
	result, err := q.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// MapError translates driver-level errors into domain sentinels:
// sql.ErrNoRows becomes notFound, unique violations become duplicate,
// and all other errors pass through unchanged.
func MapError(err, notFound, duplicate error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return duplicate
	}

	return err
}
