package signing

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/footprints"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

// store abstracts the field rows the engine drives. The engine owns the
// signing contract (candidate selection, validation, atomic flip, one
// footprint per state change); the store owns the row access.
type store interface {
	lockCandidates(ctx context.Context, tx *sql.Tx, documentID, contactID uuid.UUID) ([]candidate, error)
	markSigned(ctx context.Context, tx *sql.Tx, ids []uuid.UUID) error
	lockField(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) (*lockedField, error)
	clearSigned(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) error
	hasUnsignedRequired(ctx context.Context, documentID uuid.UUID) (bool, error)
}

// lockedField is the row state needed to validate a reset.
type lockedField struct {
	DocumentID uuid.UUID
	ContactID  *uuid.UUID
	Name       string
	Signed     bool
}

type engine struct {
	store      store
	footprints footprints.System
	logger     *slog.Logger
	transact   func(ctx context.Context, fn func(tx *sql.Tx) error) error
}

// New creates the signing engine backed by the given database and footprint
// recorder.
func New(db *sql.DB, footprints footprints.System, logger *slog.Logger) System {
	return &engine{
		store:      &pgStore{db: db},
		footprints: footprints,
		logger:     logger.With("system", "signing"),
		transact:   pgTransact(db),
	}
}

func pgTransact(db *sql.DB) func(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return func(ctx context.Context, fn func(tx *sql.Tx) error) error {
		_, err := repository.WithTx(ctx, db, func(tx *sql.Tx) (struct{}, error) {
			return struct{}{}, fn(tx)
		})
		return err
	}
}

func (e *engine) BatchSign(ctx context.Context, documentID, contactID uuid.UUID, reqCtx footprints.Context) (*BatchResult, error) {
	var result BatchResult
	err := e.transact(ctx, func(tx *sql.Tx) error {
		candidates, err := e.store.lockCandidates(ctx, tx, documentID, contactID)
		if err != nil {
			return err
		}

		ids, err := plan(candidates)
		if err != nil {
			return err
		}

		// Nothing to transition: idempotent success, no footprint.
		if len(ids) == 0 {
			result = BatchResult{Success: true}
			return nil
		}

		if err := e.store.markSigned(ctx, tx, ids); err != nil {
			return err
		}

		// The footprint is a precondition of signing validity: if it
		// cannot be recorded, the whole batch rolls back.
		if _, err := e.footprints.RecordTx(ctx, tx, documentID, contactID, footprints.ActionSigned, reqCtx); err != nil {
			return err
		}

		result = BatchResult{Success: true, SignedFieldsCount: len(ids)}
		return nil
	})
	if err != nil {
		return nil, err
	}

	e.logger.Info("batch sign completed",
		"document_id", documentID,
		"contact_id", contactID,
		"signed_fields", result.SignedFieldsCount,
	)
	return &result, nil
}

func (e *engine) ResetField(ctx context.Context, fieldID uuid.UUID, reqCtx footprints.Context) (uuid.UUID, error) {
	var documentID uuid.UUID
	err := e.transact(ctx, func(tx *sql.Tx) error {
		f, err := e.store.lockField(ctx, tx, fieldID)
		if err != nil {
			return err
		}

		if !f.Signed {
			return fmt.Errorf("%w: %q", ErrNotSigned, f.Name)
		}
		if f.ContactID == nil {
			return fmt.Errorf("%w: %q", ErrUnassigned, f.Name)
		}

		if err := e.store.clearSigned(ctx, tx, fieldID); err != nil {
			return err
		}

		// A reset is itself an audited signing action.
		if _, err := e.footprints.RecordTx(ctx, tx, f.DocumentID, *f.ContactID, footprints.ActionReset, reqCtx); err != nil {
			return err
		}

		documentID = f.DocumentID
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	e.logger.Info("field reset", "field_id", fieldID, "document_id", documentID)
	return documentID, nil
}

func (e *engine) IsDocumentComplete(ctx context.Context, documentID uuid.UUID) (bool, error) {
	pending, err := e.store.hasUnsignedRequired(ctx, documentID)
	if err != nil {
		return false, err
	}
	return !pending, nil
}

// pgStore is the Postgres-backed field store for the engine.
type pgStore struct {
	db *sql.DB
}

// lockCandidates loads the contact's unsigned fields in authoring order
// (position is assigned sequentially at insert; created_at is tx-stable and
// would tie across a batch) and takes row locks on them, so concurrent
// batch-sign calls serialize and the loser observes the winner's rows as
// already signed.
func (s *pgStore) lockCandidates(ctx context.Context, tx *sql.Tx, documentID, contactID uuid.UUID) ([]candidate, error) {
	q := `SELECT id, kind, name, required, value IS NOT NULL, file_key IS NOT NULL
		FROM document_fields
		WHERE document_id = $1 AND contact_id = $2 AND signed = FALSE
		ORDER BY position, id
		FOR UPDATE`

	candidates, err := repository.QueryMany(ctx, tx, q, []any{documentID, contactID}, func(sc repository.Scanner) (candidate, error) {
		var c candidate
		err := sc.Scan(&c.ID, &c.Kind, &c.Name, &c.Required, &c.HasValue, &c.HasFile)
		return c, err
	})
	if err != nil {
		return nil, fmt.Errorf("lock signing candidates: %w", err)
	}
	return candidates, nil
}

func (s *pgStore) markSigned(ctx context.Context, tx *sql.Tx, ids []uuid.UUID) error {
	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	q := fmt.Sprintf(`UPDATE document_fields
		SET signed = TRUE, signed_at = NOW(), updated_at = NOW()
		WHERE id IN (%s) AND signed = FALSE`, strings.Join(placeholders, ", "))

	res, err := tx.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("mark fields signed: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("mark fields signed: %w", err)
	}
	// The rows are locked, so a shortfall means a logic error, not a race.
	if int(affected) != len(ids) {
		return fmt.Errorf("mark fields signed: expected %d rows, updated %d", len(ids), affected)
	}
	return nil
}

func (s *pgStore) lockField(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) (*lockedField, error) {
	q := `SELECT document_id, contact_id, name, signed
		FROM document_fields
		WHERE id = $1
		FOR UPDATE`

	var f lockedField
	if err := tx.QueryRowContext(ctx, q, fieldID).Scan(&f.DocumentID, &f.ContactID, &f.Name, &f.Signed); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrFieldNotFound
		}
		return nil, fmt.Errorf("lock field: %w", err)
	}
	return &f, nil
}

func (s *pgStore) clearSigned(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) error {
	q := `UPDATE document_fields
		SET signed = FALSE, signed_at = NULL, updated_at = NOW()
		WHERE id = $1`
	if err := repository.ExecExpectOne(ctx, tx, q, fieldID); err != nil {
		return fmt.Errorf("reset field: %w", err)
	}
	return nil
}

func (s *pgStore) hasUnsignedRequired(ctx context.Context, documentID uuid.UUID) (bool, error) {
	q := `SELECT EXISTS (
		SELECT 1 FROM document_fields
		WHERE document_id = $1 AND required = TRUE AND signed = FALSE
	)`

	var pending bool
	if err := s.db.QueryRowContext(ctx, q, documentID).Scan(&pending); err != nil {
		return false, fmt.Errorf("check document completion: %w", err)
	}
	return pending, nil
}
