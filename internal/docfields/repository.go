package docfields

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

const fieldColumns = `id, document_id, template_field_id, position, kind, name, placeholder, page,
		x_position, y_position, width, height, required, metadata,
		contact_id, value, file_key, signed, signed_at, created_at, updated_at`

const insertFieldSQL = `INSERT INTO document_fields(id, document_id, template_field_id, position, kind, name, placeholder, page,
		x_position, y_position, width, height, required, metadata)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	RETURNING ` + fieldColumns

// nextPositionSQL appends a batch after the document's existing fields, so
// authoring order survives into listing and signing order.
const nextPositionSQL = `SELECT COALESCE(MAX(position) + 1, 0) FROM document_fields WHERE document_id = $1`

type repo struct {
	db      *sql.DB
	storage storage.System
	logger  *slog.Logger
}

// New creates a document field repository with database and signature asset
// storage integration.
func New(db *sql.DB, storage storage.System, logger *slog.Logger) System {
	return &repo{
		db:      db,
		storage: storage,
		logger:  logger.With("system", "docfields"),
	}
}

func (r *repo) ListForDocument(ctx context.Context, documentID uuid.UUID) ([]Field, error) {
	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereEquals("DocumentId", documentID)
	qb.OrderByFields([]query.SortField{{Field: "Position"}, {Field: "Id"}})

	q, args := qb.BuildAll()
	fs, err := repository.QueryMany(ctx, r.db, q, args, scanField)
	if err != nil {
		return nil, fmt.Errorf("query document fields: %w", err)
	}
	return fs, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Field, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanField)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

// InstantiateFromTemplate snapshots the given template fields onto a document
// in one transaction. On any single-field failure nothing is persisted.
func (r *repo) InstantiateFromTemplate(ctx context.Context, documentID uuid.UUID, snapshots []Snapshot) ([]Field, error) {
	for _, snap := range snapshots {
		if err := snap.Spec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	fs, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Field, error) {
		var next int
		if err := tx.QueryRowContext(ctx, nextPositionSQL, documentID).Scan(&next); err != nil {
			return nil, fmt.Errorf("next field position: %w", err)
		}

		created := make([]Field, 0, len(snapshots))
		for i, snap := range snapshots {
			f, err := repository.QueryOne(ctx, tx, insertFieldSQL,
				fieldArgs(uuid.New(), documentID, snap.TemplateFieldID, next+i, snap.Spec), scanField)
			if err != nil {
				return nil, fmt.Errorf("snapshot field %q: %w", snap.Spec.Name, err)
			}
			created = append(created, f)
		}
		return created, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document fields instantiated", "document_id", documentID, "count", len(fs))
	return fs, nil
}

// CreateAdHoc bulk-creates fields directly on a document without a template
// origin, with the same all-or-nothing semantics as instantiation.
func (r *repo) CreateAdHoc(ctx context.Context, documentID uuid.UUID, specs []fields.Spec) ([]Field, error) {
	snapshots := make([]Snapshot, len(specs))
	for i, spec := range specs {
		snapshots[i] = Snapshot{Spec: spec}
	}
	return r.InstantiateFromTemplate(ctx, documentID, snapshots)
}

func (r *repo) AssignSigner(ctx context.Context, id uuid.UUID, contactID uuid.UUID) (*Field, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Signed {
		return nil, fmt.Errorf("%w: cannot reassign %q", ErrSigned, current.Name)
	}

	q := `UPDATE document_fields SET contact_id = $1, updated_at = NOW()
		WHERE id = $2 AND signed = FALSE
		RETURNING ` + fieldColumns

	f, err := repository.QueryOne(ctx, r.db, q, []any{contactID, id}, scanField)
	if err != nil {
		// A concurrent sign can slip in between the check and the update;
		// the guarded predicate turns that into no rows.
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: cannot reassign %q", ErrSigned, current.Name)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("signer assigned", "field_id", f.ID, "contact_id", contactID)
	return &f, nil
}

func (r *repo) SetValue(ctx context.Context, id uuid.UUID, value *string) (*Field, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Signed {
		return nil, fmt.Errorf("%w: cannot edit %q", ErrSigned, current.Name)
	}
	if err := validateValue(current, value); err != nil {
		return nil, err
	}

	q := `UPDATE document_fields SET value = $1, updated_at = NOW()
		WHERE id = $2 AND signed = FALSE
		RETURNING ` + fieldColumns

	f, err := repository.QueryOne(ctx, r.db, q, []any{value, id}, scanField)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: cannot edit %q", ErrSigned, current.Name)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}

// SetFile stores a signature asset and binds it to a signature field.
func (r *repo) SetFile(ctx context.Context, id uuid.UUID, data []byte, filename string) (*Field, error) {
	current, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Signed {
		return nil, fmt.Errorf("%w: cannot edit %q", ErrSigned, current.Name)
	}
	if current.Kind != fields.KindSignature {
		return nil, fmt.Errorf("%w: field %q is not a signature field", ErrValidation, current.Name)
	}

	fileKey := buildFileKey(id, filename)
	if err := r.storage.Store(ctx, fileKey, data); err != nil {
		return nil, fmt.Errorf("store signature asset: %w", err)
	}

	q := `UPDATE document_fields SET file_key = $1, updated_at = NOW()
		WHERE id = $2 AND signed = FALSE
		RETURNING ` + fieldColumns

	f, err := repository.QueryOne(ctx, r.db, q, []any{fileKey, id}, scanField)
	if err != nil {
		if delErr := r.storage.Delete(ctx, fileKey); delErr != nil {
			r.logger.Error("asset cleanup failed after db error", "file_key", fileKey, "error", delErr)
		}
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: cannot edit %q", ErrSigned, current.Name)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if current.FileKey != nil && *current.FileKey != fileKey {
		if err := r.storage.Delete(ctx, *current.FileKey); err != nil {
			r.logger.Warn("previous asset cleanup failed", "file_key", *current.FileKey, "error", err)
		}
	}

	r.logger.Info("signature asset stored", "field_id", f.ID, "file_key", fileKey)
	return &f, nil
}

// RemoveAllForDocument clears a document's field layout prior to sending.
// It refuses to touch a document that already has signed content.
func (r *repo) RemoveAllForDocument(ctx context.Context, documentID uuid.UUID) error {
	fileKeys, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]string, error) {
		var signed int
		check := `SELECT COUNT(*) FROM document_fields WHERE document_id = $1 AND signed = TRUE`
		if err := tx.QueryRowContext(ctx, check, documentID).Scan(&signed); err != nil {
			return nil, fmt.Errorf("check signed fields: %w", err)
		}
		if signed > 0 {
			return nil, ErrSignedFields
		}

		del := `DELETE FROM document_fields WHERE document_id = $1 AND file_key IS NOT NULL RETURNING file_key`
		keys, err := repository.QueryMany(ctx, tx, del, []any{documentID}, func(s repository.Scanner) (string, error) {
			var key string
			err := s.Scan(&key)
			return key, err
		})
		if err != nil {
			return nil, fmt.Errorf("delete fields with assets: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM document_fields WHERE document_id = $1`, documentID); err != nil {
			return nil, fmt.Errorf("delete fields: %w", err)
		}
		return keys, nil
	})
	if err != nil {
		return err
	}

	for _, key := range fileKeys {
		if err := r.storage.Delete(ctx, key); err != nil {
			r.logger.Warn("asset cleanup failed", "file_key", key, "error", err)
		}
	}

	r.logger.Info("document fields removed", "document_id", documentID)
	return nil
}

func validateValue(f *Field, value *string) error {
	if value == nil {
		return nil
	}

	switch f.Kind {
	case fields.KindText:
		if f.Metadata.MaxLength != nil && len(*value) > *f.Metadata.MaxLength {
			return fmt.Errorf("%w: field %q value exceeds max length %d", ErrValidation, f.Name, *f.Metadata.MaxLength)
		}
	case fields.KindDate:
		if f.Metadata.DateFormat != nil {
			if _, err := time.Parse(*f.Metadata.DateFormat, *value); err != nil {
				return fmt.Errorf("%w: field %q value does not match date format %q", ErrValidation, f.Name, *f.Metadata.DateFormat)
			}
		}
	}
	return nil
}

func fieldArgs(id, documentID uuid.UUID, templateFieldID *uuid.UUID, position int, spec fields.Spec) []any {
	return []any{
		id, documentID, templateFieldID, position, spec.Kind, spec.Name, spec.Placeholder,
		spec.Geometry.Page, spec.Geometry.X, spec.Geometry.Y,
		spec.Geometry.Width, spec.Geometry.Height,
		spec.Required, spec.Metadata,
	}
}

func buildFileKey(fieldID uuid.UUID, filename string) string {
	return fmt.Sprintf("signatures/%s/%s", fieldID.String(), sanitizeFilename(filename))
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "_",
		"\\", "_",
		":", "_",
		"*", "_",
		"?", "_",
		"\"", "_",
		"<", "_",
		">", "_",
		"|", "_",
	)
	return replacer.Replace(name)
}
