package documents

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/docfields"
	"github.com/fieldsign/fieldsign/internal/signing"
	"github.com/fieldsign/fieldsign/internal/templates"
	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

const documentColumns = `id, name, filename, content_type, size_bytes, page_count,
		storage_key, template_id, status, created_at, updated_at`

type repo struct {
	db         *sql.DB
	storage    storage.System
	templates  templates.System
	fields     docfields.System
	signing    signing.System
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a document repository with database, blob storage, and domain
// collaborator integration.
func New(
	db *sql.DB,
	storage storage.System,
	templates templates.System,
	fields docfields.System,
	signing signing.System,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &repo{
		db:         db,
		storage:    storage,
		templates:  templates,
		fields:     fields,
		signing:    signing,
		logger:     logger.With("system", "documents"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Document], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Filename")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count documents: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	docs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanDocument)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}

	result := pagination.NewPageResult(docs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Document, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	doc, err := repository.QueryOne(ctx, r.db, q, args, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &doc, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Document, error) {
	id := uuid.New()
	storageKey := buildStorageKey(id, cmd.Filename)

	if err := r.storage.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	q := `INSERT INTO documents(id, name, filename, content_type, size_bytes, page_count, storage_key, template_id, status)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + documentColumns

	doc, err := repository.QueryOne(ctx, r.db, q, []any{
		id, cmd.Name, cmd.Filename, cmd.ContentType, cmd.SizeBytes, cmd.PageCount,
		storageKey, cmd.TemplateID, StatusDraft,
	}, scanDocument)
	if err != nil {
		if delErr := r.storage.Delete(ctx, storageKey); delErr != nil {
			r.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if cmd.TemplateID != nil {
		if err := r.instantiate(ctx, &doc, *cmd.TemplateID); err != nil {
			r.rollbackCreate(ctx, &doc)
			return nil, err
		}
	}

	r.logger.Info("document created",
		"id", doc.ID,
		"name", doc.Name,
		"storage_key", storageKey,
		"template_id", cmd.TemplateID,
	)
	return &doc, nil
}

// instantiate snapshots the template's field definitions onto the document.
func (r *repo) instantiate(ctx context.Context, doc *Document, templateID uuid.UUID) error {
	defs, err := r.templates.ListFields(ctx, templateID)
	if err != nil {
		return fmt.Errorf("load template fields: %w", err)
	}

	snapshots := make([]docfields.Snapshot, len(defs))
	for i, def := range defs {
		originID := def.ID
		snapshots[i] = docfields.Snapshot{
			TemplateFieldID: &originID,
			Spec:            def.Spec,
		}
	}

	if _, err := r.fields.InstantiateFromTemplate(ctx, doc.ID, snapshots); err != nil {
		return fmt.Errorf("instantiate template fields: %w", err)
	}
	return nil
}

// rollbackCreate undoes a document insert whose field instantiation failed.
func (r *repo) rollbackCreate(ctx context.Context, doc *Document) {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM documents WHERE id = $1`, doc.ID); err != nil {
		r.logger.Error("document rollback failed", "id", doc.ID, "error", err)
	}
	if err := r.storage.Delete(ctx, doc.StorageKey); err != nil {
		r.logger.Error("storage rollback failed", "storage_key", doc.StorageKey, "error", err)
	}
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Document, error) {
	q := `UPDATE documents SET name = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING ` + documentColumns

	doc, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, id}, scanDocument)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document updated", "id", doc.ID, "name", doc.Name)
	return &doc, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	doc, err := r.Find(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	// Fields and footprints cascade with the document row.
	q := `DELETE FROM documents WHERE id = $1`
	if err := repository.ExecExpectOne(ctx, r.db, q, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	if err := r.storage.Delete(ctx, doc.StorageKey); err != nil {
		r.logger.Error("storage cleanup failed", "storage_key", doc.StorageKey, "error", err)
	}

	r.logger.Info("document deleted", "id", id)
	return nil
}

func (r *repo) MarkSent(ctx context.Context, id uuid.UUID) (*Document, error) {
	q := `UPDATE documents SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + documentColumns

	doc, err := repository.QueryOne(ctx, r.db, q, []any{StatusSent, id, StatusDraft}, scanDocument)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Either missing or already past draft.
			if _, findErr := r.Find(ctx, id); findErr != nil {
				return nil, findErr
			}
			return nil, ErrNotDraft
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document sent", "id", doc.ID)
	return &doc, nil
}

func (r *repo) SyncStatus(ctx context.Context, id uuid.UUID) (*Document, error) {
	doc, err := r.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	complete, err := r.signing.IsDocumentComplete(ctx, id)
	if err != nil {
		return nil, err
	}

	var target Status
	switch {
	case complete && doc.Status == StatusSent:
		target = StatusCompleted
	case !complete && doc.Status == StatusCompleted:
		// Only an explicit reset can take a completed document backward.
		target = StatusSent
	default:
		return doc, nil
	}

	q := `UPDATE documents SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
		RETURNING ` + documentColumns

	updated, err := repository.QueryOne(ctx, r.db, q, []any{target, id, doc.Status}, scanDocument)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost a status race; the winner already synced.
			return r.Find(ctx, id)
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("document status synced", "id", id, "status", updated.Status)
	return &updated, nil
}

func (r *repo) ObserveSigning(ctx context.Context, documentID uuid.UUID) {
	if _, err := r.SyncStatus(ctx, documentID); err != nil {
		r.logger.Error("status sync after signing failed", "document_id", documentID, "error", err)
	}
}

func buildStorageKey(id uuid.UUID, filename string) string {
	return fmt.Sprintf("documents/%s/%s", id.String(), sanitizeFilename(filename))
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
