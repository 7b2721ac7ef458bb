package templates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/fields"
	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

const fieldColumns = `id, template_id, position, kind, name, placeholder, page,
		x_position, y_position, width, height, required, metadata, created_at, updated_at`

const insertFieldSQL = `INSERT INTO template_fields(id, template_id, position, kind, name, placeholder, page,
		x_position, y_position, width, height, required, metadata)
	VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	RETURNING ` + fieldColumns

// nextFieldPositionSQL appends new definitions after the template's existing
// ones, so creation order and position order coincide.
const nextFieldPositionSQL = `SELECT COALESCE(MAX(position) + 1, 0) FROM template_fields WHERE template_id = $1`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a template repository backed by the given database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "templates"),
		pagination: pagination,
	}
}

func (r *repo) List(ctx context.Context, page pagination.PageRequest, filters Filters) (*pagination.PageResult[Template], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "Name", "Description")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count templates: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	ts, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanTemplate)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}

	result := pagination.NewPageResult(ts, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Template, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	t, err := repository.QueryOne(ctx, r.db, q, args, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &t, nil
}

func (r *repo) Create(ctx context.Context, cmd CreateCommand) (*Template, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: template name required", ErrValidation)
	}

	q := `INSERT INTO templates(id, name, description)
		VALUES($1, $2, $3)
		RETURNING id, name, description, created_at, updated_at`

	t, err := repository.QueryOne(ctx, r.db, q, []any{uuid.New(), cmd.Name, cmd.Description}, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("template created", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Update(ctx context.Context, id uuid.UUID, cmd UpdateCommand) (*Template, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("%w: template name required", ErrValidation)
	}

	q := `UPDATE templates SET name = $1, description = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING id, name, description, created_at, updated_at`

	t, err := repository.QueryOne(ctx, r.db, q, []any{cmd.Name, cmd.Description, id}, scanTemplate)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("template updated", "id", t.ID, "name", t.Name)
	return &t, nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	// Field definitions cascade with the template; document snapshots are
	// independent copies and survive.
	q := `DELETE FROM templates WHERE id = $1`
	err := repository.ExecExpectOne(ctx, r.db, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("template deleted", "id", id)
	return nil
}

func (r *repo) ListFields(ctx context.Context, templateID uuid.UUID) ([]Field, error) {
	qb := query.NewBuilder(fieldProjection, defaultSort)
	qb.WhereEquals("TemplateId", templateID)
	qb.OrderByFields([]query.SortField{{Field: "Position"}, {Field: "Id"}})

	q, args := qb.BuildAll()
	fs, err := repository.QueryMany(ctx, r.db, q, args, scanField)
	if err != nil {
		return nil, fmt.Errorf("query template fields: %w", err)
	}
	return fs, nil
}

func (r *repo) CreateField(ctx context.Context, templateID uuid.UUID, spec fields.Spec) (*Field, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if _, err := r.Find(ctx, templateID); err != nil {
		return nil, err
	}

	var position int
	if err := r.db.QueryRowContext(ctx, nextFieldPositionSQL, templateID).Scan(&position); err != nil {
		return nil, fmt.Errorf("next field position: %w", err)
	}

	f, err := repository.QueryOne(ctx, r.db, insertFieldSQL, fieldArgs(uuid.New(), templateID, position, spec), scanField)
	if err != nil {
		return nil, repository.MapError(err, ErrFieldNotFound, ErrDuplicate)
	}

	r.logger.Info("template field created", "id", f.ID, "template_id", templateID, "name", f.Name)
	return &f, nil
}

func (r *repo) UpdateField(ctx context.Context, id uuid.UUID, patch FieldPatch) (*Field, error) {
	current, err := r.findField(ctx, id)
	if err != nil {
		return nil, err
	}

	updated := patch.apply(*current)
	if err := updated.Spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	q := `UPDATE template_fields
		SET name = $1, placeholder = $2, page = $3, x_position = $4, y_position = $5,
			width = $6, height = $7, required = $8, metadata = $9, updated_at = NOW()
		WHERE id = $10
		RETURNING ` + fieldColumns

	f, err := repository.QueryOne(ctx, r.db, q, []any{
		updated.Name, updated.Placeholder,
		updated.Geometry.Page, updated.Geometry.X, updated.Geometry.Y,
		updated.Geometry.Width, updated.Geometry.Height,
		updated.Required, updated.Metadata, id,
	}, scanField)
	if err != nil {
		return nil, repository.MapError(err, ErrFieldNotFound, ErrDuplicate)
	}

	r.logger.Info("template field updated", "id", f.ID, "name", f.Name)
	return &f, nil
}

func (r *repo) DeleteField(ctx context.Context, id uuid.UUID) error {
	// Deleting a definition never cascades to document field snapshots.
	q := `DELETE FROM template_fields WHERE id = $1`
	err := repository.ExecExpectOne(ctx, r.db, q, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return repository.MapError(err, ErrFieldNotFound, ErrDuplicate)
	}

	r.logger.Info("template field deleted", "id", id)
	return nil
}

// ReplaceFields swaps the template's field definitions for the given set in
// one transaction, preserving the order of specs as creation order. This is
// the commit path for an authoring session.
func (r *repo) ReplaceFields(ctx context.Context, templateID uuid.UUID, specs []fields.Spec) ([]Field, error) {
	for _, spec := range specs {
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
	}

	if _, err := r.Find(ctx, templateID); err != nil {
		return nil, err
	}

	fs, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) ([]Field, error) {
		if _, err := tx.ExecContext(ctx, `DELETE FROM template_fields WHERE template_id = $1`, templateID); err != nil {
			return nil, fmt.Errorf("clear template fields: %w", err)
		}

		created := make([]Field, 0, len(specs))
		for i, spec := range specs {
			f, err := repository.QueryOne(ctx, tx, insertFieldSQL, fieldArgs(uuid.New(), templateID, i, spec), scanField)
			if err != nil {
				return nil, fmt.Errorf("insert field %q: %w", spec.Name, err)
			}
			created = append(created, f)
		}
		return created, nil
	})
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("template fields replaced", "template_id", templateID, "count", len(fs))
	return fs, nil
}

func (r *repo) findField(ctx context.Context, id uuid.UUID) (*Field, error) {
	q, args := query.
		NewBuilder(fieldProjection, defaultSort).
		BuildSingle("Id", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanField)
	if err != nil {
		return nil, repository.MapError(err, ErrFieldNotFound, ErrDuplicate)
	}
	return &f, nil
}

func fieldArgs(id, templateID uuid.UUID, position int, spec fields.Spec) []any {
	return []any{
		id, templateID, position, spec.Kind, spec.Name, spec.Placeholder,
		spec.Geometry.Page, spec.Geometry.X, spec.Geometry.Y,
		spec.Geometry.Width, spec.Geometry.Height,
		spec.Required, spec.Metadata,
	}
}
