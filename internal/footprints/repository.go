package footprints

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/query"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

const footprintColumns = `id, document_id, contact_id, action, ip_address,
		forwarded_ip, real_ip, user_agent, headers, request_info, created_at`

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a footprint repository backed by the given database.
func New(db *sql.DB, logger *slog.Logger, pagination pagination.Config) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "footprints"),
		pagination: pagination,
	}
}

func (r *repo) RecordTx(ctx context.Context, q repository.Queryer, documentID, contactID uuid.UUID, action Action, reqCtx Context) (*Footprint, error) {
	ins := `INSERT INTO signature_footprints(id, document_id, contact_id, action, ip_address,
			forwarded_ip, real_ip, user_agent, headers, request_info)
		VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + footprintColumns

	f, err := repository.QueryOne(ctx, q, ins, []any{
		uuid.New(), documentID, contactID, action, reqCtx.IPAddress,
		reqCtx.ForwardedIP, reqCtx.RealIP, reqCtx.UserAgent,
		reqCtx.Headers, reqCtx.RequestInfo,
	}, scanFootprint)
	if err != nil {
		return nil, fmt.Errorf("record footprint: %w", err)
	}

	r.logger.Info("footprint recorded",
		"id", f.ID,
		"document_id", documentID,
		"contact_id", contactID,
		"action", action,
		"ip_address", f.IPAddress,
	)
	return &f, nil
}

func (r *repo) Record(ctx context.Context, documentID, contactID uuid.UUID, action Action, reqCtx Context) (*Footprint, error) {
	return r.RecordTx(ctx, r.db, documentID, contactID, action, reqCtx)
}

func (r *repo) ListForDocument(ctx context.Context, documentID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Footprint], error) {
	page.Normalize(r.pagination)

	qb := query.NewBuilder(projection, defaultSort)
	qb.WhereEquals("DocumentId", documentID)
	qb.OrderBy("CreatedAt", true)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count footprints: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	fs, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanFootprint)
	if err != nil {
		return nil, fmt.Errorf("query footprints: %w", err)
	}

	result := pagination.NewPageResult(fs, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Footprint, error) {
	q, args := query.
		NewBuilder(projection, defaultSort).
		BuildSingle("Id", id)

	f, err := repository.QueryOne(ctx, r.db, q, args, scanFootprint)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &f, nil
}
