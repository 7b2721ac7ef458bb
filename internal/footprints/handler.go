package footprints

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/handlers"
	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/routes"
)

// Handler provides read-only HTTP endpoints for the audit trail.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// NewHandler creates a footprint handler with the specified configuration.
func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "footprints"),
		pagination: pagination,
	}
}

// Routes returns the footprint endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Footprints"},
		Description: "Signing audit trail (append-only)",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/footprints/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "GET", Pattern: "/documents/{documentId}/footprints", Handler: h.ListForDocument, OpenAPI: Spec.ListForDocument},
		},
	}
}

func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	f, err := h.sys.Find(r.Context(), id)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, f)
}

func (h *Handler) ListForDocument(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(r.PathValue("documentId"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)

	result, err := h.sys.ListForDocument(r.Context(), documentID, page)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
