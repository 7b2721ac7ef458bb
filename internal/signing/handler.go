package signing

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/footprints"
	"github.com/fieldsign/fieldsign/pkg/handlers"
	"github.com/fieldsign/fieldsign/pkg/routes"
)

// Handler provides HTTP endpoints for signing operations.
type Handler struct {
	sys      System
	observer StatusObserver
	logger   *slog.Logger
}

// NewHandler creates a signing handler. The observer is notified after
// operations that change field signing state; pass nil to disable document
// status tracking.
func NewHandler(sys System, observer StatusObserver, logger *slog.Logger) *Handler {
	return &Handler{
		sys:      sys,
		observer: observer,
		logger:   logger.With("handler", "signing"),
	}
}

// Routes returns the signing endpoint route group. Signing spans the
// document surface (batch sign, completion) and the field surface (reset).
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "",
		Tags:        []string{"Signing"},
		Description: "Field signing transitions and document completion",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/documents/{id}/sign", Handler: h.BatchSign, OpenAPI: Spec.BatchSign},
			{Method: "GET", Pattern: "/documents/{id}/complete", Handler: h.Complete, OpenAPI: Spec.Complete},
			{Method: "POST", Pattern: "/fields/{id}/reset", Handler: h.ResetField, OpenAPI: Spec.ResetField},
		},
	}
}

func (h *Handler) BatchSign(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd BatchSignCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if cmd.ContactID == uuid.Nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMissingValue)
		return
	}

	reqCtx := footprints.CaptureContext(r)

	result, err := h.sys.BatchSign(r.Context(), documentID, cmd.ContactID, reqCtx)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if h.observer != nil && result.SignedFieldsCount > 0 {
		h.observer.ObserveSigning(r.Context(), documentID)
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) Complete(w http.ResponseWriter, r *http.Request) {
	documentID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	complete, err := h.sys.IsDocumentComplete(r.Context(), documentID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, CompletionResult{
		DocumentID: documentID,
		Complete:   complete,
	})
}

func (h *Handler) ResetField(w http.ResponseWriter, r *http.Request) {
	fieldID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	reqCtx := footprints.CaptureContext(r)

	documentID, err := h.sys.ResetField(r.Context(), fieldID, reqCtx)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	if h.observer != nil {
		h.observer.ObserveSigning(r.Context(), documentID)
	}

	w.WriteHeader(http.StatusNoContent)
}
