package docfields

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/pkg/handlers"
	"github.com/fieldsign/fieldsign/pkg/routes"
	"github.com/fieldsign/fieldsign/pkg/storage"
)

// Handler provides HTTP endpoints for individual document field operations.
type Handler struct {
	sys           System
	storage       storage.System
	logger        *slog.Logger
	maxUploadSize int64
}

// NewHandler creates a document field handler with the specified configuration.
func NewHandler(sys System, storage storage.System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		storage:       storage,
		logger:        logger.With("handler", "docfields"),
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the field endpoint route group.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/fields",
		Tags:        []string{"Fields"},
		Description: "Document field instances: signer assignment, values, and signature assets",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: Spec.Find},
			{Method: "PUT", Pattern: "/{id}/signer", Handler: h.AssignSigner, OpenAPI: Spec.AssignSigner},
			{Method: "PUT", Pattern: "/{id}/value", Handler: h.SetValue, OpenAPI: Spec.SetValue},
			{Method: "PUT", Pattern: "/{id}/file", Handler: h.UploadFile, OpenAPI: Spec.UploadFile},
			{Method: "GET", Pattern: "/{id}/file", Handler: h.DownloadFile, OpenAPI: Spec.DownloadFile},
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

func (h *Handler) AssignSigner(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd AssignCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if cmd.ContactID == uuid.Nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrValidation)
		return
	}

	f, err := h.sys.AssignSigner(r.Context(), id, cmd.ContactID)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, f)
}

func (h *Handler) SetValue(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var cmd ValueCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	f, err := h.sys.SetValue(r.Context(), id, cmd.Value)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, f)
}

func (h *Handler) UploadFile(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	defer file.Close()

	if header.Size > h.maxUploadSize {
		handlers.RespondError(w, h.logger, http.StatusRequestEntityTooLarge, ErrValidation)
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	f, err := h.sys.SetFile(r.Context(), id, data, header.Filename)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, f)
}

func (h *Handler) DownloadFile(w http.ResponseWriter, r *http.Request) {
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
	if f.FileKey == nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, ErrNotFound)
		return
	}

	data, err := h.storage.Retrieve(r.Context(), *f.FileKey)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusNotFound, err)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
