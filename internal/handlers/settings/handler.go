package settings

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/endpoint"
	"gitlab.com/toeic-drill.net/internal/handlers"
	"gitlab.com/toeic-drill.net/internal/handlers/response"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

// EndpointRequest is the body of PUT /api/settings/endpoint
type EndpointRequest struct {
	URL string `json:"url"`
}

type EndpointResponse struct {
	URL        string `json:"url"`
	Configured bool   `json:"configured"`
}

// SettingsHandler manages the external endpoint URL
type SettingsHandler struct {
	store  endpoint.IEndpointStore
	logger primary.Logger
}

func NewSettingsHandler(store endpoint.IEndpointStore, logger primary.Logger) *SettingsHandler {
	return &SettingsHandler{
		store:  store,
		logger: logger,
	}
}

func (h *SettingsHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/settings/endpoint", h.GetEndpoint).Methods(http.MethodGet)
	router.HandleFunc("/api/settings/endpoint", h.PutEndpoint).Methods(http.MethodPut)
	router.HandleFunc("/api/settings/endpoint", h.DeleteEndpoint).Methods(http.MethodDelete)
}

func (h *SettingsHandler) GetEndpoint(w http.ResponseWriter, r *http.Request) {
	url := h.store.Get()
	handlers.ResponseWithJson(w, http.StatusOK, EndpointResponse{URL: url, Configured: url != ""})
}

// PutEndpoint replaces the URL; an empty url clears it
func (h *SettingsHandler) PutEndpoint(w http.ResponseWriter, r *http.Request) {
	var req EndpointRequest
	if err := handlers.DecodeJson(r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, errs.ErrInvalidRequest.Error(), http.StatusBadRequest)
		return
	}

	if err := endpoint.ValidateURL(req.URL); err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	if err := h.store.Set(r.Context(), req.URL); err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, EndpointResponse{URL: req.URL, Configured: req.URL != ""})
}

func (h *SettingsHandler) DeleteEndpoint(w http.ResponseWriter, r *http.Request) {
	if err := h.store.Set(r.Context(), ""); err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
