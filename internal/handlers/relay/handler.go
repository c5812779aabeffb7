package relay

import (
	"net/http"

	"github.com/gorilla/mux"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/relay"
	"gitlab.com/toeic-drill.net/internal/handlers"
	"gitlab.com/toeic-drill.net/internal/handlers/response"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

// RelayHandler proxies browser calls to the external result endpoint
type RelayHandler struct {
	relayService relay.IRelayService
	logger       primary.Logger
}

func NewRelayHandler(relayService relay.IRelayService, logger primary.Logger) *RelayHandler {
	return &RelayHandler{
		relayService: relayService,
		logger:       logger,
	}
}

// RegisterRoutes registers /relay/submit. Every response on it carries CORS headers.
func (h *RelayHandler) RegisterRoutes(router *mux.Router) {
	sub := router.PathPrefix("/relay").Subrouter()
	sub.Use(handlers.New().CORSMiddleware)

	sub.HandleFunc("/submit", h.Submit).Methods(http.MethodPost)
	sub.HandleFunc("/submit", h.Fetch).Methods(http.MethodGet)
	sub.HandleFunc("/submit", h.Preflight).Methods(http.MethodOptions)
}

// Submit forwards a result event
func (h *RelayHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := handlers.DecodeJson(r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, errs.ErrInvalidRequest.Error(), http.StatusBadRequest)
		return
	}

	remote, err := h.relayService.Submit(r.Context(), req.Payload, req.GasURL)
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, SubmitResponse{Success: true, GasResponse: remote})
}

// Fetch proxies a read of the gasUrl query parameter
func (h *RelayHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	data, err := h.relayService.Fetch(r.Context(), r.URL.Query().Get("gasUrl"))
	if err != nil {
		response.WriteError(w, response.FromError(err))
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, data)
}

func (h *RelayHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
