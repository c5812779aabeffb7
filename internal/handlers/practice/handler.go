package practice

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/toeic-drill.net/internal/core/ports/primary"
	"gitlab.com/toeic-drill.net/internal/core/services/practice"
	"gitlab.com/toeic-drill.net/internal/core/services/submission"
	"gitlab.com/toeic-drill.net/internal/domain"
	"gitlab.com/toeic-drill.net/internal/handlers"
	"gitlab.com/toeic-drill.net/internal/handlers/response"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

// PracticeHandler serves the problem catalog, grading and attempt lookups
type PracticeHandler struct {
	practiceService practice.IPracticeService
	submissions     submission.ISubmissionService
	logger          primary.Logger
}

func NewPracticeHandler(practiceService practice.IPracticeService, submissions submission.ISubmissionService, logger primary.Logger) *PracticeHandler {
	return &PracticeHandler{
		practiceService: practiceService,
		submissions:     submissions,
		logger:          logger,
	}
}

func (h *PracticeHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/parts", h.GetParts).Methods(http.MethodGet)
	router.HandleFunc("/api/parts/{part}/difficulties", h.GetDifficulties).Methods(http.MethodGet)
	router.HandleFunc("/api/problems/{part}/{diff}", h.ListProblems).Methods(http.MethodGet)
	router.HandleFunc("/api/problems/{part}/{diff}/{problemId}", h.GetProblem).Methods(http.MethodGet)
	router.HandleFunc("/api/problems/{part}/{diff}/{problemId}/answers", h.Answer).Methods(http.MethodPost)
	router.HandleFunc("/api/attempts/{attemptId}", h.GetAttempt).Methods(http.MethodGet)
}

func (h *PracticeHandler) GetParts(w http.ResponseWriter, r *http.Request) {
	handlers.ResponseWithJson(w, http.StatusOK, PartsResponse{Parts: h.practiceService.Parts(r.Context())})
}

func (h *PracticeHandler) GetDifficulties(w http.ResponseWriter, r *http.Request) {
	part := domain.Part(mux.Vars(r)["part"])
	if !part.Valid() {
		handlers.ResponseError(w, "unknown part", http.StatusBadRequest)
		return
	}

	handlers.ResponseWithJson(w, http.StatusOK, DifficultiesResponse{
		Part:         part,
		Difficulties: h.practiceService.Difficulties(r.Context(), part),
	})
}

func (h *PracticeHandler) ListProblems(w http.ResponseWriter, r *http.Request) {
	part, diff, ok := scope(w, r)
	if !ok {
		return
	}

	list, err := h.practiceService.ListProblems(r.Context(), part, diff)
	if err != nil {
		h.writeError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, list)
}

func (h *PracticeHandler) GetProblem(w http.ResponseWriter, r *http.Request) {
	part, diff, ok := scope(w, r)
	if !ok {
		return
	}

	view, err := h.practiceService.GetProblem(r.Context(), part, diff, mux.Vars(r)["problemId"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, view)
}

func (h *PracticeHandler) Answer(w http.ResponseWriter, r *http.Request) {
	part, diff, ok := scope(w, r)
	if !ok {
		return
	}

	var req AnswerRequest
	if err := handlers.DecodeJson(r, &req); err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		handlers.ResponseError(w, errs.ErrInvalidRequest.Error(), http.StatusBadRequest)
		return
	}

	outcome, err := h.practiceService.Answer(r.Context(), part, diff, mux.Vars(r)["problemId"], req.Answers)
	if err != nil {
		h.writeError(w, err)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, outcome)
}

func (h *PracticeHandler) GetAttempt(w http.ResponseWriter, r *http.Request) {
	idStr := mux.Vars(r)["attemptId"]
	id, err := uuid.Parse(idStr)
	if err != nil {
		h.logger.Error("Invalid attempt ID", "id", idStr)
		handlers.ResponseError(w, "invalid attempt id", http.StatusBadRequest)
		return
	}

	attempt := h.submissions.Attempt(id)
	if attempt == nil {
		handlers.ResponseError(w, "attempt not found", http.StatusNotFound)
		return
	}
	handlers.ResponseWithJson(w, http.StatusOK, attempt.Snapshot())
}

func (h *PracticeHandler) writeError(w http.ResponseWriter, err error) {
	if !errors.Is(err, errs.ErrProblemNotFound) && !errors.Is(err, errs.ErrInvalidAnswer) {
		h.logger.Error("Practice request failed", "error", err)
	}
	response.WriteError(w, response.FromError(err))
}

func scope(w http.ResponseWriter, r *http.Request) (domain.Part, domain.Difficulty, bool) {
	vars := mux.Vars(r)
	part := domain.Part(vars["part"])
	diff := domain.Difficulty(vars["diff"])
	if !part.Valid() || !diff.Valid() {
		handlers.ResponseError(w, "unknown part or difficulty", http.StatusBadRequest)
		return "", "", false
	}
	return part, diff, true
}
