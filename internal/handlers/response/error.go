package response

import (
	"errors"
	"net/http"

	"gitlab.com/toeic-drill.net/internal/handlers"
	"gitlab.com/toeic-drill.net/internal/static/errs"
)

type ErrorMessage struct {
	Message    string `json:"error"`
	StatusCode int    `json:"-"`
}

// FromError classifies err. Only messages that are safe to show to a
// client cross this boundary; anything unknown becomes a generic 500.
func FromError(err error) ErrorMessage {
	var statusErr *errs.ExternalStatusError
	switch {
	case errors.As(err, &statusErr):
		return ErrorMessage{Message: statusErr.Error(), StatusCode: statusErr.StatusCode}
	case errors.Is(err, errs.ErrInvalidRequest),
		errors.Is(err, errs.ErrInvalidAnswer),
		errors.Is(err, errs.ErrInvalidEndpointURL):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusBadRequest}
	case errors.Is(err, errs.ErrProblemNotFound):
		return ErrorMessage{Message: errs.ErrProblemNotFound.Error(), StatusCode: http.StatusNotFound}
	case errors.Is(err, errs.ErrEndpointNotConfigured):
		return ErrorMessage{Message: err.Error(), StatusCode: http.StatusConflict}
	case errors.Is(err, errs.ErrRelay):
		return ErrorMessage{Message: "failed to relay request", StatusCode: http.StatusInternalServerError}
	default:
		return ErrorMessage{Message: "internal error", StatusCode: http.StatusInternalServerError}
	}
}

func WriteError(w http.ResponseWriter, err ErrorMessage) {
	handlers.ResponseError(w, err.Message, err.StatusCode)
}

func WriteSuccess(w http.ResponseWriter, data interface{}) {
	handlers.ResponseWithJson(w, http.StatusOK, data)
}
