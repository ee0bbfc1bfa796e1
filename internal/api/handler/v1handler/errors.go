package v1handler

import (
	"context"
	"errors"
	"net/http"

	"stays/pkg/logger"
	"stays/pkg/serrors"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

// statusOf maps semantic error kinds to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, serrors.ErrValidation), errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict), errors.Is(err, serrors.ErrSelfReview):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as a JSON error response. Internal errors are logged
// and replaced with a generic message so nothing from the storage layer leaks
// to clients.
func WriteError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		logger.Error(ctx, err.Error())
		writeJSON(w, status, errorResponse{Error: errorBody{
			Code:    serrors.ErrInternal.Error(),
			Message: "internal server error",
		}})

		return
	}

	code := serrors.ErrBadRequest.Error()
	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		code = serr.Kind().Error()
	}

	writeJSON(w, status, errorResponse{Error: errorBody{
		Code:    code,
		Message: err.Error(),
	}})
}
