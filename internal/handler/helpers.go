package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"litmark/internal/domain"
	"litmark/internal/httputil"
)

// handleError converts domain errors to HTTP envelope responses. Anything
// unrecognized becomes a 500 with a generic message so internals never leak.
func handleError(w http.ResponseWriter, r *http.Request, err error) {
	var httpErr domain.HTTPError
	if errors.As(err, &httpErr) {
		httputil.RespondError(w, httpErr.StatusCode(), httpErr.Error())
		return
	}

	switch {
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// NotFound is the fallback for unmatched routes.
func NotFound(w http.ResponseWriter, r *http.Request) {
	httputil.RespondError(w, http.StatusNotFound, "Resource not found")
}
