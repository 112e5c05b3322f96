package rest

import (
	"encoding/json"
	"errors"
	"mime"
	"net/http"

	"github.com/ewilliams-labs/moodreel/internal/core/domain"
	"github.com/ewilliams-labs/moodreel/internal/logging"
)

// Error codes returned in the "code" field of error bodies.
const (
	errCodeBadRequest       = "BAD_REQUEST"
	errCodeInvalidInput     = "INVALID_INPUT"
	errCodeNotFound         = "NOT_FOUND"
	errCodeNoCurrentStory   = "NO_CURRENT_STORY"
	errCodeDuplicate        = "DUPLICATE"
	errCodeUnsupportedMedia = "UNSUPPORTED_MEDIA_TYPE"
	errCodeInternal         = "INTERNAL"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		l := logging.WithComponent("rest")
		l.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	code := errCodeInternal
	switch status {
	case http.StatusBadRequest:
		code = errCodeBadRequest
	case http.StatusNotFound:
		code = errCodeNotFound
	case http.StatusUnsupportedMediaType:
		code = errCodeUnsupportedMedia
	}
	writeErrorWithCode(w, status, msg, code)
}

func writeErrorWithCode(w http.ResponseWriter, status int, msg, code string) {
	writeJSON(w, status, errorResponse{Error: msg, Code: code})
}

// writeServiceError maps core sentinel errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		writeErrorWithCode(w, http.StatusBadRequest, err.Error(), errCodeInvalidInput)
	case errors.Is(err, domain.ErrNoCurrentStory):
		writeErrorWithCode(w, http.StatusNotFound, "no story has been generated yet", errCodeNoCurrentStory)
	case errors.Is(err, domain.ErrNotFound):
		writeErrorWithCode(w, http.StatusNotFound, err.Error(), errCodeNotFound)
	case errors.Is(err, domain.ErrDuplicate):
		writeErrorWithCode(w, http.StatusConflict, err.Error(), errCodeDuplicate)
	default:
		l := logging.WithComponent("rest")
		l.Error().Err(err).Msg("request failed")
		writeErrorWithCode(w, http.StatusInternalServerError, "internal server error", errCodeInternal)
	}
}

func isJSONContentType(r *http.Request) bool {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	return err == nil && mediaType == "application/json"
}

// decodeJSON checks the content type and decodes the body into dst. It
// writes the error response itself and reports whether to continue.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !isJSONContentType(r) {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}
