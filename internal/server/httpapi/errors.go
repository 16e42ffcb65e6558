package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tuchka/internal/common"
)

const (
	statusSuccess = "Success"
	statusError   = "Error"
)

// Response is the body of every non-data reply.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		//nolint:errcheck // best-effort write; the client may be gone
		json.NewEncoder(w).Encode(v)
	}
}

func writeSuccess(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Response{Status: statusSuccess, Message: message})
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, Response{Status: statusError, Message: message})
}

// writeServiceError maps service errors to HTTP statuses. Unknown errors are
// logged and reported as 500 without detail.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var status int
	message := err.Error()

	switch {
	case errors.Is(err, common.ErrDuplicateUsername):
		status, message = http.StatusConflict, "User already exist!"
	case errors.Is(err, common.ErrDuplicateEmail):
		status, message = http.StatusConflict, "Email already exist!"
	case errors.Is(err, common.ErrDuplicate), errors.Is(err, common.ErrVersionConflict):
		status = http.StatusConflict
	case errors.Is(err, common.ErrorNotFound):
		status, message = http.StatusNotFound, "User does not exist"
	case errors.Is(err, common.ErrPasswordMismatch), errors.Is(err, common.ErrCredentialPolicy):
		status = http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidToken):
		status, message = http.StatusBadRequest, "Invalid token!"
	case errors.Is(err, common.ErrUnauthenticated):
		status = http.StatusUnauthorized
	case errors.Is(err, common.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, common.ErrorInternal):
		fallthrough
	default:
		s.logger.Error(r.Context(), "request failed",
			"path", r.URL.Path,
			"request_id", r.Context().Value(ctxKeyRequestID),
			"error", err,
		)
		status, message = http.StatusInternalServerError, "Internal server error"
	}

	writeError(w, status, message)
}

func isUnauthenticated(err error) bool {
	return errors.Is(err, common.ErrUnauthenticated)
}

// decodeJSON reads the request body into v, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "Malformed request body")
		return false
	}
	return true
}
