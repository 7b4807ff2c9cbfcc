package httpapi

import (
	"encoding/json"
	"net/http"
)

// writeJSON writes data as JSON with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func ok(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, data)
}

func created(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusCreated, data)
}

func message(w http.ResponseWriter, msg string) {
	ok(w, map[string]string{"message": msg})
}

func writeAPIError(w http.ResponseWriter, e *APIError) {
	writeJSON(w, e.StatusCode, e)
}

// fail writes err as an APIError. Causes that do not map to a known
// error are logged and replaced by a generic 500.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	apiErr, known := toAPIError(err)
	if !known {
		s.logger.Error(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeAPIError(w, apiErr)
}
