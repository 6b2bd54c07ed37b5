package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(context.Background(), "response encoding error", "error", err.Error())
	}
}

// writeError emits the uniform {"error": message} body.
func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// internalError logs the underlying failure and responds with a 500. In
// production the message is masked so store internals never reach clients.
func (s *Server) internalError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err.Error())

	message := err.Error()
	if s.production {
		message = "Internal Server Error"
	}
	s.writeError(w, http.StatusInternalServerError, message)
}

// decodeJSON decodes the request body into v, reporting malformed bodies to
// the caller as a plain error.
func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}
