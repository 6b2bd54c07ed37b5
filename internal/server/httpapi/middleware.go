package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"spenttribe/internal/server/auth"
)

type ctxKey string

const identityKey ctxKey = "identity"

// requireAuth is the token verification gate: it extracts the bearer token,
// verifies signature and expiry, and injects the decoded identity into the
// request context. It deliberately does not re-check the user's existence in
// the store, so a token stays valid for its full lifetime.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			s.writeError(w, http.StatusUnauthorized, "Missing or malformed token")
			return
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.writeError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), identityKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// identityFromContext returns the authenticated identity injected by
// requireAuth, or nil on unprotected routes.
func identityFromContext(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(identityKey).(*auth.Claims)
	return claims
}

// statusRecorder captures the response status for request logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}
