// Package httpapi exposes the expense tracker over a JSON HTTP API. It owns
// the routes, the bearer-token gate on protected operations, and the single
// boundary that converts service errors into {"error": ...} responses.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"spenttribe/internal/logging"
	"spenttribe/internal/server/analytics"
	"spenttribe/internal/server/config"
	"spenttribe/internal/server/expenses"
	"spenttribe/internal/server/receipts"
	"spenttribe/internal/server/users"
)

type Server struct {
	addr      string
	logger    logging.Logger
	users     *users.Service
	expenses  *expenses.Service
	analytics *analytics.Service
	receipts  *receipts.Service
	jwtSecret []byte

	production      bool
	receiptsEnabled bool
}

func NewServer(cfg *config.Config, l logging.Logger, us *users.Service, es *expenses.Service, as *analytics.Service, rs *receipts.Service) *Server {
	return &Server{
		addr:            cfg.Addr,
		logger:          l.With("module", "httpapi"),
		users:           us,
		expenses:        es,
		analytics:       as,
		receipts:        rs,
		jwtSecret:       []byte(cfg.SecretKey),
		production:      cfg.IsProduction(),
		receiptsEnabled: cfg.ReceiptsEnabled(),
	}
}

// Handler builds the route table. Register and login are open; everything
// else sits behind the bearer-token gate.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)

	mux.HandleFunc("POST /api/auth/register", s.handleRegister)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	mux.HandleFunc("GET /api/expenses", s.requireAuth(s.handleListExpenses))
	mux.HandleFunc("POST /api/expenses", s.requireAuth(s.handleCreateExpense))
	mux.HandleFunc("DELETE /api/expenses/{id}", s.requireAuth(s.handleDeleteExpense))

	mux.HandleFunc("POST /api/expenses/{id}/receipt", s.requireAuth(s.handleAttachReceipt))
	mux.HandleFunc("GET /api/expenses/{id}/receipt", s.requireAuth(s.handleGetReceipt))

	mux.HandleFunc("GET /api/analytics/monthly", s.requireAuth(s.handleMonthlyAnalytics))

	return s.logRequests(mux)
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.addr)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
