// Package api provides the HTTP server for yfapi.
//
// Every endpoint under /ticker/{symbol} makes one provider call for the
// symbol and writes the result as JSON. Tabular results are flattened into
// records by package table; mapping results are cleaned of non-finite
// numbers. Provider failures are reported as 400 with a "detail" message.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	"github.com/seenimoa/yfapi/internal/config"
	"github.com/seenimoa/yfapi/internal/logging"
	"github.com/seenimoa/yfapi/internal/provider"
)

// Version is reported by /health. The CLI overrides it from build flags.
var Version = "dev"

// Server is the HTTP API server.
type Server struct {
	router   chi.Router
	cfg      *config.Config
	provider provider.Provider
	log      zerolog.Logger
}

// NewServer creates a configured API server with all routes and middleware.
func NewServer(cfg *config.Config, p provider.Provider, log zerolog.Logger) *Server {
	if cfg == nil {
		cfg = config.Default()
	}
	srv := &Server{
		cfg:      cfg,
		provider: p,
		log:      log.With().Str("module", "api").Logger(),
	}
	srv.router = srv.buildRouter()
	return srv
}

// Router returns the chi router for testing.
func (s *Server) Router() chi.Router {
	return s.router
}

// ListenAndServe serves on addr until SIGINT or SIGTERM, then drains
// in-flight requests for up to the configured shutdown timeout.
func (s *Server) ListenAndServe(addr string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Serve(ctx, addr)
}

// Serve runs the server until ctx is done.
func (s *Server) Serve(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", addr).Str("provider", s.provider.Name()).Msg("listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.API.ShutdownTimeout())
	defer cancel()
	return httpSrv.Shutdown(shutdownCtx)
}

// buildRouter configures all routes and middleware.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(s.log))
	r.Use(middleware.Recoverer)

	// CORS
	origins := []string{"*"}
	if len(s.cfg.API.CORSOrigins) > 0 {
		origins = s.cfg.API.CORSOrigins
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Not Found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)

	r.Route("/ticker/{symbol}", func(r chi.Router) {
		r.Get("/", s.handleInfo)
		r.Get("/fast-info", s.handleFastInfo)
		r.Get("/history", s.handleHistory)
		r.Get("/recommendations", s.frameHandler("recommendations", s.provider.Recommendations))
		r.Get("/income-statement", s.frameHandler("income-statement", s.provider.IncomeStatement))
		r.Get("/balance-sheet", s.frameHandler("balance-sheet", s.provider.BalanceSheet))
		r.Get("/cash-flow", s.frameHandler("cash-flow", s.provider.CashFlow))
		r.Get("/sustainability", s.frameHandler("sustainability", s.provider.Sustainability))
		r.Get("/analyst-targets", s.handleAnalystTargets)
		r.Get("/earnings-dates", s.handleEarningsDates)
		r.Get("/dividends", s.seriesHandler("dividends", s.provider.Dividends))
		r.Get("/splits", s.seriesHandler("splits", s.provider.Splits))
		r.Get("/actions", s.frameHandler("actions", s.provider.Actions))
		r.Get("/calendar", s.handleCalendar)
		r.Get("/news", s.frameHandler("news", s.provider.News))
	})

	return r
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// writeJSON encodes v before sending the header, so a value that cannot be
// encoded becomes a 500 instead of a truncated body.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		zlog.Error().Err(err).Int("status", status).Msg("failed to encode JSON response")
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(ErrorResponse{Detail: http.StatusText(http.StatusInternalServerError)})
		status = http.StatusInternalServerError
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		zlog.Error().Err(err).Msg("failed to write JSON response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Detail: msg})
}
