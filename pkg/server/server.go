package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/google/uuid"
	"github.com/levenlabs/go-lflag"
	"github.com/raterudder/gridcalc/pkg/calculator"
	"github.com/raterudder/gridcalc/pkg/common"
	"github.com/raterudder/gridcalc/pkg/log"
	"github.com/raterudder/gridcalc/pkg/types"
)

const requestIDHeader = "X-Request-Id"

// Server handles the HTTP API for the calculators. Every request is a single
// stateless calculation.
type Server struct {
	calc calculator.Calculator

	listenAddr    string
	httpServer    *http.Server
	serverName    string
	cacheDuration time.Duration
}

// Configured initializes the Server with dependencies.
// It uses lflag to register command-line flags for configuration.
func Configured(c calculator.Calculator) *Server {
	srv := &Server{
		calc:       c,
		serverName: common.UserAgent(),
	}
	revision := os.Getenv("K_REVISION")
	if revision != "" {
		srv.serverName = revision
	}

	// get the port from PORT when running in cloud run
	port := os.Getenv("PORT")
	if port == "" {
		// otherwise default to 8080
		port = "8080"
	}

	listenAddr := lflag.String("http-listen", ":"+port, "HTTP server listen address")
	cacheDuration := lflag.Duration("cache-duration", 0, "Duration clients may cache calculation results (e.g. 1h, 5m). 0 means no cache.")

	lflag.Do(func() {
		srv.listenAddr = *listenAddr
		srv.cacheDuration = *cacheDuration
	})

	return srv
}

func (s *Server) setupHandler() http.Handler {
	apiMux := http.NewServeMux()
	apiMux.HandleFunc("GET /api/solar/profit", s.handleSolarProfitQuery)
	apiMux.HandleFunc("POST /api/solar/profit", s.handleSolarProfit)
	apiMux.HandleFunc("GET /api/reliability/constants", s.handleReliabilityConstants)
	apiMux.HandleFunc("GET /api/reliability/baseline", s.handleReliabilityBaseline)
	apiMux.HandleFunc("GET /api/reliability/outage-cost", s.handleOutageCostQuery)
	apiMux.HandleFunc("POST /api/reliability/outage-cost", s.handleOutageCost)

	mux := http.NewServeMux()
	mux.Handle("/api/", s.requestLogMiddleware(apiMux))
	mux.HandleFunc("/healthz", s.handleHealthz)
	return s.revisionMiddleware(gziphandler.GzipHandler(s.securityHeadersMiddleware(mux)))
}

// Run starts the HTTP server and blocks until the context is canceled or an error occurs.
// It also handles graceful shutdown when the context is done.
func (s *Server) Run(ctx context.Context) error {
	s.httpServer = &http.Server{
		Addr:         s.listenAddr,
		Handler:      s.setupHandler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  15 * time.Second,
	}

	// use a channel to capturing server errors
	errChan := make(chan error, 1)
	go func() {
		defer close(errChan)
		log.Ctx(ctx).InfoContext(ctx, "starting server", slog.String("addr", s.listenAddr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		// Context canceled, shut down gracefully
		log.Ctx(ctx).InfoContext(ctx, "shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown failed: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	}
}

func writeJSONError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(struct {
		Error string `json:"error"`
	}{Error: msg}); err != nil {
		slog.Warn("failed to write error response", slog.Any("error", err))
		panic(http.ErrAbortHandler)
	}
}

// writeCalcError reports a failed calculation. Invalid inputs are the
// caller's fault and everything else is ours.
func writeCalcError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if errors.Is(err, types.ErrInvalidArgument) {
		log.Ctx(ctx).DebugContext(ctx, "rejected calculation inputs", slog.Any("error", err))
		writeJSONError(w, err.Error(), http.StatusBadRequest)
		return
	}
	log.Ctx(ctx).ErrorContext(ctx, msg, slog.Any("error", err))
	writeJSONError(w, msg, http.StatusInternalServerError)
}

// writeResult writes v as JSON. The calculations are deterministic so the
// results can be cached for as long as the server allows.
//
// Inputs that are individually valid can still overflow, and JSON has no way
// to represent NaN or Inf, so such results are rejected with 422.
func (s *Server) writeResult(w http.ResponseWriter, r *http.Request, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		ctx := r.Context()
		var uve *json.UnsupportedValueError
		if errors.As(err, &uve) {
			log.Ctx(ctx).DebugContext(ctx, "result is not finite", slog.String("value", uve.Str))
			writeJSONError(w, "result is not a finite number: "+uve.Str, http.StatusUnprocessableEntity)
			return
		}
		log.Ctx(ctx).ErrorContext(ctx, "failed to encode result", slog.Any("error", err))
		writeJSONError(w, "failed to encode result", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if s.cacheDuration > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(s.cacheDuration.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-store")
	}
	if _, err := w.Write(append(b, '\n')); err != nil {
		panic(http.ErrAbortHandler)
	}
}

// decodeJSONBody decodes the request body into v, rejecting unknown fields.
func decodeJSONBody(w http.ResponseWriter, r *http.Request, v any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ok")); err != nil {
		panic(http.ErrAbortHandler)
	}
}

// requestLogMiddleware attaches a logger carrying the request ID to the
// request context. A valid incoming X-Request-Id is reused.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, requestID)

		ctx := log.WithAttrs(r.Context(), slog.String("requestID", requestID))
		start := time.Now()
		next.ServeHTTP(w, r.WithContext(ctx))
		log.Ctx(ctx).DebugContext(
			ctx,
			"handled request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("duration", time.Since(start)),
		)
	})
}

func (s *Server) revisionMiddleware(next http.Handler) http.Handler {
	if s.serverName == "" {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", s.serverName)
		next.ServeHTTP(w, r)
	})
}
