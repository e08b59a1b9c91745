// Package server exposes the desk engines over HTTP. One invoke endpoint
// carries the whole action protocol; failures stay in-band, so the endpoint
// always answers 200 with a typed response envelope.
package server

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"

	dispatchx "github.com/tanpawarit/Libria-Library-Backend/agent/dispatch"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const maxRequestBytes = 1 << 20

type Config struct {
	Addr            string        `split_words:"true" default:":8080"`
	ReadTimeout     time.Duration `split_words:"true" default:"10s"`
	WriteTimeout    time.Duration `split_words:"true" default:"10s"`
	ShutdownTimeout time.Duration `split_words:"true" default:"5s"`
}

type Server struct {
	dispatcher *dispatchx.Dispatcher
	router     *mux.Router
}

func New(dispatcher *dispatchx.Dispatcher) *Server {
	s := &Server{
		dispatcher: dispatcher,
		router:     mux.NewRouter(),
	}
	s.router.HandleFunc("/v1/invoke", s.handleInvoke).Methods(http.MethodPost)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return s
}

func (s *Server) Router() *mux.Router {
	return s.router
}

// ListenAndServe blocks serving the API on cfg.Addr until the listener
// fails or the process receives SIGINT/SIGTERM, then drains in-flight
// requests for up to cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(cfg Config) error {
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", cfg.Addr).Msg("desk server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("desk server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handleInvoke(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	started := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		http.Error(w, "failed to read body", http.StatusBadRequest)
		return
	}

	resp := s.dispatcher.Handle(r.Context(), body)

	log.Info().
		Str("request_id", requestID).
		Str("type", string(resp.Type)).
		Dur("elapsed", time.Since(started)).
		Msg("invoke")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("encode response failed")
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
