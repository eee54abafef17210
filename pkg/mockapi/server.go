// Package mockapi serves an in-memory imitation of the TriggerX data API.
// It backs SDK tests and the CLI's mock-server command.
package mockapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/trigg3rX/triggerx-sdk-go/pkg/logging"
)

type Server struct {
	router *mux.Router
	cors   *cors.Cors
	store  *Store
	apiKey string
	logger logging.Logger
}

// NewServer creates a server that accepts requests carrying apiKey.
func NewServer(apiKey string, logger logging.Logger) *Server {
	if logger == nil {
		logger = logging.NewNoOpLogger()
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Accept", "Content-Length", "Accept-Encoding", "Origin", "X-Requested-With", "X-Api-Key"},
	})

	s := &Server{
		router: mux.NewRouter(),
		cors:   corsHandler,
		store:  NewStore(),
		apiKey: apiKey,
		logger: logger,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	api := s.router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/health", s.health).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(s.apiKeyMiddleware)

	protected.HandleFunc("/users/{id:[0-9]+}", s.getUser).Methods(http.MethodGet)
	protected.HandleFunc("/wallet/points/{address}", s.getWalletPoints).Methods(http.MethodGet)

	protected.HandleFunc("/jobs", s.createJobs).Methods(http.MethodPost)
	protected.HandleFunc("/jobs/user/{address}", s.getJobsByUser).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/delete/{id:[0-9]+}", s.deleteJob).Methods(http.MethodPut)
	protected.HandleFunc("/jobs/{id:[0-9]+}", s.getJob).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/{id:[0-9]+}", s.updateJob).Methods(http.MethodPut)
	protected.HandleFunc("/jobs/{id:[0-9]+}/lastexecuted", s.updateLastExecuted).Methods(http.MethodPut)
}

// Handler returns the router wrapped with CORS handling.
func (s *Server) Handler() http.Handler {
	return s.cors.Handler(s.router)
}

// Store exposes the backing store so tests can seed or inspect it.
func (s *Server) Store() *Store {
	return s.store
}

// Start listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting mock API server", "addr", addr)
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("mock API server failed: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("Shutting down mock API server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}
