package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	temporalclient "go.temporal.io/sdk/client"

	"github.com/Think-iT-Labs/jad/internal/api/handler"
	mw "github.com/Think-iT-Labs/jad/internal/api/middleware"
	"github.com/Think-iT-Labs/jad/internal/certstore"
	"github.com/Think-iT-Labs/jad/internal/config"
	"github.com/Think-iT-Labs/jad/internal/core"
)

type Server struct {
	router         chi.Router
	logger         zerolog.Logger
	services       *core.Services
	certs          *certstore.Store
	certPool       *pgxpool.Pool
	temporalClient temporalclient.Client
	cfg            *config.Config
}

func NewServer(logger zerolog.Logger, services *core.Services, certs *certstore.Store, certPool *pgxpool.Pool, temporalClient temporalclient.Client, cfg *config.Config) *Server {
	s := &Server{
		router:         chi.NewRouter(),
		logger:         logger,
		services:       services,
		certs:          certs,
		certPool:       certPool,
		temporalClient: temporalClient,
		cfg:            cfg,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(middleware.Recoverer)
	s.router.Use(mw.Metrics)
}

func (s *Server) setupRoutes() {
	// Prometheus metrics endpoint
	s.router.Handle("/metrics", promhttp.Handler())

	// Health check endpoints
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	runner := &workflowRunner{tc: s.temporalClient}

	s.router.Route("/api/v1", func(r chi.Router) {
		// Participants
		participant := handler.NewParticipant(runner, s.services.Participants)
		r.Post("/participants", participant.Onboard)
		r.Get("/participants/{id}", participant.Get)

		// Data requests
		data := handler.NewData(runner)
		r.Post("/participants/{id}/data", data.Request)
		r.Post("/participants/{id}/transfer", data.SetupTransfer)

		// Catalog
		catalog := handler.NewCatalog(s.services.Catalog)
		r.Post("/participants/{id}/catalog", catalog.Request)

		// Certificate exchange (internal)
		if s.certs != nil {
			cert := handler.NewCert(s.certs)
			r.Post("/certs", cert.Upload)
			r.Get("/certs", cert.Query)
			r.Get("/certs/{id}", cert.Get)
			r.Get("/certs/{id}/content", cert.Download)
			r.Delete("/certs/{id}", cert.Delete)
		}
	})

	// Certificate exchange (public, token-authorized)
	if s.certs != nil {
		cert := handler.NewCert(s.certs)
		s.router.Route("/public/v1/certs", func(r chi.Router) {
			r.Use(mw.TokenAuth(s.cfg.CertExchangeToken))
			r.Get("/", cert.Query)
			r.Get("/{id}", cert.Get)
			r.Get("/{id}/content", cert.Download)
		})
	}
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if s.certPool != nil {
		if err := s.certPool.Ping(ctx); err != nil {
			checks["cert_db"] = err.Error()
			healthy = false
		} else {
			checks["cert_db"] = "ok"
		}
	}

	if _, err := s.temporalClient.CheckHealth(ctx, &temporalclient.CheckHealthRequest{}); err != nil {
		checks["temporal"] = err.Error()
		healthy = false
	} else {
		checks["temporal"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
