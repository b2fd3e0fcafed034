// Package server exposes the charging advisor over HTTP.
//
// Routes (JSON bodies use location names, not indices):
//
//	GET  /api/charging/locations
//	GET  /api/charging/stations           charger locations, cheapest first
//	POST /api/charging/distances          {"from"}
//	POST /api/charging/path               {"origin","destination"}
//	POST /api/charging/adjacent           {"from"}
//	POST /api/charging/cheapest-adjacent  {"from","amount"?}
//	POST /api/charging/nearest            {"from"}
//	POST /api/charging/cheapest-other     {"from","amount"?}
//	POST /api/charging/cheapest-route     {"origin","destination","amount"?}
//	POST /api/charging/best-plan          {"origin","destination","amount"?}
//	GET  /metrics
//
// A missing amount is drawn from advisor.RandomAmount. Unknown locations
// and validation failures answer 400; "nothing found" answers 200 with
// found=false.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/katalvlaran/evcharge/advisor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/rand"
)

// Options configures a Server.
type Options struct {
	Logger          *slog.Logger
	Registry        *prometheus.Registry
	Seed            uint64
	ShutdownTimeout time.Duration
}

// Option represents a functional option for configuring a Server.
type Option func(*Options)

// DefaultOptions returns a Server configuration that discards logs, uses
// a private registry and seeds amounts from the clock.
func DefaultOptions() Options {
	return Options{
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registry:        prometheus.NewRegistry(),
		Seed:            uint64(time.Now().UnixNano()),
		ShutdownTimeout: 10 * time.Second,
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l == nil {
			panic("server: nil logger")
		}
		o.Logger = l
	}
}

// WithRegistry sets the prometheus registry served at /metrics.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(o *Options) {
		if reg == nil {
			panic("server: nil registry")
		}
		o.Registry = reg
	}
}

// WithSeed fixes the seed of generated charging amounts. Zero keeps the
// clock-based default.
func WithSeed(seed uint64) Option {
	return func(o *Options) {
		if seed != 0 {
			o.Seed = seed
		}
	}
}

// WithShutdownTimeout bounds graceful shutdown in Run.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			panic("server: shutdown timeout must be positive")
		}
		o.ShutdownTimeout = d
	}
}

// Server serves one Advisor.
type Server struct {
	adv     *advisor.Advisor
	log     *slog.Logger
	metrics *metrics
	rng     *rand.Rand
	router  chi.Router
	opts    Options
}

// New builds the router for adv.
func New(adv *advisor.Advisor, opts ...Option) *Server {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	src := &rand.LockedSource{}
	src.Seed(o.Seed)

	s := &Server{
		adv:     adv,
		log:     o.Logger,
		metrics: newMetrics(o.Registry),
		rng:     rand.New(src),
		opts:    o,
	}
	s.router = s.routes()

	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)
	r.Use(s.metrics.instrument)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Handle("/metrics", promhttp.HandlerFor(s.opts.Registry, promhttp.HandlerOpts{}))

	r.Route("/api/charging", func(r chi.Router) {
		r.Get("/locations", s.locations)
		r.Get("/stations", s.stations)
		r.Post("/distances", s.distances)
		r.Post("/path", s.path)
		r.Post("/adjacent", s.adjacent)
		r.Post("/cheapest-adjacent", s.cheapestAdjacent)
		r.Post("/nearest", s.nearest)
		r.Post("/cheapest-other", s.cheapestOther)
		r.Post("/cheapest-route", s.cheapestRoute)
		r.Post("/best-plan", s.bestPlan)
	})

	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run listens on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", slog.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Info("request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			slog.Int("bytes", ww.BytesWritten()),
			slog.Duration("elapsed", time.Since(start)),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
