// Package api configures and exposes the HTTP server, routes,
// metrics, docs and related middleware for the VANTAGE backend.
package api

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"
	"time"

	"vantage/internal/api/handler/v1handler"
	"vantage/internal/config"
	"vantage/pkg/controller"
	"vantage/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/riverqueue/river"
	"github.com/swaggest/swgui/v5emb"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"riverqueue.com/riverui"
)

// v1Spec contains the embedded OpenAPI specification for version 1 of the API.
//
//go:embed specs/v1.yaml
var v1Spec []byte

// Options holds configuration for the HTTP server and its dependencies.
// It is typically created from a config.Config via NewOptions.
// All durations are used to configure server timeouts, and zero values
// should be considered as using the defaults provided by net/http where applicable.
type Options struct {
	// V1 configures the v1 handlers (cookies).
	V1 v1handler.Options

	// Addr is the TCP address the server listens on, e.g. ":8080".
	Addr string
	// ReadTimeout is the maximum duration for reading the entire request, including the body.
	ReadTimeout time.Duration
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
	// WriteTimeout is the maximum duration before timing out writes of the response.
	WriteTimeout time.Duration
	// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled.
	IdleTimeout time.Duration
	// RequestTimeout is the global timeout applied via http.TimeoutHandler for handling requests.
	RequestTimeout time.Duration
	// MaxHeaderBytes controls the maximum number of bytes the server
	// will read parsing the request header's keys and values, including the request line.
	MaxHeaderBytes int
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// AllowedOrigins are the CORS origins. Empty allows any origin.
	AllowedOrigins []string
}

// NewOptions constructs an Options value from the provided application configuration.
// It maps HTTP server-related settings from config.Config to the Options used by the API server.
func NewOptions(cfg *config.Config) Options {
	return Options{
		V1: v1handler.NewOptions(cfg),

		Addr:              cfg.HTTP.Addr,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		RequestTimeout:    cfg.HTTP.RequestTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MetricsPath:       cfg.HTTP.MetricsPath,
		AllowedOrigins:    cfg.HTTP.AllowedOrigins,
	}
}

type Deps struct {
	v1handler.Deps

	// RiverClient backs the job dashboard. The dashboard is not mounted when nil.
	RiverClient *river.Client[pgx.Tx]
}

// NewServer wires up and returns a configured *http.Server using the provided Options.
// It sets up:
// - Prometheus metrics endpoint (MetricsPath)
// - OpenTelemetry metrics exporter (Prometheus) feeding the request metrics middleware
// - Embedded OpenAPI v1 spec and Swagger UI
// - v1 API routes under /api/v1
// - River UI job dashboard under /riverui/
// - pprof endpoints for profiling
// It also wraps the router with CORS and logging middlewares and applies a request timeout.
func NewServer(ctx context.Context, deps Deps, opts Options) (*http.Server, error) {
	// otel
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	withMetrics, err := controller.WithMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("could not create metrics middleware: %w", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withMetrics)

	// prometheus metrics server
	r.Handle(opts.MetricsPath, promhttp.Handler())

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("ok"))
	})

	// v1 specs file
	r.Get("/specs/v1.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(v1Spec)
	})
	// v1 api swagger playground
	r.Handle("/v1/docs/*", v5emb.New(
		"VANTAGE API",
		"/specs/v1.yaml",
		"/v1/docs/",
	))
	// v1 api
	v1 := v1handler.New(deps.Deps, opts.V1)
	r.Route("/api/v1", v1.Register)

	// river ui
	if deps.RiverClient != nil {
		ui, err := riverui.NewHandler(&riverui.HandlerOpts{
			Endpoints: riverui.NewEndpoints(deps.RiverClient, nil),
			Logger:    logger.Slog(ctx),
			Prefix:    "/riverui",
		})
		if err != nil {
			return nil, fmt.Errorf("could not create river ui handler: %w", err)
		}
		if err := ui.Start(ctx); err != nil {
			return nil, fmt.Errorf("could not start river ui handler: %w", err)
		}
		r.Handle("/riverui", v1.AdminOnly(ui))
		r.Handle("/riverui/*", v1.AdminOnly(ui))
	}

	// pprof
	r.Mount("/debug/pprof", http.StripPrefix("/debug/pprof", controller.PprofMux()))

	// cors
	handler := controller.WithCORS(opts.AllowedOrigins)(r)

	// logger
	handler = controller.WithLogger("/healthz", opts.MetricsPath)(handler)

	if opts.RequestTimeout > 0 {
		handler = http.TimeoutHandler(handler, opts.RequestTimeout, `{"code":"TIMEOUT","message":"request timed out"}`)
	}

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           handler,
		ReadTimeout:       opts.ReadTimeout,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
		WriteTimeout:      opts.WriteTimeout,
		IdleTimeout:       opts.IdleTimeout,
		MaxHeaderBytes:    opts.MaxHeaderBytes,
	}, nil
}
