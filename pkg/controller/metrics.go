package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "vantage/pkg/controller"

// WithMetrics returns a middleware recording request counts and latencies on
// instruments created from mp. Routes are labelled by their chi pattern so
// path parameters do not explode cardinality.
func WithMetrics(mp metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	meter := mp.Meter(meterName)

	requests, err := meter.Int64Counter("http.server.requests",
		metric.WithDescription("Number of handled HTTP requests"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}
	duration, err := meter.Float64Histogram("http.server.request.duration",
		metric.WithDescription("Duration of handled HTTP requests"),
		metric.WithUnit("s"))
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				route = rctx.RoutePattern()
			}
			attrs := metric.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.route", route),
				attribute.String("http.status_code", strconv.Itoa(rec.status)),
			)
			requests.Add(r.Context(), 1, attrs)
			duration.Record(r.Context(), time.Since(start).Seconds(), attrs)
		})
	}, nil
}
