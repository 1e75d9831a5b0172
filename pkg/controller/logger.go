package controller

import (
	"context"
	"net"
	"net/http"
	"strings"
	"time"

	"vantage/pkg/logger"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// statusRecorder wraps http.ResponseWriter to capture the final HTTP status
// code written by the downstream handler.
type statusRecorder struct {
	http.ResponseWriter

	status int
}

// WriteHeader records the status code and forwards the call to the underlying writer.
func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

// GetClientIP attempts to determine the originating client IP address for the
// given request by checking X-Forwarded-For and X-Real-IP headers before
// falling back to the connection's remote address.
func GetClientIP(r *http.Request) string {
	// check X-Forwarded-For first
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// may contain multiple IPs: "client, proxy1, proxy2"
		ips := strings.Split(xff, ",")

		return strings.TrimSpace(ips[0]) // the first is original client
	}

	// then check X-Real-IP
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}

	// fallback to RemoteAddr
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return ip
}

// CtxKey is a string-based type used for storing values in request contexts.
// It avoids collisions with other packages' context keys.
type CtxKey string

const (
	// RequestIDKey is the context key under which the current request ID is stored.
	RequestIDKey CtxKey = "RequestID"
)

// RequestID returns the request id WithLogger stored in ctx.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)

	return id
}

// WithLogger returns a middleware that injects a request-scoped logger and
// request ID into the context, then logs a structured access log after the
// handler finishes. The otel trace id is attached when the incoming context
// carries one. Requests to quietPaths (probes, metrics scrapes) are not
// logged unless they fail. Server errors are logged at error level.
func WithLogger(quietPaths ...string) func(http.Handler) http.Handler {
	quiet := make(map[string]struct{}, len(quietPaths))
	for _, p := range quietPaths {
		if p != "" {
			quiet[p] = struct{}{}
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			// set request ID
			requestID := r.Header.Get("X-Request-Id")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			ctx = context.WithValue(ctx, RequestIDKey, requestID)

			w.Header().Set("X-Request-Id", requestID)

			// set logger
			fields := []zap.Field{zap.String(string(RequestIDKey), requestID)}
			if sc := trace.SpanContextFromContext(ctx); sc.HasTraceID() {
				fields = append(fields, zap.String("trace_id", sc.TraceID().String()))
			}
			ctx = logger.WithFields(ctx, fields...)

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r.WithContext(ctx))

			if _, ok := quiet[r.URL.Path]; ok && rec.status < http.StatusInternalServerError {
				return
			}

			log := logger.Info
			if rec.status >= http.StatusInternalServerError {
				log = logger.Error
			}
			log(ctx, "Access log",
				zap.Int("status_code", rec.status),
				zap.Float64("latency", time.Since(start).Seconds()),
				zap.String("client_ip", GetClientIP(r)),
				zap.String("user_agent", r.UserAgent()),
				zap.String("url", r.URL.String()),
				zap.String("referer", r.Referer()),
				zap.String("method", r.Method),
			)
		})
	}
}
