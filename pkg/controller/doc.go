// Package controller contains HTTP middlewares and helper handlers used by the API server.
//
// Provided middlewares:
//   - WithCORS: Adds CORS headers for the configured origins and handles OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info,
//     skipping successful probe and scrape requests.
//   - WithMetrics: Records request counts and latencies through an otel MeterProvider.
//
// Provided helpers:
//   - PprofMux: Returns a ServeMux exposing net/http/pprof handlers.
package controller
