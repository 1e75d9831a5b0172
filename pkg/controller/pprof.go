package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

// PprofMux returns an http.ServeMux with net/http/pprof handlers registered
// at the root. It is meant to be mounted behind http.StripPrefix, so named
// profiles (heap, goroutine, ...) are resolved from the remaining path.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if name := strings.TrimPrefix(r.URL.Path, "/"); name != "" {
			pprof.Handler(name).ServeHTTP(w, r)

			return
		}
		pprof.Index(w, r)
	})
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	return mux
}
