package httpserver

import (
	"log"
	"net/http"
)

// WithCORS allows the canvas frontend, served from another origin, to call
// the API. origin is usually "*".
func WithCORS(origin string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", origin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func Start(addr string, h http.Handler) error {
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, h)
}
