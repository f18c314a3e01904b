package handle

import (
	"encoding/json"
	"net/http"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/store"
)

type Handle struct {
	pipe *calc.Pipeline

	// nil when no database is configured; the cache then degrades to a no-op.
	repo *store.CalcRepo
}

func New(pipe *calc.Pipeline, repo *store.CalcRepo) *Handle {
	return &Handle{pipe: pipe, repo: repo}
}

func (h *Handle) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server is running"})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
