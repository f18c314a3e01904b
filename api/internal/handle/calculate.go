package handle

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/store"
)

const cacheMaxAge = 24 * time.Hour

type CalculateRequest struct {
	Image      string           `json:"image"`
	DictOfVars calc.VariableMap `json:"dict_of_vars"`
}

type CalculateResponse struct {
	Message string          `json:"message"`
	Status  string          `json:"status"`
	Data    calc.ResultList `json:"data"`
}

func (h *Handle) Calculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
		return
	}

	img, err := h.pipe.Decode(req.Image)
	if err != nil {
		http.Error(w, "bad image payload: "+err.Error(), http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 120*time.Second)
	defer cancel()

	eng := h.pipe.Engine()
	imageHash, varsHash := hashKey(img.Data, req.DictOfVars)

	if h.repo != nil {
		if cached, err := h.repo.FindByHash(ctx, imageHash, varsHash, eng.Name(), eng.GetModel(), cacheMaxAge); err == nil {
			writeJSON(w, http.StatusOK, CalculateResponse{Message: "Image processed", Status: "success", Data: cached})
			return
		} else if !errors.Is(err, store.ErrNotFound) {
			log.Printf("calc cache lookup failed: %v", err)
		}
	}

	results, err := h.pipe.Run(ctx, img, req.DictOfVars)
	if err != nil {
		http.Error(w, "calculate error: "+err.Error(), http.StatusBadGateway)
		return
	}

	if h.repo != nil {
		if err := h.repo.Upsert(ctx, imageHash, varsHash, eng.Name(), eng.GetModel(), results); err != nil {
			log.Printf("calc cache upsert failed: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, CalculateResponse{Message: "Image processed", Status: "success", Data: results})
}

func hashKey(image []byte, vars calc.VariableMap) (imageHash, varsHash string) {
	ih := sha256.Sum256(image)
	vj, _ := json.Marshal(vars)
	vh := sha256.Sum256(vj)
	return hex.EncodeToString(ih[:]), hex.EncodeToString(vh[:])
}
