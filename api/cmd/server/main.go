package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc/gemini"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/config"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/handle"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/httpserver"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/store"
)

func main() {
	cfg := config.Load()

	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.Port = p
	} else if strings.TrimSpace(cfg.Port) == "" {
		cfg.Port = "8000"
	}

	pipe := calc.NewPipeline(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel))

	// The result cache is optional: without a DSN the server runs stateless.
	var repo *store.CalcRepo
	if dsn := strings.TrimSpace(cfg.DatabaseURL); dsn != "" {
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("sql.Open: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(1 * time.Hour)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := db.PingContext(ctx); err != nil {
			log.Fatalf("db.Ping: %v", err)
		}
		cancel()
		repo = store.NewCalcRepo(db)
		log.Printf("result cache enabled")
	}

	h := handle.New(pipe, repo)

	mux := http.NewServeMux()
	mux.HandleFunc("/", h.Root)
	mux.HandleFunc("/calculate", h.Calculate)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := ":" + cfg.Port
	log.Fatal(httpserver.Start(addr, httpserver.WithCORS(cfg.CORSOrigin, mux)))
}
