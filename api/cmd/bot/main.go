package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc/gemini"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/config"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/telegram"
)

func main() {
	cfg := config.LoadBot()

	api, err := tgbotapi.NewBotAPI(cfg.TelegramBotToken)
	if err != nil {
		log.Fatal(err)
	}
	api.Debug = false

	pipe := calc.NewPipeline(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel))
	bot := telegram.NewBot(api, pipe)

	http.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	addr := "0.0.0.0:" + cfg.Port
	if webhookURL := strings.TrimSpace(cfg.WebhookURL); webhookURL != "" {
		startWebhookMode(addr, api, bot, webhookURL)
	} else {
		startPollingMode(addr, api, bot)
	}
}

func startWebhookMode(addr string, api *tgbotapi.BotAPI, bot *telegram.Bot, baseURL string) {
	// secret webhook path derived from the token
	path := "/webhook/" + shortHash(api.Token)
	public := strings.TrimRight(baseURL, "/") + path

	wh, err := tgbotapi.NewWebhook(public)
	if err != nil {
		log.Fatal(err)
	}
	wh.DropPendingUpdates = true
	if _, err := api.Request(wh); err != nil {
		log.Fatal(err)
	}

	// ListenForWebhook registers its handler on the DefaultServeMux
	updates := api.ListenForWebhook(path)

	go func() {
		for upd := range updates {
			bot.HandleUpdate(upd)
		}
		log.Printf("webhook updates channel closed")
	}()

	log.Printf("webhook listening on %s%s", addr, path)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

func startPollingMode(addr string, api *tgbotapi.BotAPI, bot *telegram.Bot) {
	go func() {
		log.Printf("health server listening on %s/healthz", addr)
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Fatal(err)
		}
	}()

	runPolling(context.Background(), api, bot.HandleUpdate)
}

func runPolling(ctx context.Context, api *tgbotapi.BotAPI, handle func(tgbotapi.Update)) {
	offset := 0
	retryDelay := 1 * time.Second
	maxDelay := 15 * time.Second

	for {
		select {
		case <-ctx.Done():
			log.Printf("polling: context cancelled")
			return
		default:
		}

		u := tgbotapi.NewUpdate(offset)
		u.Timeout = 30 // long polling timeout (sec)

		updates, err := api.GetUpdates(u)
		if err != nil {
			log.Printf("polling error: %v; retry in %v", err, retryDelay)
			time.Sleep(retryDelay)
			if retryDelay *= 2; retryDelay > maxDelay {
				retryDelay = maxDelay
			}
			continue
		}
		retryDelay = 1 * time.Second

		for _, upd := range updates {
			if upd.UpdateID >= offset {
				offset = upd.UpdateID + 1
			}
			handle(upd)
		}

		if len(updates) == 0 {
			time.Sleep(200 * time.Millisecond)
		}
	}
}

func shortHash(s string) string {
	h := sha256.Sum256([]byte(s))
	return hex.EncodeToString(h[:])[:16]
}
