package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/util"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func (b *Bot) acceptPhoto(msg *tgbotapi.Message) {
	cid := msg.Chat.ID
	b.send(cid, "Got the photo, working on it…")

	ph := msg.Photo[len(msg.Photo)-1]
	tf, err := b.API.GetFile(tgbotapi.FileConfig{FileID: ph.FileID})
	if err != nil {
		b.sendError(cid, err)
		return
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", b.API.Token, tf.FilePath)
	imgBytes, err := download(url)
	if err != nil {
		b.sendError(cid, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	img := calc.Image{Data: imgBytes, MIME: util.SniffMimeHTTP(imgBytes)}
	results, err := b.Pipe.Run(ctx, img, b.chatVars(cid))
	if err != nil {
		b.sendError(cid, err)
		return
	}
	if len(results) == 0 {
		b.send(cid, "I could not read anything from that drawing.")
		return
	}

	for _, rec := range results {
		if assigned, _ := rec["assign"].(bool); assigned {
			if name, ok := rec["expr"].(string); ok {
				b.setVar(cid, name, rec["result"])
			}
		}
	}
	b.send(cid, formatResults(results))
}

func formatResults(results calc.ResultList) string {
	var sb strings.Builder
	for _, rec := range results {
		expr := fmt.Sprint(rec["expr"])
		res := fmt.Sprint(rec["result"])
		if assigned, _ := rec["assign"].(bool); assigned {
			fmt.Fprintf(&sb, "%s = %s (saved)\n", expr, res)
		} else {
			fmt.Fprintf(&sb, "%s = %s\n", expr, res)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("status %d: %s", resp.StatusCode, string(x))
	}
	return io.ReadAll(resp.Body)
}
