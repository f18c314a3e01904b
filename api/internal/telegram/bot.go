package telegram

import (
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Sri-dinesh/CogniSketch-Backend/api/internal/calc"
)

// Bot answers photos of hand-drawn math with computed results. It is a
// caller of the pipeline, so it owns the per-chat variable context the
// stateless core does not keep: assignments recognized in one photo are fed
// back into the next one from the same chat.
type Bot struct {
	API  *tgbotapi.BotAPI
	Pipe *calc.Pipeline

	mu   sync.Mutex
	vars map[int64]calc.VariableMap
}

func NewBot(api *tgbotapi.BotAPI, pipe *calc.Pipeline) *Bot {
	return &Bot{
		API:  api,
		Pipe: pipe,
		vars: make(map[int64]calc.VariableMap),
	}
}

func (b *Bot) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	msg := upd.Message
	cid := msg.Chat.ID

	if msg.IsCommand() {
		switch msg.Command() {
		case "start":
			b.send(cid, "Send me a photo of a hand-drawn expression, equation or sketch and I will solve it. Assignments like x = 4 are remembered per chat; /clear forgets them.")
		case "clear":
			b.clearVars(cid)
			b.send(cid, "Variables cleared.")
		default:
			b.send(cid, "Unknown command")
		}
		return
	}

	if len(msg.Photo) > 0 {
		b.acceptPhoto(msg)
	}
}

func (b *Bot) chatVars(cid int64) calc.VariableMap {
	b.mu.Lock()
	defer b.mu.Unlock()
	snapshot := make(calc.VariableMap, len(b.vars[cid]))
	for k, v := range b.vars[cid] {
		snapshot[k] = v
	}
	return snapshot
}

func (b *Bot) setVar(cid int64, name string, value any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	m := b.vars[cid]
	if m == nil {
		m = make(calc.VariableMap)
		b.vars[cid] = m
	}
	m[name] = value
}

func (b *Bot) clearVars(cid int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.vars, cid)
}

func (b *Bot) send(chatID int64, text string) {
	_, _ = b.API.Send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) sendError(chatID int64, err error) {
	b.send(chatID, "Could not process that: "+err.Error())
}
