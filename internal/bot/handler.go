// Package bot routes incoming messages to command handlers and the
// Gemini answer delegate.
package bot

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gfarrus-cell/Bot-Gemini/internal/parse"
	"github.com/gfarrus-cell/Bot-Gemini/internal/scheduler"
	"github.com/gfarrus-cell/Bot-Gemini/internal/weights"
)

// maxAnswerRunes caps Gemini replies before they reach the transport.
const maxAnswerRunes = 4000

// Sender delivers a reply to a chat.
type Sender interface {
	SendMessage(chatID int64, text string) error
}

// Answerer generates an answer for free-form text.
type Answerer interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// Handler dispatches one update at a time. Command handlers run inline;
// only the answer delegate runs on its own goroutine so the poll loop
// keeps flowing while Gemini thinks.
type Handler struct {
	sender   Sender
	answerer Answerer
	weights  *weights.Store
	sched    *scheduler.Scheduler
	loc      *time.Location

	wg sync.WaitGroup
}

// NewHandler wires the handler's collaborators.
func NewHandler(sender Sender, answerer Answerer, store *weights.Store, sched *scheduler.Scheduler, loc *time.Location) *Handler {
	return &Handler{
		sender:   sender,
		answerer: answerer,
		weights:  store,
		sched:    sched,
		loc:      loc,
	}
}

// Handle routes a single message. Command matching is exact and
// case-sensitive on the first token; anything else, including unknown
// /commands, goes to Gemini. Blank text is ignored.
func (h *Handler) Handle(chatID, userID int64, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	if strings.HasPrefix(trimmed, "/") {
		fields := strings.Fields(trimmed)
		switch fields[0] {
		case "/start":
			h.send(chatID, startText)
			return
		case "/planalimentos":
			h.send(chatID, dietPlanText)
			return
		case "/planentrenamiento":
			h.send(chatID, trainingPlanText)
			return
		case "/seguimientopeso":
			h.trackWeight(chatID, userID, trimmed)
			return
		case "/recordatorios":
			h.registerReminder(chatID, fields[1:])
			return
		}
	}

	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		h.answer(chatID, trimmed)
	}()
}

// Wait blocks until in-flight answer goroutines finish.
func (h *Handler) Wait() {
	h.wg.Wait()
}

func (h *Handler) trackWeight(chatID, userID int64, text string) {
	kg, ok := parse.Weight(text)
	if !ok {
		h.send(chatID, weightUsageText)
		return
	}

	date := time.Now().In(h.loc).Format("2006-01-02")
	prev := h.weights.Add(userID, kg, date)

	if prev == nil {
		h.send(chatID, fmt.Sprintf("Anotado ✅ Tu peso actual: %.1f kg.", kg))
		return
	}
	diff := kg - *prev
	arrow := "➡️"
	if diff < 0 {
		arrow = "⬇️"
	} else if diff > 0 {
		arrow = "⬆️"
	}
	h.send(chatID, fmt.Sprintf("Anotado ✅ %s Cambio vs anterior: %+.1f kg (actual %.1f kg).", arrow, diff, kg))
}

func (h *Handler) registerReminder(chatID int64, args []string) {
	clock, message, ok := parse.TimeAndText(args)
	if !ok {
		h.send(chatID, reminderUsageText)
		return
	}
	if message == "" {
		h.send(chatID, reminderEmptyText)
		return
	}

	job, err := h.sched.RunDaily(chatID, clock.Hour, clock.Minute, message)
	if err != nil {
		log.Printf("[bot] register reminder chat_id=%d: %v", chatID, err)
		h.send(chatID, reminderFailedText)
		return
	}
	log.Printf("[bot] reminder registered name=%s", job.Name)
	h.send(chatID, fmt.Sprintf("Listo. Te lo recuerdo todos los días a las %s.", clock))
}

func (h *Handler) answer(chatID int64, prompt string) {
	reply, err := h.answerer.Ask(context.Background(), prompt)
	if err != nil {
		log.Printf("[gemini] chat_id=%d: %v", chatID, err)
		h.send(chatID, apologyText)
		return
	}
	h.send(chatID, truncate(reply, maxAnswerRunes))
}

func (h *Handler) send(chatID int64, text string) {
	if err := h.sender.SendMessage(chatID, text); err != nil {
		log.Printf("[bot] send to chat_id=%d failed: %v", chatID, err)
	}
}

func truncate(s string, maxChars int) string {
	runes := []rune(s)
	if len(runes) <= maxChars {
		return s
	}
	return string(runes[:maxChars])
}
