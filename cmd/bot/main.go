package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gfarrus-cell/Bot-Gemini/internal/bot"
	"github.com/gfarrus-cell/Bot-Gemini/internal/config"
	"github.com/gfarrus-cell/Bot-Gemini/internal/gemini"
	"github.com/gfarrus-cell/Bot-Gemini/internal/scheduler"
	"github.com/gfarrus-cell/Bot-Gemini/internal/telegram"
	"github.com/gfarrus-cell/Bot-Gemini/internal/weights"
)

// timezone is the fixed zone for weight dates and reminder clocks,
// regardless of where the caller is.
const timezone = "America/Argentina/Buenos_Aires"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[bot] %v", err)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		log.Fatalf("[bot] load timezone %s: %v", timezone, err)
	}

	tg, err := telegram.New(cfg.TelegramToken)
	if err != nil {
		log.Fatalf("[bot] %v", err)
	}

	llm := gemini.NewClient(
		cfg.GeminiAPIKey,
		cfg.GeminiBaseURL,
		cfg.GeminiModel,
		time.Duration(cfg.RequestTimeout)*time.Second,
	)
	sched := scheduler.New(tg, loc)
	handler := bot.NewHandler(tg, llm, weights.NewStore(), sched, loc)

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		log.Println("[bot] shutting down")
		tg.Stop()
	}()

	log.Printf("[bot] @%s polling model=%s", tg.Username(), cfg.GeminiModel)
	for update := range tg.Updates(cfg.PollTimeout) {
		if update.Message == nil || update.Message.Text == "" || update.Message.From == nil {
			continue
		}
		handler.Handle(update.Message.Chat.ID, update.Message.From.ID, update.Message.Text)
	}

	handler.Wait()
	sched.Stop()
}
