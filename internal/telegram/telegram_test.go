package telegram

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func newTestClient(t *testing.T, onSend func(r *http.Request)) *Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/getMe"):
			_, _ = io.WriteString(w, `{"ok":true,"result":{"id":1,"is_bot":true,"first_name":"test","username":"testbot"}}`)
		case strings.HasSuffix(r.URL.Path, "/sendMessage"):
			onSend(r)
			_, _ = io.WriteString(w, `{"ok":true,"result":{"message_id":1,"date":1,"chat":{"id":123,"type":"private"}}}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	api, err := tgbotapi.NewBotAPIWithAPIEndpoint("test-token", srv.URL+"/bot%s/%s")
	if err != nil {
		t.Fatalf("bot api init failed: %v", err)
	}
	return &Client{api: api}
}

func TestSendMessage_DeliversText(t *testing.T) {
	var gotChatID, gotText string
	c := newTestClient(t, func(r *http.Request) {
		gotChatID = r.FormValue("chat_id")
		gotText = r.FormValue("text")
	})

	if err := c.SendMessage(123, "hola"); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if gotChatID != "123" {
		t.Fatalf("unexpected chat_id: %s", gotChatID)
	}
	if gotText != "hola" {
		t.Fatalf("unexpected text: %s", gotText)
	}
}

func TestSendMessage_TruncatesToAPILimit(t *testing.T) {
	var gotText string
	c := newTestClient(t, func(r *http.Request) {
		gotText = r.FormValue("text")
	})

	if err := c.SendMessage(123, strings.Repeat("á", maxMessageRunes+100)); err != nil {
		t.Fatalf("SendMessage failed: %v", err)
	}
	if n := utf8.RuneCountInString(gotText); n != maxMessageRunes {
		t.Fatalf("expected %d runes, got %d", maxMessageRunes, n)
	}
}

func TestUsername(t *testing.T) {
	c := newTestClient(t, func(*http.Request) {})
	if got := c.Username(); got != "testbot" {
		t.Fatalf("unexpected username: %s", got)
	}
}
