package bot

import (
	"CallRelay/internal/lib/sl"
	"fmt"
	"log/slog"
	"time"

	tgbotapi "github.com/PaulSonOfLars/gotgbot/v2"
)

// Telegram rejects longer messages.
const maxMessageLength = 4096

type TgBot struct {
	log     *slog.Logger
	api     *tgbotapi.Bot
	adminId int64
}

func NewTgBot(apiKey string, adminId int64, log *slog.Logger) (*TgBot, error) {
	tgBot := &TgBot{
		log:     log.With(sl.Module("tgbot")),
		adminId: adminId,
	}

	api, err := tgbotapi.NewBot(apiKey, nil)
	if err != nil {
		return nil, fmt.Errorf("creating api instance: %v", err)
	}
	tgBot.api = api

	return tgBot, nil
}

// SendMessage delivers msg to the admin chat without blocking the caller.
func (t *TgBot) SendMessage(msg string) {
	if t.adminId == 0 || msg == "" {
		return
	}
	if len(msg) > maxMessageLength {
		msg = msg[:maxMessageLength]
	}
	go t.plainResponse(t.adminId, msg)
}

func (t *TgBot) plainResponse(chatId int64, text string) {
	_, err := t.api.SendMessage(chatId, text, &tgbotapi.SendMessageOpts{
		RequestOpts: &tgbotapi.RequestOpts{
			Timeout: 10 * time.Second,
		},
	})
	if err != nil {
		// warn level: the alert handler only forwards errors, so this cannot loop
		t.log.With(
			slog.Int64("id", chatId),
		).Warn("sending message", sl.Err(err))
	}
}
