package notify

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/suyatrade/console/internal/config"
	"github.com/suyatrade/console/internal/logger"
)

// Telegram mirrors console notifications to the operator's own chat, for
// when they are away from the terminal. Disabled or misconfigured mirrors
// degrade to a no-op instead of failing startup.
type Telegram struct {
	bot     *tgbotapi.BotAPI
	chatID  int64
	enabled bool
	logger  *logger.Logger
}

func NewTelegram(cfg *config.Config, log *logger.Logger) *Telegram {
	if !cfg.Telegram.Enabled {
		return &Telegram{enabled: false, logger: log}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		log.Error("failed to create telegram bot", "error", err)
		return &Telegram{enabled: false, logger: log}
	}

	log.Info("telegram mirror connected", "username", bot.Self.UserName)

	return &Telegram{
		bot:     bot,
		chatID:  cfg.Telegram.ChatID,
		enabled: true,
		logger:  log,
	}
}

func (t *Telegram) Notify(message string, ok bool) {
	if !t.enabled {
		return
	}

	prefix := "✅"
	if !ok {
		prefix = "⚠️"
	}

	msg := tgbotapi.NewMessage(t.chatID, prefix+" "+message)
	if _, err := t.bot.Send(msg); err != nil {
		t.logger.Error("send telegram message", "error", err)
	}
}
