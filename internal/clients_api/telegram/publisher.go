package telegram

// Sends the rendered chart preview to a Telegram chat

import (
	"fmt"
	"strconv"
	"strings"

	"mario-graph/internal/infra/log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// PhotoSender is the part of *tgbotapi.BotAPI the publisher uses.
type PhotoSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type Publisher struct {
	bot    PhotoSender
	chatID int64
}

// NewPublisher authorizes the bot token and targets chatID.
func NewPublisher(botToken, chatID string) (*Publisher, error) {
	id, err := ParseChatID(chatID)
	if err != nil {
		return nil, err
	}

	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("failed to authorize telegram bot: %w", err)
	}
	log.LogInfo("Telegram bot authorized", zap.String("username", bot.Self.UserName))

	return &Publisher{bot: bot, chatID: id}, nil
}

// NewPublisherWithSender is used when the bot is already constructed.
func NewPublisherWithSender(bot PhotoSender, chatID int64) *Publisher {
	return &Publisher{bot: bot, chatID: chatID}
}

func ParseChatID(chatID string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(chatID), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid telegram chat id %q: %w", chatID, err)
	}
	return id, nil
}

// PublishChart uploads a PNG with a caption.
func (p *Publisher) PublishChart(png []byte, caption string) error {
	if len(png) == 0 {
		return fmt.Errorf("chart image is empty")
	}

	photo := tgbotapi.NewPhoto(p.chatID, tgbotapi.FileBytes{Name: "mario-contribution-graph.png", Bytes: png})
	photo.Caption = caption

	if _, err := p.bot.Send(photo); err != nil {
		log.LogError("Failed to send chart to Telegram", zap.Int64("chat_id", p.chatID), zap.Error(err))
		return fmt.Errorf("failed to send chart to telegram: %w", err)
	}

	log.LogSuccess("Chart sent to Telegram", zap.Int64("chat_id", p.chatID))
	return nil
}
