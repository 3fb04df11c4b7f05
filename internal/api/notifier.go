package telegram

import (
	"context"
	"fmt"
	"log"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"bottle-gate/internal/domain/port"
)

// Notifier шлёт оператору оповещения об отбраковке в Telegram
type Notifier struct {
	api    *tgbotapi.BotAPI
	chatID int64
}

// NewNotifier создаёт канал оповещений оператора
func NewNotifier(token string, chatID int64) (*Notifier, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Notifier{
		api:    api,
		chatID: chatID,
	}, nil
}

// NotifyReject отправляет сообщение об отбраковке и кадр с подсветкой
func (n *Notifier) NotifyReject(ctx context.Context, sessionID int64, snapshot []byte) error {
	_ = ctx

	text := fmt.Sprintf("⚠️ Бутылка без этикетки отбракована (сессия %d).", sessionID)
	msg := tgbotapi.NewMessage(n.chatID, text)
	if _, err := n.api.Send(msg); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	if len(snapshot) == 0 {
		return nil
	}

	photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{
		Name:  "overlay.jpg",
		Bytes: snapshot,
	})
	photo.Caption = "Кадр с подсветкой найденных этикеток"
	if _, err := n.api.Send(photo); err != nil {
		return fmt.Errorf("send photo: %w", err)
	}

	return nil
}

// Проверка реализации интерфейса
var _ port.RejectNotifier = (*Notifier)(nil)
