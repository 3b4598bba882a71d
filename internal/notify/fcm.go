package notify

import (
	"context"
	"fmt"
	"strconv"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// MessageSender - часть клиента FCM, нужная для публикации
type MessageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// FCMPublisher дублирует события в топики Firebase Cloud Messaging
// с теми же именами, что и комнаты (user_<id>), для мобильных клиентов.
type FCMPublisher struct {
	sender MessageSender
}

// NewFCMPublisher инициализирует Firebase по файлу сервисного аккаунта
func NewFCMPublisher(ctx context.Context, credentialsFile string) (*FCMPublisher, error) {
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting messaging client: %w", err)
	}

	return NewFCMPublisherWithSender(client), nil
}

// NewFCMPublisherWithSender создаёт публикатор поверх готового клиента
func NewFCMPublisherWithSender(sender MessageSender) *FCMPublisher {
	return &FCMPublisher{sender: sender}
}

func (p *FCMPublisher) Publish(ctx context.Context, room string, event Event) error {
	msg := &messaging.Message{
		Topic: room,
		Data: map[string]string{
			"event":   event.Name,
			"taskId":  strconv.FormatInt(event.Data.TaskID, 10),
			"status":  event.Data.Status,
			"message": event.Data.Message,
		},
		Notification: &messaging.Notification{
			Title: event.Name,
			Body:  event.Data.Message,
		},
	}

	if _, err := p.sender.Send(ctx, msg); err != nil {
		return fmt.Errorf("fcm send to %s: %w", room, err)
	}
	return nil
}
