// Package notifier propagates salon settings changes between the admin
// save path and every running scheduling policy through a Redis pub/sub
// channel. The payload mirrors the stored settings shape, so subscribers
// apply it directly without re-reading the database.
package notifier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/pkg/types"
)

var (
	// ErrPublish возвращается при ошибке публикации в Redis
	ErrPublish = errors.New("notifier: failed to publish settings")

	// ErrInvalidPayload возвращается при некорректном сообщении в канале
	ErrInvalidPayload = errors.New("notifier: invalid settings payload")
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// settingsPayload проволочный формат сообщения канала настроек
type settingsPayload struct {
	WorkStart           string `json:"workStart"`
	WorkEnd             string `json:"workEnd"`
	SlotDurationMinutes int    `json:"slotDurationMinutes"`
}

// SettingsNotifier публикует и принимает обновления настроек салона
type SettingsNotifier struct {
	client  *redis.Client
	channel string
	log     Logger
}

// New создает новый экземпляр нотификатора на указанном канале
func New(client *redis.Client, channel string, log Logger) *SettingsNotifier {
	return &SettingsNotifier{
		client:  client,
		channel: channel,
		log:     log,
	}
}

// Publish отправляет новые настройки всем подписчикам
func (n *SettingsNotifier) Publish(ctx context.Context, settings domain.SalonSettings) error {
	payload, err := json.Marshal(settingsPayload{
		WorkStart:           settings.WorkHours.Start.String(),
		WorkEnd:             settings.WorkHours.End.String(),
		SlotDurationMinutes: settings.SlotDurationMinutes,
	})
	if err != nil {
		return fmt.Errorf("%w: marshal: %v", ErrPublish, err)
	}

	if err := n.client.Publish(ctx, n.channel, payload).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrPublish, err)
	}

	return nil
}

// Subscribe подписывается на канал настроек и вызывает onUpdate для каждого
// корректного сообщения. Блокируется до отмены контекста; некорректные
// сообщения логируются и пропускаются.
func (n *SettingsNotifier) Subscribe(ctx context.Context, onUpdate func(domain.SalonSettings)) error {
	sub := n.client.Subscribe(ctx, n.channel)
	defer sub.Close()

	// Дожидаемся подтверждения подписки, чтобы не потерять первое сообщение
	if _, err := sub.Receive(ctx); err != nil {
		return fmt.Errorf("notifier: subscribe to %s: %w", n.channel, err)
	}

	n.log.Info("Subscribed to settings channel %s", n.channel)

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}

			settings, err := decodePayload(msg.Payload)
			if err != nil {
				n.log.Warn("Ignoring settings message: %v", err)
				continue
			}

			n.log.Info("Settings update received: work_hours=%s-%s, slot_duration=%dm",
				settings.WorkHours.Start, settings.WorkHours.End, settings.SlotDurationMinutes)
			onUpdate(settings)
		}
	}
}

// decodePayload разбирает и валидирует сообщение канала
func decodePayload(raw string) (domain.SalonSettings, error) {
	var payload settingsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return domain.SalonSettings{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	start, err := types.NewTimeStringFromString(payload.WorkStart)
	if err != nil {
		return domain.SalonSettings{}, fmt.Errorf("%w: workStart: %v", ErrInvalidPayload, err)
	}
	end, err := types.NewTimeStringFromString(payload.WorkEnd)
	if err != nil {
		return domain.SalonSettings{}, fmt.Errorf("%w: workEnd: %v", ErrInvalidPayload, err)
	}
	if payload.SlotDurationMinutes <= 0 {
		return domain.SalonSettings{}, fmt.Errorf("%w: slotDurationMinutes must be positive", ErrInvalidPayload)
	}

	return domain.SalonSettings{
		WorkHours:           domain.WorkHours{Start: start, End: end},
		SlotDurationMinutes: payload.SlotDurationMinutes,
	}, nil
}
