package notifier

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/internal/domain"
)

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func newTestNotifier(t *testing.T) (*SettingsNotifier, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return New(client, "salon:settings", &nopLogger{}), client
}

func testSettings() domain.SalonSettings {
	return domain.SalonSettings{
		WorkHours:           domain.WorkHours{Start: "10:00", End: "19:00"},
		SlotDurationMinutes: 15,
	}
}

func TestPublishSubscribe_RoundTrip(t *testing.T) {
	notifier, _ := newTestNotifier(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan domain.SalonSettings, 1)

	subscribed := make(chan struct{})
	go func() {
		close(subscribed)
		_ = notifier.Subscribe(ctx, func(s domain.SalonSettings) {
			received <- s
		})
	}()

	<-subscribed
	// Subscribe подтверждает подписку синхронно внутри Receive,
	// даём горутине дойти до него
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, notifier.Publish(ctx, testSettings()))

	select {
	case got := <-received:
		assert.Equal(t, testSettings(), got)
	case <-ctx.Done():
		t.Fatal("settings update was not delivered")
	}
}

func TestSubscribe_IgnoresMalformedPayload(t *testing.T) {
	notifier, client := newTestNotifier(t)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	received := make(chan domain.SalonSettings, 1)
	go func() {
		_ = notifier.Subscribe(ctx, func(s domain.SalonSettings) {
			received <- s
		})
	}()
	time.Sleep(50 * time.Millisecond)

	// Мусор и некорректные значения пропускаются без вызова onUpdate
	require.NoError(t, client.Publish(ctx, "salon:settings", "not json").Err())
	require.NoError(t, client.Publish(ctx, "salon:settings",
		`{"workStart":"25:99","workEnd":"18:00","slotDurationMinutes":30}`).Err())
	require.NoError(t, client.Publish(ctx, "salon:settings",
		`{"workStart":"09:00","workEnd":"18:00","slotDurationMinutes":0}`).Err())

	require.NoError(t, notifier.Publish(ctx, testSettings()))

	select {
	case got := <-received:
		assert.Equal(t, testSettings(), got)
	case <-ctx.Done():
		t.Fatal("valid settings update was not delivered")
	}

	select {
	case extra := <-received:
		t.Fatalf("unexpected extra update: %+v", extra)
	default:
	}
}

func TestDecodePayload(t *testing.T) {
	settings, err := decodePayload(`{"workStart":"09:00","workEnd":"18:00","slotDurationMinutes":30}`)
	require.NoError(t, err)
	assert.Equal(t, domain.SalonSettings{
		WorkHours:           domain.WorkHours{Start: "09:00", End: "18:00"},
		SlotDurationMinutes: 30,
	}, settings)

	_, err = decodePayload(`{`)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = decodePayload(`{"workStart":"garbage","workEnd":"18:00","slotDurationMinutes":30}`)
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestSubscribe_StopsOnContextCancel(t *testing.T) {
	notifier, _ := newTestNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- notifier.Subscribe(ctx, func(domain.SalonSettings) {})
	}()
	time.Sleep(50 * time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("subscribe did not stop after context cancellation")
	}
}
