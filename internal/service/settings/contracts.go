package settings

import (
	"context"

	"github.com/salonora/booking-service/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек салона
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.SalonSettings, error)
	Update(ctx context.Context, settings domain.SalonSettings) error
}

// SettingsNotifier рассылает обновления настроек другим инстансам
type SettingsNotifier interface {
	Publish(ctx context.Context, settings domain.SalonSettings) error
}

// SchedulingPolicy принимает новые настройки расписания
type SchedulingPolicy interface {
	ApplySettings(settings domain.SalonSettings)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
