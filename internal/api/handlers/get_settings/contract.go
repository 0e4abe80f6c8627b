package get_settings

import (
	"context"

	"github.com/salonora/booking-service/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек салона
type SettingsService interface {
	Get(ctx context.Context) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
