package update_settings

import (
	"context"

	"github.com/salonora/booking-service/internal/service/settings/models"
)

// SettingsService интерфейс сервиса настроек салона
type SettingsService interface {
	Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
