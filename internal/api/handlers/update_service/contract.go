package update_service

import (
	"context"

	"github.com/salonora/booking-service/internal/service/catalog/models"
)

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	Update(ctx context.Context, serviceID int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
