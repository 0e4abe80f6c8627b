package list_services

import (
	"context"

	"github.com/salonora/booking-service/internal/service/catalog/models"
)

// CatalogService интерфейс сервиса каталога услуг
type CatalogService interface {
	List(ctx context.Context) (*models.ServiceListResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
