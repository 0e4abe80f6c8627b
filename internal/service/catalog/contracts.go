package catalog

import (
	"context"

	"github.com/salonora/booking-service/internal/domain"
)

// ServiceRepository интерфейс репозитория каталога услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error)
	GetByID(ctx context.Context, id int64) (*domain.SalonService, error)
	List(ctx context.Context) ([]*domain.SalonService, error)
	Update(ctx context.Context, service *domain.SalonService) (*domain.SalonService, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
