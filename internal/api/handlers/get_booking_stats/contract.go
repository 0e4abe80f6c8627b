package get_booking_stats

import (
	"context"

	"github.com/salonora/booking-service/internal/service/bookings/models"
)

// BookingService интерфейс сервиса бронирований
type BookingService interface {
	Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
