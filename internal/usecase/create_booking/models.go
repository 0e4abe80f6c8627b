package create_booking

import (
	"time"

	"github.com/salonora/booking-service/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    string           // uid пользователя из внешнего провайдера аутентификации
	ServiceID int64            // ID услуги
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Время начала слота (например, "10:00")

	// Контактные данные клиента, денормализуются в бронирование
	UserName  string
	UserEmail string
	UserPhone string
	Notes     *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64            // ID созданного бронирования
	UserID      string           // uid пользователя
	ServiceID   int64            // ID услуги
	BookingDate time.Time        // Дата бронирования
	StartTime   types.TimeString // Время начала
	Status      string           // Статус бронирования (pending)

	// Денормализованные данные услуги на момент создания
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	UserName  string
	UserEmail string
	UserPhone string
	Notes     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
