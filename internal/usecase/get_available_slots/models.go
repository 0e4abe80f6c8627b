package get_available_slots

import (
	"time"

	"github.com/salonora/booking-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ServiceID int64     // ID услуги
	Date      time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date                   time.Time          // Дата, на которую запрашивались слоты
	ServiceID              int64              // ID услуги
	ServiceDurationMinutes int                // Длительность услуги
	Slots                  []types.TimeString // Доступные времена начала по возрастанию
}
