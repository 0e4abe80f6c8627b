package get_available_slots

import (
	"github.com/salonora/booking-service/internal/domain"
	getAvailableSlots "github.com/salonora/booking-service/internal/usecase/get_available_slots"
)

// GetAvailableSlotsResponse HTTP ответ со списком доступных слотов
type GetAvailableSlotsResponse struct {
	Date                   string   `json:"date"`
	ServiceID              int64    `json:"serviceId"`
	ServiceDurationMinutes int      `json:"serviceDurationMinutes"`
	Slots                  []string `json:"slots"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *getAvailableSlots.Response) *GetAvailableSlotsResponse {
	slots := make([]string, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, slot.String())
	}

	return &GetAvailableSlotsResponse{
		Date:                   resp.Date.Format(domain.DateFormat),
		ServiceID:              resp.ServiceID,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		Slots:                  slots,
	}
}
