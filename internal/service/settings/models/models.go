package models

import (
	"time"

	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/pkg/types"
)

// UpdateSettingsRequest запрос на изменение расписания салона
type UpdateSettingsRequest struct {
	WorkStart           string `json:"workStart"`           // "09:00"
	WorkEnd             string `json:"workEnd"`             // "18:00"
	SlotDurationMinutes int    `json:"slotDurationMinutes"` // шаг сетки слотов
}

// ToDomain конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomain() domain.SalonSettings {
	return domain.SalonSettings{
		WorkHours: domain.WorkHours{
			Start: types.TimeString(r.WorkStart),
			End:   types.TimeString(r.WorkEnd),
		},
		SlotDurationMinutes: r.SlotDurationMinutes,
	}
}

// SettingsResponse ответ с текущими настройками салона
type SettingsResponse struct {
	WorkStart           string     `json:"workStart"`
	WorkEnd             string     `json:"workEnd"`
	SlotDurationMinutes int        `json:"slotDurationMinutes"`
	UpdatedAt           *time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s domain.SalonSettings) *SettingsResponse {
	resp := &SettingsResponse{
		WorkStart:           s.WorkHours.Start.String(),
		WorkEnd:             s.WorkHours.End.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
	}

	if !s.UpdatedAt.IsZero() {
		updatedAt := s.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}
