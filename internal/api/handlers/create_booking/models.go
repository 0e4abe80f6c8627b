package create_booking

import (
	"fmt"
	"time"

	"github.com/salonora/booking-service/internal/domain"
	createBooking "github.com/salonora/booking-service/internal/usecase/create_booking"
	"github.com/salonora/booking-service/pkg/types"
)

// CreateBookingRequest HTTP запрос на создание бронирования
type CreateBookingRequest struct {
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`      // "2025-10-15"
	StartTime string  `json:"startTime"` // "10:00"
	UserName  string  `json:"userName"`
	UserEmail string  `json:"userEmail"`
	UserPhone string  `json:"userPhone"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// с парсингом даты и времени
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format: %w", err)
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, fmt.Errorf("invalid time format: %w", err)
	}

	return &createBooking.Request{
		UserID:    userID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: startTime,
		UserName:  r.UserName,
		UserEmail: r.UserEmail,
		UserPhone: r.UserPhone,
		Notes:     r.Notes,
	}, nil
}

// CreateBookingResponse HTTP ответ с созданным бронированием
type CreateBookingResponse struct {
	ID                     int64   `json:"id"`
	UserID                 string  `json:"userId"`
	ServiceID              int64   `json:"serviceId"`
	BookingDate            string  `json:"bookingDate"`
	StartTime              string  `json:"startTime"`
	Status                 string  `json:"status"`
	ServiceName            string  `json:"serviceName"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`
	UserName               string  `json:"userName"`
	UserEmail              string  `json:"userEmail,omitempty"`
	UserPhone              string  `json:"userPhone,omitempty"`
	Notes                  *string `json:"notes,omitempty"`
	CreatedAt              string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует модель use case в HTTP ответ
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		ID:                     resp.ID,
		UserID:                 resp.UserID,
		ServiceID:              resp.ServiceID,
		BookingDate:            resp.BookingDate.Format(domain.DateFormat),
		StartTime:              resp.StartTime.String(),
		Status:                 resp.Status,
		ServiceName:            resp.ServiceName,
		ServicePrice:           resp.ServicePrice,
		ServiceDurationMinutes: resp.ServiceDurationMinutes,
		UserName:               resp.UserName,
		UserEmail:              resp.UserEmail,
		UserPhone:              resp.UserPhone,
		Notes:                  resp.Notes,
		CreatedAt:              resp.CreatedAt.Format(time.RFC3339),
	}
}
