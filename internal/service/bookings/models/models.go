package models

import (
	"time"

	"github.com/salonora/booking-service/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID  string // Инициатор отмены
	IsAdmin bool   // Администратор может отменить чужую запись
}

// UpdateStatusRequest запрос на обновление статуса бронирования
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение истории пользователя
type GetUserBookingsRequest struct {
	UserID string  `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// ListBookingsRequest запрос на получение бронирований с фильтрацией (админ)
type ListBookingsRequest struct {
	UserID          *string    `json:"userId,omitempty"`
	StartDate       *time.Time `json:"startDate,omitempty"`
	EndDate         *time.Time `json:"endDate,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		UserID:          r.UserID,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, ok := domain.ParseBookingStatus(*r.Status)
		if !ok {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}

	return filter, nil
}

// StatsRequest запрос статистики за период
type StatsRequest struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID          int64  `json:"id"`
	UserID      string `json:"userId"`
	ServiceID   int64  `json:"serviceId"`
	BookingDate string `json:"bookingDate"` // "2025-10-15"
	StartTime   string `json:"startTime"`   // "10:00"
	Status      string `json:"status"`

	// Денормализованные данные услуги
	ServiceName            string  `json:"serviceName"`
	ServicePrice           float64 `json:"servicePrice"`
	ServiceDurationMinutes int     `json:"serviceDurationMinutes"`

	UserName  string  `json:"userName"`
	UserEmail string  `json:"userEmail,omitempty"`
	UserPhone string  `json:"userPhone,omitempty"`
	Notes     *string `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatsResponse агрегированная статистика за период
type StatsResponse struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                     b.ID,
		UserID:                 b.UserID,
		ServiceID:              b.ServiceID,
		BookingDate:            b.BookingDate.Format(domain.DateFormat),
		StartTime:              b.StartTime.String(),
		Status:                 string(b.Status),
		ServiceName:            b.ServiceName,
		ServicePrice:           b.ServicePrice,
		ServiceDurationMinutes: b.ServiceDurationMinutes,
		UserName:               b.UserName,
		UserEmail:              b.UserEmail,
		UserPhone:              b.UserPhone,
		Notes:                  b.Notes,
		CreatedAt:              b.CreatedAt,
		UpdatedAt:              b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.BookingStats) *StatsResponse {
	return &StatsResponse{
		Total:     s.Total,
		Pending:   s.Pending,
		Confirmed: s.Confirmed,
		Completed: s.Completed,
		Cancelled: s.Cancelled,
		Revenue:   s.Revenue,
	}
}
