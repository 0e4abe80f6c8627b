package domain

import (
	"time"

	"github.com/salonora/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a salon appointment in the system
type Booking struct {
	ID          int64
	UserID      string // identity provider uid, opaque to this service
	ServiceID   int64
	BookingDate time.Time
	StartTime   types.TimeString

	// Denormalized data for history: a later price or duration change to
	// the service must not retroactively alter existing bookings
	ServiceName            string
	ServicePrice           float64
	ServiceDurationMinutes int

	UserName  string
	UserEmail string
	UserPhone string
	Notes     *string

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// IsCompleted returns true if the booking is completed
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// IsActive returns true if the booking still occupies its slot on the calendar
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsTerminal returns true if no further status transition is permitted
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// transitions is the closed transition table of the booking lifecycle:
//
//	pending   -> confirmed | cancelled
//	confirmed -> completed | cancelled
//	completed and cancelled are terminal
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// CanTransitionTo reports whether the booking may move to the target status
func (b *Booking) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == target {
			return true
		}
	}
	return false
}

// ParseBookingStatus validates a raw status string against the closed set
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	switch status {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return status, true
	default:
		return "", false
	}
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID          *string        // Фильтр по пользователю (опционально)
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}

// BookingStats агрегированная статистика бронирований за период
type BookingStats struct {
	Total     int
	Pending   int
	Confirmed int
	Completed int
	Cancelled int
	Revenue   float64 // Сумма цен завершённых бронирований
}
