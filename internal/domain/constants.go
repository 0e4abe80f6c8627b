package domain

import "github.com/salonora/booking-service/pkg/types"

// Default scheduling configuration
const (
	DefaultWorkStart           types.TimeString = "09:00"
	DefaultWorkEnd             types.TimeString = "18:00"
	DefaultSlotDurationMinutes                  = 30
)

// Business validation constants
const (
	MinSlotDurationMinutes = 5
	MaxSlotDurationMinutes = 480 // 8 hours

	MinServiceDurationMinutes = 5
	MaxServiceDurationMinutes = 480

	MaxNotesLength = 500

	// BookingHorizonMonths ограничивает запись наперёд: не дальше
	// трёх календарных месяцев от сегодняшнего дня
	BookingHorizonMonths = 3
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов, не занимающих слот в календаре.
// Используется при фильтрации бронирований для подсчёта доступных слотов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов, занимающих слот
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
}
