package get_available_slots

import (
	"fmt"
	"time"

	"github.com/salonora/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// validateDate проверяет окно записи: не раньше сегодняшнего дня и не
// дальше трёх календарных месяцев (сравнение по календарным дням)
func validateDate(requestDate time.Time, now time.Time) error {
	if isDateInPast(requestDate, now) {
		return ErrInvalidDate
	}

	maxDate := startOfDay(now).AddDate(0, domain.BookingHorizonMonths, 0)
	if startOfDay(requestDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d months in advance", ErrDateTooFarInFuture, domain.BookingHorizonMonths)
	}

	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}

// startOfDay обнуляет время, чтобы сравнивать только даты
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
