package create_booking

import (
	"fmt"
	"time"

	"github.com/salonora/booking-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.UserName == "" {
		return fmt.Errorf("%w: userName is required", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно записи:
// не раньше сегодняшнего дня и не дальше трёх календарных месяцев
// (сравнение по календарным дням, время суток игнорируется)
func validateDate(bookingDate time.Time, now time.Time) error {
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Ровно три месяца от сегодня - ещё допустимая дата
	maxDate := startOfDay(now).AddDate(0, domain.BookingHorizonMonths, 0)
	if startOfDay(bookingDate).After(maxDate) {
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
