package create_booking

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrSlotUnavailable возвращается, когда выбранный слот уже занят
	// (гонка между показом слотов и отправкой формы проиграна)
	ErrSlotUnavailable = errors.New("create_booking: slot is not available")

	// ErrInvalidDate возвращается при попытке записи на прошедшую дату
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата дальше трёх месяцев от сегодня
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
