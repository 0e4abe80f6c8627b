package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonora/booking-service/internal/domain"
	serviceRepo "github.com/salonora/booking-service/internal/infra/storage/service"
)

// UseCase use case получения доступных слотов для записи
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	policy       SchedulingPolicy
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	policy SchedulingPolicy,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		policy:       policy,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Результат информационный: авторитетная проверка доступности выполняется
// повторно в момент создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%d, date=%s",
		req.ServiceID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация окна записи
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 3. Разрешаем услугу, чтобы узнать её длительность
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Активные бронирования на эту дату
	filter := domain.BookingsFilter{
		StartDate: &req.Date,
		EndDate:   &req.Date,
	}

	bookings, err := uc.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 5. Генерация кандидатов и фильтрация по конфликтам
	slots := uc.policy.AvailableSlots(service.DurationMinutes, bookings)

	uc.logger.Info("GetAvailableSlots: %d slots for service=%d, date=%s",
		len(slots), req.ServiceID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                   req.Date,
		ServiceID:              req.ServiceID,
		ServiceDurationMinutes: service.DurationMinutes,
		Slots:                  slots,
	}, nil
}
