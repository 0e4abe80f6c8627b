package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonora/booking-service/internal/domain"
	serviceRepo "github.com/salonora/booking-service/internal/infra/storage/service"
)

// UseCase use case создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	serviceRepo  ServiceRepository
	policy       SchedulingPolicy
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	serviceRepo ServiceRepository,
	policy SchedulingPolicy,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		serviceRepo:  serviceRepo,
		policy:       policy,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Доступность слота пересчитывается заново в момент записи: проверка при
// отображении слотов носит информационный характер, авторитетна только
// проверка здесь. Выборка бронирований дня и вставка выполняются в одной
// SERIALIZABLE транзакции, чтобы два конкурентных запроса на один слот
// не прошли оба.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%s, service=%d, date=%s, time=%s",
		req.UserID, req.ServiceID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Валидация окна записи
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Разрешаем услугу по ID
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 4. Проверка доступности и вставка в одной транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Все активные бронирования на эту дату (с блокировкой FOR UPDATE)
		filter := domain.BookingsFilter{
			StartDate: &req.Date,
			EndDate:   &req.Date,
		}

		bookings, err := uc.bookingRepo.GetWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 4.2. Пересчитываем доступные слоты и проверяем запрошенный
		available := uc.policy.AvailableSlots(service.DurationMinutes, bookings)

		found := false
		for _, slot := range available {
			if slot == req.StartTime {
				found = true
				break
			}
		}
		if !found {
			uc.logger.Warn("CreateBooking: slot %s on %s is not available",
				req.StartTime, req.Date.Format(domain.DateFormat))
			return ErrSlotUnavailable
		}

		// 4.3. Создаем бронирование с денормализацией данных услуги
		booking := &domain.Booking{
			UserID:      req.UserID,
			ServiceID:   req.ServiceID,
			BookingDate: req.Date,
			StartTime:   req.StartTime,
			Status:      domain.StatusPending,
			// Денормализация: последующие изменения услуги не затрагивают запись
			ServiceName:            service.Name,
			ServicePrice:           service.Price,
			ServiceDurationMinutes: service.DurationMinutes,
			// Контактные данные клиента
			UserName:  req.UserName,
			UserEmail: req.UserEmail,
			UserPhone: req.UserPhone,
			Notes:     req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	return &Response{
		ID:                     result.ID,
		UserID:                 result.UserID,
		ServiceID:              result.ServiceID,
		BookingDate:            result.BookingDate,
		StartTime:              result.StartTime,
		Status:                 string(result.Status),
		ServiceName:            result.ServiceName,
		ServicePrice:           result.ServicePrice,
		ServiceDurationMinutes: result.ServiceDurationMinutes,
		UserName:               result.UserName,
		UserEmail:              result.UserEmail,
		UserPhone:              result.UserPhone,
		Notes:                  result.Notes,
		CreatedAt:              result.CreatedAt,
		UpdatedAt:              result.UpdatedAt,
	}, nil
}
