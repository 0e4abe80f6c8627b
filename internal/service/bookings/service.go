package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/salonora/booking-service/internal/domain"
	bookingStorage "github.com/salonora/booking-service/internal/infra/storage/booking"
	"github.com/salonora/booking-service/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID.
// Обычный пользователь видит только свои записи, администратор — любые.
func (s *Service) GetByID(ctx context.Context, bookingID int64, requesterID string, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: booking=%d, requester=%s", bookingID, requesterID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !isAdmin && booking.UserID != requesterID {
		s.logger.Warn("GetByID: user %s has no access to booking %d", requesterID, bookingID)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings возвращает историю бронирований пользователя,
// отсортированную от новых к старым.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: user=%s", req.UserID)

	if req.UserID == "" {
		return nil, fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}

	var status *domain.BookingStatus
	if req.Status != nil {
		parsed, ok := domain.ParseBookingStatus(*req.Status)
		if !ok {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
		}
		status = &parsed
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, status)
	if err != nil {
		s.logger.Error("GetUserBookings: failed to get bookings for user %s: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// ListBookings возвращает бронирования по фильтру (админ-панель)
func (s *Service) ListBookings(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("ListBookings: filter=%+v", req)

	filter, err := req.ToDomainFilter()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("ListBookings: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование.
//
// Порядок проверок фиксирован: существование, права доступа, дата в прошлом,
// завершённость. Повторная отмена уже отменённой записи не является ошибкой.
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: booking=%d, requester=%s", bookingID, req.UserID)

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !req.IsAdmin && booking.UserID != req.UserID {
		s.logger.Warn("Cancel: user %s has no access to booking %d", req.UserID, bookingID)
		return nil, ErrAccessDenied
	}

	// Запись на прошедшую дату отменять нельзя (сегодняшняя — можно)
	if isDateInPast(booking.BookingDate, s.timeProvider.Now()) {
		s.logger.Warn("Cancel: booking %d is in the past (%s)",
			bookingID, booking.BookingDate.Format(domain.DateFormat))
		return nil, ErrPastBooking
	}

	if booking.IsCompleted() {
		s.logger.Warn("Cancel: booking %d is already completed", bookingID)
		return nil, ErrAlreadyCompleted
	}

	if booking.IsCancelled() {
		// Идемпотентность: повторная отмена возвращает запись как есть
		return models.FromDomainBooking(booking), nil
	}

	if err := s.bookingRepo.Cancel(ctx, bookingID); err != nil {
		s.logger.Error("Cancel: failed to cancel booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
	}

	cancelled, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: booking %d cancelled", bookingID)

	return models.FromDomainBooking(cancelled), nil
}

// UpdateStatus переводит бронирование в новый статус (админ).
// Допустимые переходы заданы таблицей в domain, всё остальное отклоняется.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%d, status=%s", bookingID, req.Status)

	newStatus, ok := domain.ParseBookingStatus(req.Status)
	if !ok {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	booking, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking %d",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Отмена через смену статуса тоже проставляет cancelled_at
	if newStatus == domain.StatusCancelled {
		err = s.bookingRepo.Cancel(ctx, bookingID)
	} else {
		err = s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus)
	}
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
	}

	updated, err := s.getBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("UpdateStatus: booking %d moved to %s", bookingID, newStatus)

	return models.FromDomainBooking(updated), nil
}

// Stats считает статистику бронирований за период.
// Отменённые записи участвуют в подсчёте, выручка — только по завершённым.
func (s *Service) Stats(ctx context.Context, req *models.StatsRequest) (*models.StatsResponse, error) {
	s.logger.Info("Stats: period %s - %s",
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	if req.EndDate.Before(req.StartDate) {
		return nil, fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	filter := domain.BookingsFilter{
		StartDate:       &req.StartDate,
		EndDate:         &req.EndDate,
		IncludeInactive: true,
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("Stats: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	var stats domain.BookingStats
	stats.Total = len(bookings)

	for _, booking := range bookings {
		switch booking.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
			stats.Revenue += booking.ServicePrice
		case domain.StatusCancelled:
			stats.Cancelled++
		}
	}

	return models.FromDomainStats(stats), nil
}

// getBooking достает бронирование и нормализует ошибку not found
func (s *Service) getBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingStorage.ErrBookingNotFound) {
			s.logger.Warn("booking %d not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("failed to get booking %d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}

// isDateInPast проверяет, что дата строго раньше сегодняшнего дня
func isDateInPast(date, now time.Time) bool {
	return startOfDay(date).Before(startOfDay(now))
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
