package bookings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/internal/domain"
	bookingStorage "github.com/salonora/booking-service/internal/infra/storage/booking"
	"github.com/salonora/booking-service/internal/service/bookings/models"
	"github.com/salonora/booking-service/pkg/ptr"
)

// --- mocks ---

type mockBookingRepo struct {
	byID map[int64]*domain.Booking

	cancelledID    int64
	updatedID      int64
	updatedStatus  domain.BookingStatus
	filterBookings []*domain.Booking
	lastFilter     domain.BookingsFilter
}

func (m *mockBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	booking, ok := m.byID[id]
	if !ok {
		return nil, bookingStorage.ErrBookingNotFound
	}
	copied := *booking
	return &copied, nil
}

func (m *mockBookingRepo) GetByUserID(_ context.Context, userID string, status *domain.BookingStatus) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, booking := range m.byID {
		if booking.UserID != userID {
			continue
		}
		if status != nil && booking.Status != *status {
			continue
		}
		result = append(result, booking)
	}
	return result, nil
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	return m.filterBookings, nil
}

func (m *mockBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	m.updatedID = id
	m.updatedStatus = status
	if booking, ok := m.byID[id]; ok {
		booking.Status = status
	}
	return nil
}

func (m *mockBookingRepo) Cancel(_ context.Context, id int64) error {
	m.cancelledID = id
	if booking, ok := m.byID[id]; ok {
		booking.Status = domain.StatusCancelled
		now := time.Now()
		booking.CancelledAt = &now
	}
	return nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

// --- helpers ---

var testNow = time.Date(2025, 10, 10, 12, 0, 0, 0, time.UTC)

func testBooking(id int64, status domain.BookingStatus, date time.Time) *domain.Booking {
	return &domain.Booking{
		ID:                     id,
		UserID:                 "user-1",
		ServiceID:              2,
		BookingDate:            date,
		StartTime:              "10:00",
		Status:                 status,
		ServiceName:            "Гел маникюр",
		ServicePrice:           35,
		ServiceDurationMinutes: 60,
		UserName:               "Мария Иванова",
	}
}

func newTestService(repo *mockBookingRepo) *Service {
	svc := NewService(repo, &nopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: testNow}
	return svc
}

func futureDate() time.Time {
	return time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)
}

// --- tests ---

func TestGetByID_OwnerAndAdmin(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, futureDate()),
	}}
	svc := newTestService(repo)

	t.Run("owner can read", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, "user-1", false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("stranger is rejected", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 1, "user-2", false)
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("admin can read any booking", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), 1, "admin-1", true)
		require.NoError(t, err)
		assert.Equal(t, int64(1), resp.ID)
	})

	t.Run("unknown booking", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), 99, "user-1", false)
		require.ErrorIs(t, err, ErrBookingNotFound)
	})
}

func TestGetByID_SurvivesServiceDeletion(t *testing.T) {
	// Услуга может быть удалена из каталога уже после бронирования,
	// история читается из денормализованных полей самой записи.
	booking := testBooking(1, domain.StatusCompleted, futureDate())
	booking.ServiceID = 777
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{1: booking}}
	svc := newTestService(repo)

	resp, err := svc.GetByID(context.Background(), 1, "user-1", false)
	require.NoError(t, err)
	assert.Equal(t, int64(777), resp.ServiceID)
	assert.Equal(t, "Гел маникюр", resp.ServiceName)
	assert.Equal(t, 35.0, resp.ServicePrice)
	assert.Equal(t, 60, resp.ServiceDurationMinutes)
}

func TestCancel_ChecksInOrder(t *testing.T) {
	t.Run("not found wins over everything", func(t *testing.T) {
		svc := newTestService(&mockBookingRepo{byID: map[int64]*domain.Booking{}})

		_, err := svc.Cancel(context.Background(), 404, &models.CancelBookingRequest{UserID: "user-1"})
		require.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("access denied for stranger", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusPending, futureDate()),
		}}
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-2"})
		require.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("past booking cannot be cancelled", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusConfirmed, time.Date(2025, 10, 9, 0, 0, 0, 0, time.UTC)),
		}}
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-1"})
		require.ErrorIs(t, err, ErrPastBooking)
	})

	t.Run("same-day booking can be cancelled", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusConfirmed, time.Date(2025, 10, 10, 0, 0, 0, 0, time.UTC)),
		}}
		svc := newTestService(repo)

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusCompleted, futureDate()),
		}}
		svc := newTestService(repo)

		_, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-1"})
		require.ErrorIs(t, err, ErrAlreadyCompleted)
	})

	t.Run("cancelling a cancelled booking is a no-op", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusCancelled, futureDate()),
		}}
		svc := newTestService(repo)

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "user-1"})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Zero(t, repo.cancelledID)
	})

	t.Run("admin cancels someone else's booking", func(t *testing.T) {
		repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
			1: testBooking(1, domain.StatusPending, futureDate()),
		}}
		svc := newTestService(repo)

		resp, err := svc.Cancel(context.Background(), 1, &models.CancelBookingRequest{UserID: "admin-1", IsAdmin: true})
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCancelled), resp.Status)
		assert.Equal(t, int64(1), repo.cancelledID)
	})
}

func TestUpdateStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{"pending to confirmed", domain.StatusPending, "confirmed", nil},
		{"pending to cancelled", domain.StatusPending, "cancelled", nil},
		{"pending to completed", domain.StatusPending, "completed", ErrInvalidTransition},
		{"confirmed to completed", domain.StatusConfirmed, "completed", nil},
		{"confirmed to cancelled", domain.StatusConfirmed, "cancelled", nil},
		{"confirmed to pending", domain.StatusConfirmed, "pending", ErrInvalidTransition},
		{"completed is terminal", domain.StatusCompleted, "cancelled", ErrInvalidTransition},
		{"cancelled is terminal", domain.StatusCancelled, "confirmed", ErrInvalidTransition},
		{"unknown status", domain.StatusPending, "archived", ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
				1: testBooking(1, tt.from, futureDate()),
			}}
			svc := newTestService(repo)

			resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: tt.to})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.to, resp.Status)
		})
	}
}

func TestUpdateStatus_CancelSetsCancelledAt(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, futureDate()),
	}}
	svc := newTestService(repo)

	resp, err := svc.UpdateStatus(context.Background(), 1, &models.UpdateStatusRequest{Status: "cancelled"})

	require.NoError(t, err)
	assert.Equal(t, int64(1), repo.cancelledID)
	assert.NotNil(t, resp.CancelledAt)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := &mockBookingRepo{byID: map[int64]*domain.Booking{
		1: testBooking(1, domain.StatusPending, futureDate()),
		2: testBooking(2, domain.StatusCancelled, futureDate()),
	}}
	svc := newTestService(repo)

	all, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: "user-1"})
	require.NoError(t, err)
	assert.Len(t, all.Bookings, 2)

	pending, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("pending"),
	})
	require.NoError(t, err)
	require.Len(t, pending.Bookings, 1)
	assert.Equal(t, "pending", pending.Bookings[0].Status)

	_, err = svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: "user-1",
		Status: ptr.Ptr("archived"),
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestStats_CountsAndRevenue(t *testing.T) {
	completed := testBooking(3, domain.StatusCompleted, futureDate())
	completed.ServicePrice = 50

	repo := &mockBookingRepo{filterBookings: []*domain.Booking{
		testBooking(1, domain.StatusPending, futureDate()),
		testBooking(2, domain.StatusConfirmed, futureDate()),
		completed,
		testBooking(4, domain.StatusCompleted, futureDate()),
		testBooking(5, domain.StatusCancelled, futureDate()),
	}}
	svc := newTestService(repo)

	resp, err := svc.Stats(context.Background(), &models.StatsRequest{
		StartDate: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 1, resp.Pending)
	assert.Equal(t, 1, resp.Confirmed)
	assert.Equal(t, 2, resp.Completed)
	assert.Equal(t, 1, resp.Cancelled)

	// Выручка только по завершённым: 50 + 35
	assert.Equal(t, 85.0, resp.Revenue)

	// Отменённые записи включаются в выборку
	assert.True(t, repo.lastFilter.IncludeInactive)
}

func TestStats_InvalidPeriod(t *testing.T) {
	svc := newTestService(&mockBookingRepo{})

	_, err := svc.Stats(context.Background(), &models.StatsRequest{
		StartDate: time.Date(2025, 10, 31, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}
