package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/internal/domain"
	"github.com/salonora/booking-service/internal/infra/storage/service"
	"github.com/salonora/booking-service/pkg/types"
)

// --- mocks ---

type mockBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.BookingsFilter
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	m.lastFilter = filter
	return m.bookings, nil
}

type mockServiceRepo struct {
	service *domain.SalonService
	err     error
}

func (m *mockServiceRepo) GetByID(_ context.Context, _ int64) (*domain.SalonService, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.service, nil
}

type mockPolicy struct {
	slots        []types.TimeString
	lastDuration int
}

func (m *mockPolicy) AvailableSlots(serviceDurationMinutes int, _ []*domain.Booking) []types.TimeString {
	m.lastDuration = serviceDurationMinutes
	return m.slots
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

// --- tests ---

var testNow = time.Date(2025, 10, 1, 15, 30, 0, 0, time.UTC)

func newTestUseCase(bookingRepo *mockBookingRepo, serviceRepo *mockServiceRepo, policy *mockPolicy) *UseCase {
	uc := NewUseCase(bookingRepo, serviceRepo, policy, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func TestExecute_ReturnsSlots(t *testing.T) {
	policy := &mockPolicy{slots: []types.TimeString{"09:00", "10:30"}}
	serviceRepo := &mockServiceRepo{service: &domain.SalonService{ID: 3, DurationMinutes: 45}}
	bookingRepo := &mockBookingRepo{}
	uc := newTestUseCase(bookingRepo, serviceRepo, policy)

	date := time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC)
	resp, err := uc.Execute(context.Background(), &Request{ServiceID: 3, Date: date})

	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "10:30"}, resp.Slots)
	assert.Equal(t, 45, resp.ServiceDurationMinutes)

	// Длительность берётся из услуги, выборка ограничена одной датой
	assert.Equal(t, 45, policy.lastDuration)
	require.NotNil(t, bookingRepo.lastFilter.StartDate)
	assert.Equal(t, date, *bookingRepo.lastFilter.StartDate)
	require.NotNil(t, bookingRepo.lastFilter.EndDate)
	assert.Equal(t, date, *bookingRepo.lastFilter.EndDate)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{err: service.ErrServiceNotFound}, &mockPolicy{})

	_, err := uc.Execute(context.Background(), &Request{
		ServiceID: 99,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
	})

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_DateWindow(t *testing.T) {
	serviceRepo := &mockServiceRepo{service: &domain.SalonService{ID: 3, DurationMinutes: 30}}

	tests := []struct {
		name    string
		date    time.Time
		wantErr error
	}{
		{"yesterday", time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC), ErrInvalidDate},
		{"today", time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), nil},
		{"exactly three months", time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil},
		{"beyond three months", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC), ErrDateTooFarInFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&mockBookingRepo{}, serviceRepo, &mockPolicy{})

			_, err := uc.Execute(context.Background(), &Request{ServiceID: 3, Date: tt.date})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{}, &mockPolicy{})

	_, err := uc.Execute(context.Background(), &Request{ServiceID: 0, Date: testNow})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ServiceID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)
}
