package create_booking

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
	bookings  []*domain.Booking
	created   *domain.Booking
	createErr error
}

func (m *mockBookingRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	created := *booking
	created.ID = 1
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	m.created = &created
	return &created, nil
}

func (m *mockBookingRepo) GetWithFilter(_ context.Context, _ domain.BookingsFilter) ([]*domain.Booking, error) {
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
	slots []types.TimeString
}

func (m *mockPolicy) AvailableSlots(_ int, _ []*domain.Booking) []types.TimeString {
	return m.slots
}

type mockTxManager struct{}

func (m *mockTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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

var testNow = time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)

func testService() *domain.SalonService {
	return &domain.SalonService{
		ID:              2,
		Name:            "Гел маникюр",
		Price:           35,
		DurationMinutes: 60,
	}
}

func testRequest() *Request {
	return &Request{
		UserID:    "user-1",
		ServiceID: 2,
		Date:      time.Date(2025, 10, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		UserName:  "Мария Иванова",
		UserEmail: "maria@example.com",
		UserPhone: "+359888123456",
	}
}

func newTestUseCase(bookingRepo *mockBookingRepo, serviceRepo *mockServiceRepo, policy *mockPolicy) *UseCase {
	uc := NewUseCase(bookingRepo, serviceRepo, policy, &mockTxManager{}, &nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// --- tests ---

func TestExecute_Success(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	policy := &mockPolicy{slots: []types.TimeString{"09:00", "10:00", "11:00"}}
	uc := newTestUseCase(bookingRepo, &mockServiceRepo{service: testService()}, policy)

	resp, err := uc.Execute(context.Background(), testRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	// Данные услуги денормализованы в запись
	assert.Equal(t, "Гел маникюр", resp.ServiceName)
	assert.Equal(t, 35.0, resp.ServicePrice)
	assert.Equal(t, 60, resp.ServiceDurationMinutes)

	require.NotNil(t, bookingRepo.created)
	assert.Equal(t, domain.StatusPending, bookingRepo.created.Status)
}

func TestExecute_SlotUnavailable(t *testing.T) {
	bookingRepo := &mockBookingRepo{}
	policy := &mockPolicy{slots: []types.TimeString{"09:00", "11:00"}}
	uc := newTestUseCase(bookingRepo, &mockServiceRepo{service: testService()}, policy)

	_, err := uc.Execute(context.Background(), testRequest())

	require.ErrorIs(t, err, ErrSlotUnavailable)

	// Занятый слот не приводит к записи в БД
	assert.Nil(t, bookingRepo.created)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{err: service.ErrServiceNotFound}, &mockPolicy{})

	_, err := uc.Execute(context.Background(), testRequest())

	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_PastDate(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{service: testService()}, &mockPolicy{})

	req := testRequest()
	req.Date = time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_TodayIsAllowed(t *testing.T) {
	policy := &mockPolicy{slots: []types.TimeString{"10:00"}}
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{service: testService()}, policy)

	req := testRequest()
	req.Date = time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
}

func TestExecute_DateHorizon(t *testing.T) {
	policy := &mockPolicy{slots: []types.TimeString{"10:00"}}

	t.Run("exactly three months is allowed", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{service: testService()}, policy)

		req := testRequest()
		req.Date = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		require.NoError(t, err)
	})

	t.Run("beyond three months is rejected", func(t *testing.T) {
		uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{service: testService()}, policy)

		req := testRequest()
		req.Date = time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

		_, err := uc.Execute(context.Background(), req)
		require.ErrorIs(t, err, ErrDateTooFarInFuture)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&mockBookingRepo{}, &mockServiceRepo{service: testService()}, &mockPolicy{})

	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{"missing user id", func(r *Request) { r.UserID = "" }},
		{"non-positive service id", func(r *Request) { r.ServiceID = 0 }},
		{"missing date", func(r *Request) { r.Date = time.Time{} }},
		{"missing start time", func(r *Request) { r.StartTime = "" }},
		{"malformed start time", func(r *Request) { r.StartTime = "25:99" }},
		{"unpadded start time", func(r *Request) { r.StartTime = "9:00" }},
		{"missing user name", func(r *Request) { r.UserName = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
