package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/internal/domain"
	serviceStorage "github.com/salonora/booking-service/internal/infra/storage/service"
	"github.com/salonora/booking-service/internal/service/catalog/models"
)

type mockServiceRepo struct {
	byID   map[int64]*domain.SalonService
	nextID int64

	deletedID int64
}

func newMockServiceRepo() *mockServiceRepo {
	return &mockServiceRepo{byID: map[int64]*domain.SalonService{}, nextID: 1}
}

func (m *mockServiceRepo) Create(_ context.Context, svc *domain.SalonService) (*domain.SalonService, error) {
	created := *svc
	created.ID = m.nextID
	m.nextID++
	m.byID[created.ID] = &created
	return &created, nil
}

func (m *mockServiceRepo) GetByID(_ context.Context, id int64) (*domain.SalonService, error) {
	svc, ok := m.byID[id]
	if !ok {
		return nil, serviceStorage.ErrServiceNotFound
	}
	copied := *svc
	return &copied, nil
}

func (m *mockServiceRepo) List(_ context.Context) ([]*domain.SalonService, error) {
	result := make([]*domain.SalonService, 0, len(m.byID))
	for _, svc := range m.byID {
		result = append(result, svc)
	}
	return result, nil
}

func (m *mockServiceRepo) Update(_ context.Context, svc *domain.SalonService) (*domain.SalonService, error) {
	if _, ok := m.byID[svc.ID]; !ok {
		return nil, serviceStorage.ErrServiceNotFound
	}
	updated := *svc
	m.byID[svc.ID] = &updated
	return &updated, nil
}

func (m *mockServiceRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.byID[id]; !ok {
		return serviceStorage.ErrServiceNotFound
	}
	delete(m.byID, id)
	m.deletedID = id
	return nil
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func validCreateRequest() *models.CreateServiceRequest {
	return &models.CreateServiceRequest{
		Name:            "Гел маникюр",
		Category:        "nails",
		Price:           35,
		DurationMinutes: 60,
		DisplayOrder:    2,
	}
}

func TestCreate_And_GetByID(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewService(repo, &nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	fetched, err := svc.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Гел маникюр", fetched.Name)
	assert.Equal(t, 35.0, fetched.Price)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(newMockServiceRepo(), &nopLogger{})

	tests := []struct {
		name   string
		mutate func(r *models.CreateServiceRequest)
	}{
		{"empty name", func(r *models.CreateServiceRequest) { r.Name = "" }},
		{"negative price", func(r *models.CreateServiceRequest) { r.Price = -1 }},
		{"zero duration", func(r *models.CreateServiceRequest) { r.DurationMinutes = 0 }},
		{"excessive duration", func(r *models.CreateServiceRequest) { r.DurationMinutes = 600 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest()
			tt.mutate(req)

			_, err := svc.Create(context.Background(), req)
			require.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestUpdate(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewService(repo, &nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &models.UpdateServiceRequest{
		Name:            "Гел маникюр делукс",
		Category:        "nails",
		Price:           45,
		DurationMinutes: 75,
		DisplayOrder:    1,
	})

	require.NoError(t, err)
	assert.Equal(t, "Гел маникюр делукс", updated.Name)
	assert.Equal(t, 45.0, updated.Price)

	_, err = svc.Update(context.Background(), 99, &models.UpdateServiceRequest{
		Name:            "x",
		Price:           1,
		DurationMinutes: 30,
	})
	require.ErrorIs(t, err, ErrServiceNotFound)
}

func TestDelete(t *testing.T) {
	repo := newMockServiceRepo()
	svc := NewService(repo, &nopLogger{})

	created, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), created.ID))
	assert.Equal(t, created.ID, repo.deletedID)

	require.ErrorIs(t, svc.Delete(context.Background(), created.ID), ErrServiceNotFound)
}
