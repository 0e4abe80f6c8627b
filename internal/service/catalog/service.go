package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/salonora/booking-service/internal/domain"
	serviceStorage "github.com/salonora/booking-service/internal/infra/storage/service"
	"github.com/salonora/booking-service/internal/service/catalog/models"
)

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	logger      Logger
}

// NewService создает новый сервис каталога
func NewService(serviceRepo ServiceRepository, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		logger:      logger,
	}
}

// List возвращает все услуги в порядке отображения
func (s *Service) List(ctx context.Context) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: failed to list services: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID возвращает услугу по ID
func (s *Service) GetByID(ctx context.Context, serviceID int64) (*models.ServiceResponse, error) {
	service, err := s.getService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	return models.FromDomainService(service), nil
}

// Create добавляет новую услугу в каталог
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: name=%s, price=%.2f, duration=%d", req.Name, req.Price, req.DurationMinutes)

	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomain())
	if err != nil {
		s.logger.Error("Create: failed to create service: %v", err)
		return nil, fmt.Errorf("%w: failed to create service: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service id=%d created", created.ID)

	return models.FromDomainService(created), nil
}

// Update обновляет данные услуги.
// Изменения не затрагивают уже созданные бронирования: данные услуги
// денормализуются в запись в момент бронирования.
func (s *Service) Update(ctx context.Context, serviceID int64, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: service=%d", serviceID)

	if err := validateServiceFields(req.Name, req.Price, req.DurationMinutes); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	service, err := s.getService(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	service.Name = req.Name
	service.Category = req.Category
	service.Price = req.Price
	service.DurationMinutes = req.DurationMinutes
	service.DisplayOrder = req.DisplayOrder
	service.ImageURL = req.ImageURL

	updated, err := s.serviceRepo.Update(ctx, service)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: failed to update service %d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to update service: %v", ErrInternal, err)
	}

	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу из каталога
func (s *Service) Delete(ctx context.Context, serviceID int64) error {
	s.logger.Info("Delete: service=%d", serviceID)

	if err := s.serviceRepo.Delete(ctx, serviceID); err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			s.logger.Warn("Delete: service %d not found", serviceID)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: failed to delete service %d: %v", serviceID, err)
		return fmt.Errorf("%w: failed to delete service: %v", ErrInternal, err)
	}

	return nil
}

func (s *Service) getService(ctx context.Context, serviceID int64) (*domain.SalonService, error) {
	service, err := s.serviceRepo.GetByID(ctx, serviceID)
	if err != nil {
		if errors.Is(err, serviceStorage.ErrServiceNotFound) {
			s.logger.Warn("service %d not found", serviceID)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("failed to get service %d: %v", serviceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	return service, nil
}

func validateServiceFields(name string, price float64, durationMinutes int) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if price < 0 {
		return fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}
	if durationMinutes < domain.MinServiceDurationMinutes || durationMinutes > domain.MaxServiceDurationMinutes {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinServiceDurationMinutes, domain.MaxServiceDurationMinutes)
	}
	return nil
}
