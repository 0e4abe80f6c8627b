package models

import (
	"time"

	"github.com/salonora/booking-service/internal/domain"
)

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	DisplayOrder    int     `json:"displayOrder"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateServiceRequest) ToDomain() *domain.SalonService {
	return &domain.SalonService{
		Name:            r.Name,
		Category:        r.Category,
		Price:           r.Price,
		DurationMinutes: r.DurationMinutes,
		DisplayOrder:    r.DisplayOrder,
		ImageURL:        r.ImageURL,
	}
}

// UpdateServiceRequest запрос на обновление услуги
type UpdateServiceRequest struct {
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Price           float64 `json:"price"`
	DurationMinutes int     `json:"durationMinutes"`
	DisplayOrder    int     `json:"displayOrder"`
	ImageURL        *string `json:"imageUrl,omitempty"`
}

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Price           float64   `json:"price"`
	DurationMinutes int       `json:"durationMinutes"`
	DisplayOrder    int       `json:"displayOrder"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.SalonService) *ServiceResponse {
	if s == nil {
		return nil
	}

	return &ServiceResponse{
		ID:              s.ID,
		Name:            s.Name,
		Category:        s.Category,
		Price:           s.Price,
		DurationMinutes: s.DurationMinutes,
		DisplayOrder:    s.DisplayOrder,
		ImageURL:        s.ImageURL,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.SalonService) *ServiceListResponse {
	resp := &ServiceListResponse{
		Services: make([]ServiceResponse, 0, len(services)),
	}

	for _, service := range services {
		if serviceResp := FromDomainService(service); serviceResp != nil {
			resp.Services = append(resp.Services, *serviceResp)
		}
	}

	return resp
}
