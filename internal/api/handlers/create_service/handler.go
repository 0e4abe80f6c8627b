package create_service

import (
	"errors"
	"net/http"

	"github.com/salonora/booking-service/internal/api/handlers"
	"github.com/salonora/booking-service/internal/service/catalog"
	"github.com/salonora/booking-service/internal/service/catalog/models"
)

const (
	msgInvalidRequestBody = "некоректно тяло на заявката"
	msgInvalidService     = "некоректни данни за услуга"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("POST /services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidService)

		default:
			h.logger.Error("POST /services - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /services - Service created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
