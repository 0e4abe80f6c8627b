package get_user_bookings

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/salonora/booking-service/internal/api/handlers"
	"github.com/salonora/booking-service/internal/api/middleware"
	"github.com/salonora/booking-service/internal/service/bookings"
	"github.com/salonora/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidStatus = "некоректен статус на резервация"
	msgAccessDenied  = "нямате достъп до резервациите на друг потребител"
	msgMissingUserID = "липсва идентификация на потребителя"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/bookings?status=pending
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	requesterID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	targetUserID := mux.Vars(r)["userId"]

	// Историю чужого пользователя видит только администратор
	if targetUserID != requesterID && !middleware.IsAdmin(r.Context()) {
		h.logger.Warn("GET /users/{userId}/bookings - Access denied: requester=%s, target=%s",
			requesterID, targetUserID)
		handlers.RespondForbidden(w, msgAccessDenied)
		return
	}

	req := &models.GetUserBookingsRequest{UserID: targetUserID}
	if status := r.URL.Query().Get("status"); status != "" {
		req.Status = &status
	}

	result, err := h.service.GetUserBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /users/{userId}/bookings - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
