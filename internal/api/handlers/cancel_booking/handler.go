package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/salonora/booking-service/internal/api/handlers"
	"github.com/salonora/booking-service/internal/api/middleware"
	"github.com/salonora/booking-service/internal/service/bookings"
	"github.com/salonora/booking-service/internal/service/bookings/models"
)

const (
	msgInvalidBookingID = "некоректен идентификатор на резервация"
	msgBookingNotFound  = "резервацията не е намерена"
	msgAccessDenied     = "нямате достъп до тази резервация"
	msgPastBooking      = "не може да се отмени резервация за минала дата"
	msgAlreadyCompleted = "не може да се отмени завършена резервация"
	msgMissingUserID    = "липсва идентификация на потребителя"
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

// Handle PATCH /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	result, err := h.service.Cancel(r.Context(), bookingID, &models.CancelBookingRequest{
		UserID:  userID,
		IsAdmin: middleware.IsAdmin(r.Context()),
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking=%d, user=%s", bookingID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrPastBooking):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Past booking: booking=%d", bookingID)
			handlers.RespondBadRequest(w, msgPastBooking)

		case errors.Is(err, bookings.ErrAlreadyCompleted):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already completed: booking=%d", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyCompleted)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Internal error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: id=%d, user=%s", bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
