package cancel_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/internal/api/handlers"
	"github.com/salonora/booking-service/internal/api/middleware"
	"github.com/salonora/booking-service/internal/service/bookings"
	"github.com/salonora/booking-service/internal/service/bookings/models"
)

type stubService struct {
	resp    *models.BookingResponse
	err     error
	lastID  int64
	lastReq *models.CancelBookingRequest
}

func (s *stubService) Cancel(_ context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.lastID = bookingID
	s.lastReq = req
	return s.resp, s.err
}

type nopLogger struct{}

func (l *nopLogger) Info(string, ...interface{})  {}
func (l *nopLogger) Warn(string, ...interface{})  {}
func (l *nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, svc *stubService, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, &nopLogger{})

	router := mux.NewRouter()
	protected := router.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/api/v1/bookings/{id}/cancel", handler.Handle).Methods(http.MethodPatch)

	req := httptest.NewRequest(http.MethodPatch, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: 7, Status: "cancelled"}}

	rec := doRequest(t, svc, "/api/v1/bookings/7/cancel", map[string]string{
		middleware.HeaderUserID: "user-1",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), svc.lastID)
	assert.Equal(t, "user-1", svc.lastReq.UserID)
	assert.False(t, svc.lastReq.IsAdmin)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "cancelled", resp.Status)
}

func TestHandle_AdminFlagFromRole(t *testing.T) {
	svc := &stubService{resp: &models.BookingResponse{ID: 7, Status: "cancelled"}}

	rec := doRequest(t, svc, "/api/v1/bookings/7/cancel", map[string]string{
		middleware.HeaderUserID:   "admin-1",
		middleware.HeaderUserRole: middleware.RoleAdmin,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.lastReq.IsAdmin)
}

func TestHandle_Unauthorized(t *testing.T) {
	rec := doRequest(t, &stubService{}, "/api/v1/bookings/7/cancel", nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidID(t *testing.T) {
	rec := doRequest(t, &stubService{}, "/api/v1/bookings/abc/cancel", map[string]string{
		middleware.HeaderUserID: "user-1",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"not found", bookings.ErrBookingNotFound, http.StatusNotFound},
		{"access denied", bookings.ErrAccessDenied, http.StatusForbidden},
		{"past booking", bookings.ErrPastBooking, http.StatusBadRequest},
		{"already completed", bookings.ErrAlreadyCompleted, http.StatusBadRequest},
		{"internal", bookings.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(t, &stubService{err: tt.err}, "/api/v1/bookings/7/cancel", map[string]string{
				middleware.HeaderUserID: "user-1",
			})

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}
