package create_booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salonora/booking-service/pkg/types"
)

func TestToUseCaseRequest(t *testing.T) {
	req := &CreateBookingRequest{
		ServiceID: 2,
		Date:      "2025-10-15",
		StartTime: "10:00",
		UserName:  "Мария Иванова",
		UserEmail: "maria@example.com",
	}

	ucReq, err := req.ToUseCaseRequest("user-1")
	require.NoError(t, err)
	assert.Equal(t, "user-1", ucReq.UserID)
	assert.Equal(t, int64(2), ucReq.ServiceID)
	assert.Equal(t, types.TimeString("10:00"), ucReq.StartTime)
	assert.Equal(t, "2025-10-15", ucReq.Date.Format("2006-01-02"))
}

func TestToUseCaseRequest_NormalizesStartTime(t *testing.T) {
	// Клиент может прислать "9:00" без ведущего нуля, в use case
	// время всегда уходит в каноничном виде и совпадает со слотами
	req := &CreateBookingRequest{
		ServiceID: 2,
		Date:      "2025-10-15",
		StartTime: "9:00",
		UserName:  "Мария Иванова",
	}

	ucReq, err := req.ToUseCaseRequest("user-1")
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), ucReq.StartTime)
}

func TestToUseCaseRequest_InvalidInput(t *testing.T) {
	_, err := (&CreateBookingRequest{Date: "15.10.2025", StartTime: "10:00"}).ToUseCaseRequest("user-1")
	assert.Error(t, err)

	_, err = (&CreateBookingRequest{Date: "2025-10-15", StartTime: "noon"}).ToUseCaseRequest("user-1")
	assert.Error(t, err)
}
