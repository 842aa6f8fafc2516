package get_available_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-NailStudio/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeUseCase struct {
	req  *getAvailableSlots.Request
	resp *getAvailableSlots.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	f.req = req
	return f.resp, f.err
}

func TestHandle(t *testing.T) {
	uc := &fakeUseCase{resp: &getAvailableSlots.Response{
		Date: time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC),
		Slots: []domain.Slot{
			{Time: "09:00", IsOccupied: false},
			{Time: "10:00", IsOccupied: true},
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?date=2025-06-14&durationMinutes=90", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2025-06-14","slots":[{"time":"09:00","isOccupied":false},{"time":"10:00","isOccupied":true}]}`, rec.Body.String())
	require.NotNil(t, uc.req.DurationMinutes)
	assert.Equal(t, 90, *uc.req.DurationMinutes)
	assert.Nil(t, uc.req.ServiceID)
}

func TestHandle_BadRequests(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  int
	}{
		{name: "missing date", query: "", want: http.StatusBadRequest},
		{name: "bad date", query: "date=14-06-2025", want: http.StatusBadRequest},
		{name: "bad service", query: "date=2025-06-14&serviceId=42", want: http.StatusBadRequest},
		{name: "zero duration", query: "date=2025-06-14&durationMinutes=0", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{}
			h := NewHandler(uc, logger.NewNop())

			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/slots?"+tt.query, nil))

			assert.Equal(t, tt.want, rec.Code)
			assert.Nil(t, uc.req)
		})
	}
}

func TestHandle_ServiceNotFound(t *testing.T) {
	h := NewHandler(&fakeUseCase{err: getAvailableSlots.ErrServiceNotFound}, logger.NewNop())

	rec := httptest.NewRecorder()
	h.Handle(rec, httptest.NewRequest(http.MethodGet,
		"/api/v1/slots?date=2025-06-14&serviceId=7c9e6679-7425-40de-944b-e07fc1f90ae7", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
