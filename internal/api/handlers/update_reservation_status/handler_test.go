package update_reservation_status

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-NailStudio/internal/service/reservations"
	"github.com/m04kA/SMC-NailStudio/internal/service/reservations/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeService struct {
	err error
}

func (f *fakeService) UpdateStatus(_ context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.ReservationResponse{ID: id, Status: req.Status, EffectiveStatus: req.Status}, nil
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/reservations/{id}/status", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/"+id+"/status", strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name string
		id   string
		body string
		err  error
		want int
	}{
		{name: "ok", id: id, body: `{"status":"confirmed"}`, want: http.StatusOK},
		{name: "bad id", id: "17", body: `{"status":"confirmed"}`, want: http.StatusBadRequest},
		{name: "bad body", id: id, body: `status=confirmed`, want: http.StatusBadRequest},
		{name: "not found", id: id, body: `{"status":"confirmed"}`, err: reservations.ErrReservationNotFound, want: http.StatusNotFound},
		{name: "unknown status", id: id, body: `{"status":"archived"}`, err: reservations.ErrInvalidStatus, want: http.StatusBadRequest},
		{
			name: "terminal",
			id:   id,
			body: `{"status":"pending"}`,
			err:  fmt.Errorf("%w: cancelled -> pending", reservations.ErrInvalidTransition),
			want: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.id, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
