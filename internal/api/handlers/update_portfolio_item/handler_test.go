package update_portfolio_item

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeService struct {
	req *models.UpdateItemRequest
	err error
}

func (f *fakeService) Update(_ context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.ItemResponse, error) {
	f.req = req
	if f.err != nil {
		return nil, f.err
	}
	return &models.ItemResponse{ID: id, IsFeatured: req.IsFeatured != nil && *req.IsFeatured}, nil
}

func serve(h *Handler, id, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/admin/portfolio/{id}", h.Handle).Methods(http.MethodPatch)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/portfolio/"+id, strings.NewReader(body))
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ToggleFeatured(t *testing.T) {
	svc := &fakeService{}

	rec := serve(NewHandler(svc, logger.NewNop()), uuid.New().String(), `{"isFeatured":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.req.IsFeatured)
	assert.True(t, *svc.req.IsFeatured)
	assert.Nil(t, svc.req.Title)
	assert.Contains(t, rec.Body.String(), `"isFeatured":true`)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name string
		id   string
		body string
		err  error
		want int
	}{
		{name: "bad id", id: "abc", body: `{"isFeatured":true}`, want: http.StatusBadRequest},
		{name: "unknown field", id: id, body: `{"imageUrl":"x"}`, want: http.StatusBadRequest},
		{name: "invalid", id: id, body: `{"title":""}`, err: portfolio.ErrInvalidInput, want: http.StatusBadRequest},
		{name: "not found", id: id, body: `{"isFeatured":false}`, err: portfolio.ErrItemNotFound, want: http.StatusNotFound},
		{name: "internal", id: id, body: `{"displayOrder":2}`, err: portfolio.ErrInternal, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&fakeService{err: tt.err}, logger.NewNop()), tt.id, tt.body)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
