package list_services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-NailStudio/internal/service/catalog/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeService struct {
	calledAll bool
	err       error
}

func (f *fakeService) ListPublic(context.Context) (*models.ServiceListResponse, error) {
	return &models.ServiceListResponse{Services: []models.ServiceResponse{{Name: "Manicura"}}}, f.err
}

func (f *fakeService) ListAll(context.Context) (*models.ServiceListResponse, error) {
	f.calledAll = true
	return &models.ServiceListResponse{Services: []models.ServiceResponse{}}, f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	rec := httptest.NewRecorder()
	NewHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Manicura")
	assert.False(t, svc.calledAll)

	rec = httptest.NewRecorder()
	NewAdminHandler(svc, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/services", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, svc.calledAll)

	rec = httptest.NewRecorder()
	NewHandler(&fakeService{err: errors.New("db")}, logger.NewNop()).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/services", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
