package admin_login

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-NailStudio/internal/service/adminauth"
	"github.com/m04kA/SMC-NailStudio/internal/service/adminauth/models"
	"github.com/m04kA/SMC-NailStudio/pkg/logger"
)

type fakeAuth struct{}

func (fakeAuth) Login(_ context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if req.Password != "secret" {
		return nil, adminauth.ErrInvalidCredentials
	}
	return &models.TokenResponse{Token: "jwt", ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func TestHandle(t *testing.T) {
	h := NewHandler(fakeAuth{}, logger.NewNop())

	tests := []struct {
		name string
		body string
		want int
	}{
		{name: "ok", body: `{"password":"secret"}`, want: http.StatusOK},
		{name: "wrong", body: `{"password":"guess"}`, want: http.StatusUnauthorized},
		{name: "broken", body: `{"password":`, want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/admin/auth", strings.NewReader(tt.body)))
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
