package list_services

import (
	"net/http"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/catalog/models"
)

type Handler struct {
	service         CatalogService
	includeInactive bool
	logger          Logger
}

// NewHandler публичный список (только активные услуги)
func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// NewAdminHandler список для админки, включая скрытые услуги
func NewAdminHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{service: service, includeInactive: true, logger: logger}
}

// Handle GET /api/v1/services и GET /api/v1/admin/services
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result *models.ServiceListResponse
		err    error
	)
	if h.includeInactive {
		result, err = h.service.ListAll(r.Context())
	} else {
		result, err = h.service.ListPublic(r.Context())
	}
	if err != nil {
		h.logger.Error("GET %s - Failed to list services: error=%v", r.URL.Path, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
