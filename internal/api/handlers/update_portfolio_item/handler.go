package update_portfolio_item

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

const (
	msgInvalidItemID      = "ID de trabajo inválido"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidItem        = "datos del trabajo inválidos"
	msgNotFound           = "trabajo no encontrado"
)

type Handler struct {
	service PortfolioService
	logger  Logger
}

func NewHandler(service PortfolioService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/portfolio/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("PATCH /admin/portfolio/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	var req models.UpdateItemRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/portfolio/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, portfolio.ErrItemNotFound):
			h.logger.Warn("PATCH /admin/portfolio/{id} - Item not found: item_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, portfolio.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/portfolio/{id} - Invalid item: %v", err)
			handlers.RespondBadRequest(w, msgInvalidItem)

		default:
			h.logger.Error("PATCH /admin/portfolio/{id} - Failed to update item: item_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/portfolio/{id} - Item updated: item_id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
