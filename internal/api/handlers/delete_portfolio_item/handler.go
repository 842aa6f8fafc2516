package delete_portfolio_item

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio"
)

const (
	msgInvalidItemID = "ID de trabajo inválido"
	msgNotFound      = "trabajo no encontrado"
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

// Handle DELETE /api/v1/admin/portfolio/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		h.logger.Warn("DELETE /admin/portfolio/{id} - Invalid item ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidItemID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, portfolio.ErrItemNotFound) {
			h.logger.Warn("DELETE /admin/portfolio/{id} - Item not found: item_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("DELETE /admin/portfolio/{id} - Failed to delete item: item_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/portfolio/{id} - Item deleted: item_id=%s", id)
	handlers.RespondNoContent(w)
}
