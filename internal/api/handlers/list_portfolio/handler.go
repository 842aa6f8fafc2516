package list_portfolio

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
)

const msgInvalidFeatured = "parámetro featured inválido"

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

// Handle GET /api/v1/portfolio
// Query params: featured (опционально, true - только избранные)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	featuredOnly := false
	if featuredStr := r.URL.Query().Get("featured"); featuredStr != "" {
		v, err := strconv.ParseBool(featuredStr)
		if err != nil {
			h.logger.Warn("GET /portfolio - Invalid featured value: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFeatured)
			return
		}
		featuredOnly = v
	}

	result, err := h.service.List(r.Context(), featuredOnly)
	if err != nil {
		h.logger.Error("GET /portfolio - Failed to list portfolio: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
