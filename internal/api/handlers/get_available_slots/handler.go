package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-NailStudio/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "la fecha es obligatoria"
	msgInvalidDate     = "formato de fecha inválido, se espera YYYY-MM-DD"
	msgInvalidService  = "ID de servicio inválido"
	msgInvalidDuration = "duración inválida"
	msgServiceNotFound = "servicio no encontrado"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots
// Query params: date (required, YYYY-MM-DD), serviceId или durationMinutes (опционально)
// Ошибки хранилищ не приводят к 5xx: use case отдает пустой список
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(dateStr, query.Get("serviceId"), query.Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /slots - Invalid query: %v", err)
		switch {
		case errors.Is(err, errInvalidService):
			handlers.RespondBadRequest(w, msgInvalidService)
		case errors.Is(err, errInvalidDuration):
			handlers.RespondBadRequest(w, msgInvalidDuration)
		default:
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /slots - Service not found: service_id=%s", query.Get("serviceId"))
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /slots - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots - Slots retrieved successfully: date=%s, slots_count=%d", dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
