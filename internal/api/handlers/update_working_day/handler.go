package update_working_day

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-NailStudio/internal/api/handlers"
	"github.com/m04kA/SMC-NailStudio/internal/service/workinghours"
	"github.com/m04kA/SMC-NailStudio/internal/service/workinghours/models"
)

const (
	msgInvalidDay         = "día inválido, se espera 0 (lunes) a 5 (sábado)"
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidHours       = "horario inválido, se espera HH:MM y apertura antes del cierre"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/working-hours/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	day, err := strconv.Atoi(mux.Vars(r)["day"])
	if err != nil {
		h.logger.Warn("PUT /admin/working-hours/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	var req models.UpdateDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/working-hours/{day} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateDay(r.Context(), day, &req)
	if err != nil {
		switch {
		case errors.Is(err, workinghours.ErrInvalidDay):
			h.logger.Warn("PUT /admin/working-hours/{day} - Invalid day: day=%d", day)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, workinghours.ErrInvalidInput):
			h.logger.Warn("PUT /admin/working-hours/{day} - Invalid hours: day=%d, %v", day, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /admin/working-hours/{day} - Failed to update day: day=%d, error=%v", day, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/working-hours/{day} - Day updated: day=%d, isWorking=%t", day, result.IsWorking)
	handlers.RespondJSON(w, http.StatusOK, result)
}
