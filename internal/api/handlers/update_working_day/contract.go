package update_working_day

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	UpdateDay(ctx context.Context, dayOfWeek int, req *models.UpdateDayRequest) (*models.WorkingDayResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
