package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/workinghours/models"
)

type WorkingHoursService interface {
	GetWeek(ctx context.Context) (*models.WeekResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
