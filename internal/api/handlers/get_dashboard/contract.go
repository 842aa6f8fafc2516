package get_dashboard

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/dashboard/models"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
