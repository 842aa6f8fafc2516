package list_portfolio

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

type PortfolioService interface {
	List(ctx context.Context, featuredOnly bool) (*models.ItemListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
