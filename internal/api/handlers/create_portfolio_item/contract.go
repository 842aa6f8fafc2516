package create_portfolio_item

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

type PortfolioService interface {
	Create(ctx context.Context, req *models.CreateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
