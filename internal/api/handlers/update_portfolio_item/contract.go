package update_portfolio_item

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/service/portfolio/models"
)

type PortfolioService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateItemRequest) (*models.ItemResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
