package delete_portfolio_item

import (
	"context"

	"github.com/google/uuid"
)

type PortfolioService interface {
	Delete(ctx context.Context, id uuid.UUID) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
