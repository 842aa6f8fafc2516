package list_services

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/service/catalog/models"
)

type CatalogService interface {
	ListPublic(ctx context.Context) (*models.ServiceListResponse, error)
	ListAll(ctx context.Context) (*models.ServiceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
