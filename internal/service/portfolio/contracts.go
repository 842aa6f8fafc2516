package portfolio

import (
	"context"
	"io"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/internal/integrations/imagestore"
)

// PortfolioRepository интерфейс репозитория портфолио
type PortfolioRepository interface {
	Create(ctx context.Context, item *domain.PortfolioItem) (*domain.PortfolioItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PortfolioItem, error)
	List(ctx context.Context, featuredOnly bool) ([]*domain.PortfolioItem, error)
	Update(ctx context.Context, id uuid.UUID, update *domain.PortfolioItemUpdate) (*domain.PortfolioItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ImageStore интерфейс хранилища изображений
type ImageStore interface {
	Upload(ctx context.Context, reader io.Reader, size int64, contentType string) (*imagestore.Upload, error)
	Remove(ctx context.Context, key string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
