package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// ServiceRepository интерфейс репозитория услуг
type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) (*domain.Service, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
	List(ctx context.Context, includeInactive bool) ([]*domain.Service, error)
	Update(ctx context.Context, id uuid.UUID, update *domain.ServiceUpdate) (*domain.Service, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ReservationCounter проверка ссылок на услугу перед удалением
type ReservationCounter interface {
	CountByService(ctx context.Context, serviceID uuid.UUID) (int64, error)
}

// SlotCache кэш слотов. Длительность услуги не входит в ключ,
// но влияет на занятость, поэтому при её смене сбрасывается всё.
type SlotCache interface {
	InvalidateAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
