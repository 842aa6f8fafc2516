package workinghours

import (
	"context"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// WorkingHoursRepository интерфейс репозитория рабочих часов
type WorkingHoursRepository interface {
	GetAll(ctx context.Context) ([]*domain.WorkingDay, error)
	Upsert(ctx context.Context, day *domain.WorkingDay) (*domain.WorkingDay, error)
}

// SlotCache кэш слотов. Смена часов затрагивает все даты.
type SlotCache interface {
	InvalidateAll(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
