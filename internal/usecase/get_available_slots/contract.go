package get_available_slots

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// WorkingHoursRepository интерфейс хранилища рабочих часов
type WorkingHoursRepository interface {
	GetAll(ctx context.Context) ([]*domain.WorkingDay, error)
}

// ReservationRepository интерфейс хранилища записей
type ReservationRepository interface {
	// GetActiveForDate активные (pending, confirmed) записи на дату с длительностью услуги
	GetActiveForDate(ctx context.Context, date time.Time) ([]domain.BookedSlot, error)
}

// ServiceRepository интерфейс каталога услуг
type ServiceRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Service, error)
}

// SlotCache кэш слотов по дате
type SlotCache interface {
	Get(ctx context.Context, date time.Time) ([]domain.Slot, bool, error)
	Set(ctx context.Context, date time.Time, slots []domain.Slot) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
