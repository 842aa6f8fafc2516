package get_available_slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// Request модель запроса на получение слотов
type Request struct {
	Date            time.Time  // Дата (без времени)
	ServiceID       *uuid.UUID // Услуга, длительность которой нужно уместить (опционально)
	DurationMinutes *int       // Длительность напрямую (опционально, ServiceID приоритетнее)
}

// Response модель ответа со слотами дня
type Response struct {
	Date            time.Time
	DurationMinutes *int          // Длительность, для которой считалась занятость
	Slots           []domain.Slot // По возрастанию времени; пусто, если салон не работает
}
