package create_reservation

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

// Request модель запроса на запись
type Request struct {
	CustomerName  string           `validate:"required,max=120"`
	CustomerEmail string           `validate:"required,email,max=254"`
	CustomerPhone string           `validate:"required,min=6,max=32"`
	ServiceID     uuid.UUID        `validate:"-"`
	Date          time.Time        `validate:"-"` // Дата (без времени)
	StartTime     types.TimeString `validate:"required"`
	Notes         *string          `validate:"omitempty,max=500"`
}

// Response модель ответа с созданной записью
type Response struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceID       uuid.UUID
	ServiceName     string
	DurationMinutes int
	Date            time.Time
	StartTime       types.TimeString
	Status          string
	TotalPrice      int64
	Notes           *string
	CreatedAt       time.Time
}
