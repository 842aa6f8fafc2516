package domain

import "github.com/m04kA/SMC-NailStudio/pkg/types"

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Параметры сетки слотов
const (
	SlotStepMinutes        = 60 // сетка всегда почасовая
	DefaultServiceDuration = 60 // если длительность услуги неизвестна

	FallbackStartTime types.TimeString = "09:00"
	FallbackEndTime   types.TimeString = "18:00"
)

// Ограничения для валидации
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 часов
	MaxNotesLength            = 500
	MaxCustomerNameLength     = 120
	MaxServiceNameLength      = 120
	MaxDescriptionLength      = 2000
	MaxPortfolioTags          = 20
)

// ActiveStatuses статусы, занимающие слоты
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
