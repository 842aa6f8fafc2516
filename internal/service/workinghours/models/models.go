package models

import (
	"time"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// Request модели

// UpdateDayRequest запрос на изменение рабочего дня.
// Для рабочего дня обе границы обязательны.
type UpdateDayRequest struct {
	IsWorking bool    `json:"isWorking"`
	StartTime *string `json:"startTime,omitempty"` // "09:00"
	EndTime   *string `json:"endTime,omitempty"`   // "18:00"
}

// Response модели

// WorkingDayResponse настройка одного дня
type WorkingDayResponse struct {
	DayOfWeek int        `json:"dayOfWeek"` // 0 = понедельник ... 5 = суббота
	DayName   string     `json:"dayName"`
	IsWorking bool       `json:"isWorking"`
	StartTime *string    `json:"startTime,omitempty"`
	EndTime   *string    `json:"endTime,omitempty"`
	IsDefault bool       `json:"isDefault"` // день не настроен, действует окно по умолчанию
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// WeekResponse расписание на неделю
type WeekResponse struct {
	Days []WorkingDayResponse `json:"days"`
}

// Методы конвертации

// FromDomainWorkingDay конвертирует domain модель в DTO
func FromDomainWorkingDay(d *domain.WorkingDay) WorkingDayResponse {
	resp := WorkingDayResponse{
		DayOfWeek: int(d.DayOfWeek),
		DayName:   d.DayOfWeek.Name(),
		IsWorking: d.IsWorking,
	}

	if d.IsWorking {
		// Битые часы в БД показываем так, как их увидит клиент
		window, ok := d.Window()
		if !ok {
			window = domain.FallbackWindow()
			resp.IsDefault = true
		}
		start, end := window.Start.String(), window.End.String()
		resp.StartTime, resp.EndTime = &start, &end
	}

	if !d.UpdatedAt.IsZero() {
		updatedAt := d.UpdatedAt
		resp.UpdatedAt = &updatedAt
	}

	return resp
}

// DefaultWorkingDay представление дня без записи в БД
func DefaultWorkingDay(day domain.Weekday) WorkingDayResponse {
	window := domain.FallbackWindow()
	start, end := window.Start.String(), window.End.String()

	return WorkingDayResponse{
		DayOfWeek: int(day),
		DayName:   day.Name(),
		IsWorking: true,
		StartTime: &start,
		EndTime:   &end,
		IsDefault: true,
	}
}
