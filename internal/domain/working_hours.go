package domain

import (
	"time"

	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

// WorkingDay настройка рабочего дня
type WorkingDay struct {
	DayOfWeek Weekday
	IsWorking bool
	StartTime *types.TimeString // NULL допустим для нерабочего дня
	EndTime   *types.TimeString
	UpdatedAt time.Time
}

// WorkingWindow рабочее окно дня, [Start, End)
type WorkingWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// FallbackWindow окно по умолчанию для рабочих дней без корректной настройки
func FallbackWindow() WorkingWindow {
	return WorkingWindow{Start: FallbackStartTime, End: FallbackEndTime}
}

// Window возвращает окно, если у дня корректные часы (обе границы заданы и start < end)
func (w *WorkingDay) Window() (WorkingWindow, bool) {
	if w.StartTime == nil || w.EndTime == nil {
		return WorkingWindow{}, false
	}
	if w.StartTime.Validate() != nil || w.EndTime.Validate() != nil {
		return WorkingWindow{}, false
	}
	if !w.StartTime.IsBefore(*w.EndTime) {
		return WorkingWindow{}, false
	}
	return WorkingWindow{Start: *w.StartTime, End: *w.EndTime}, true
}

// ResolveWorkingWindow определяет окно работы на день недели:
//   - воскресенье (невалидный день) - закрыто
//   - нет записи - окно по умолчанию 09:00-18:00
//   - запись с is_working=false - закрыто
//   - рабочий день с пустыми/битыми/перевёрнутыми часами - окно по умолчанию
func ResolveWorkingWindow(day Weekday, days []*WorkingDay) (WorkingWindow, bool) {
	if !day.IsValid() {
		return WorkingWindow{}, false
	}

	var found *WorkingDay
	for _, d := range days {
		if d != nil && d.DayOfWeek == day {
			found = d
			break
		}
	}

	if found == nil {
		return FallbackWindow(), true
	}
	if !found.IsWorking {
		return WorkingWindow{}, false
	}
	if window, ok := found.Window(); ok {
		return window, true
	}
	return FallbackWindow(), true
}
