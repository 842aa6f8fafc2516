package domain

import "github.com/m04kA/SMC-NailStudio/pkg/types"

// Slot часовой интервал рабочего дня
type Slot struct {
	Time       types.TimeString
	IsOccupied bool
}

// FreeTimes возвращает только свободные слоты
func FreeTimes(slots []Slot) []types.TimeString {
	free := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		if !s.IsOccupied {
			free = append(free, s.Time)
		}
	}
	return free
}
