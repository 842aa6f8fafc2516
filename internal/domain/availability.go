package domain

import "github.com/m04kA/SMC-NailStudio/pkg/types"

// SlotsNeeded ceil(minutes/60). Неизвестная или неположительная длительность
// считается как DefaultServiceDuration.
func SlotsNeeded(minutes int) int {
	if minutes <= 0 {
		minutes = DefaultServiceDuration
	}
	return (minutes + SlotStepMinutes - 1) / SlotStepMinutes
}

// BuildSlotGrid почасовая сетка от Start (включительно) до End (не включительно)
func BuildSlotGrid(window WorkingWindow) []types.TimeString {
	start, err := window.Start.Minutes()
	if err != nil {
		return []types.TimeString{}
	}
	end, err := window.End.Minutes()
	if err != nil {
		return []types.TimeString{}
	}

	grid := make([]types.TimeString, 0, (end-start)/SlotStepMinutes+1)
	for m := start; m < end; m += SlotStepMinutes {
		t, err := types.FromMinutes(m)
		if err != nil {
			break
		}
		grid = append(grid, t)
	}
	return grid
}

// OccupiedSlotTimes множество занятых минут суток. Каждая активная запись блокирует
// своё начало и следующие часы по длительности своей услуги.
// Время за пределами суток отбрасывается.
func OccupiedSlotTimes(booked []BookedSlot) map[int]struct{} {
	occupied := make(map[int]struct{})

	for _, b := range booked {
		if !b.Status.IsActive() {
			continue
		}
		start, err := b.AppointmentTime.Minutes()
		if err != nil {
			continue
		}

		duration := DefaultServiceDuration
		if b.ServiceDuration != nil {
			duration = *b.ServiceDuration
		}

		for i := 0; i < SlotsNeeded(duration); i++ {
			m := start + i*SlotStepMinutes
			if m >= 24*60 {
				break
			}
			occupied[m] = struct{}{}
		}
	}

	return occupied
}

// ComputeSlots размечает сетку окна занятостью.
// requestedDuration == nil или длительность на один слот: слот занят, только если заблокирован сам.
// Для N > 1 слотов кандидат занят, если до конца сетки меньше N слотов
// или любой из N подряд идущих слотов заблокирован.
func ComputeSlots(window WorkingWindow, booked []BookedSlot, requestedDuration *int) []Slot {
	grid := BuildSlotGrid(window)
	occupied := OccupiedSlotTimes(booked)

	blocked := make([]bool, len(grid))
	for i, t := range grid {
		m, _ := t.Minutes()
		_, blocked[i] = occupied[m]
	}

	needed := 1
	if requestedDuration != nil {
		needed = SlotsNeeded(*requestedDuration)
	}

	slots := make([]Slot, len(grid))
	for i, t := range grid {
		slots[i] = Slot{Time: t, IsOccupied: isRunBlocked(blocked, i, needed)}
	}
	return slots
}

func isRunBlocked(blocked []bool, from, needed int) bool {
	if needed <= 1 {
		return blocked[from]
	}
	if from+needed > len(blocked) {
		return true
	}
	for _, b := range blocked[from : from+needed] {
		if b {
			return true
		}
	}
	return false
}

// IsSlotBookable проверяет, что start есть в сетке и не занят
func IsSlotBookable(slots []Slot, start types.TimeString) bool {
	for _, s := range slots {
		if s.Time == start {
			return !s.IsOccupied
		}
	}
	return false
}
