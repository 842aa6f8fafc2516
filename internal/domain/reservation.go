package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

// ReservationStatus статус записи клиента
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
)

var allowedTransitions = map[ReservationStatus][]ReservationStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// IsValid проверяет, что статус известен
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// IsActive активные статусы занимают слоты
func (s ReservationStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// CanTransitionTo проверяет допустимость смены статуса.
// cancelled и completed конечные.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation запись клиента на услугу
type Reservation struct {
	ID              uuid.UUID
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	ServiceID       uuid.UUID
	AppointmentDate time.Time
	AppointmentTime types.TimeString
	Status          ReservationStatus
	Notes           *string
	TotalPrice      int64 // в центах, копия цены услуги на момент записи

	// Копия данных услуги
	ServiceName     string
	ServiceDuration *int // nil, если услуга удалена

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive запись занимает слоты
func (r *Reservation) IsActive() bool {
	return r.Status.IsActive()
}

// EffectiveStatus статус для отображения: прошедшие pending/confirmed показываются как completed.
// Хранимый статус не меняется.
func (r *Reservation) EffectiveStatus(today time.Time) ReservationStatus {
	if !r.Status.IsActive() {
		return r.Status
	}
	if DateOnly(r.AppointmentDate).Before(DateOnly(today)) {
		return StatusCompleted
	}
	return r.Status
}

// NormalizedEmail email для подсчёта уникальных клиентов
func (r *Reservation) NormalizedEmail() string {
	return NormalizeEmail(r.CustomerEmail)
}

// NormalizeEmail приводит email к нижнему регистру без пробелов по краям
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// BookedSlot минимальные данные записи для расчёта занятости
type BookedSlot struct {
	AppointmentTime types.TimeString
	Status          ReservationStatus
	ServiceDuration *int
}

// ReservationFilter фильтр для списка записей в админке
type ReservationFilter struct {
	DateFrom      *time.Time
	DateTo        *time.Time
	Status        *ReservationStatus
	CustomerEmail *string
	ServiceID     *uuid.UUID
	Limit         int
	Offset        int
}

// DateOnly отбрасывает время, оставляя календарную дату в той же локации
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
