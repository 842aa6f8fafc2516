package domain

import (
	"time"

	"github.com/google/uuid"
)

// Service услуга салона
type Service struct {
	ID              uuid.UUID
	Name            string
	Description     string
	DurationMinutes int
	Price           int64 // в центах
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SlotsNeeded количество часовых слотов, которое занимает услуга
func (s *Service) SlotsNeeded() int {
	return SlotsNeeded(s.DurationMinutes)
}

// ServiceUpdate частичное обновление услуги, nil поля не меняются
type ServiceUpdate struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int64
	IsActive        *bool
}

// IsEmpty нечего обновлять
func (u *ServiceUpdate) IsEmpty() bool {
	return u.Name == nil && u.Description == nil && u.DurationMinutes == nil &&
		u.Price == nil && u.IsActive == nil
}
