package models

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")

	// ErrInvalidPeriod возвращается, когда начало периода позже конца
	ErrInvalidPeriod = errors.New("dateFrom is after dateTo")
)

// Request модели

// ListReservationsRequest фильтр списка записей в админке
type ListReservationsRequest struct {
	DateFrom      *time.Time `json:"dateFrom,omitempty"`
	DateTo        *time.Time `json:"dateTo,omitempty"`
	Status        *string    `json:"status,omitempty"`
	CustomerEmail *string    `json:"customerEmail,omitempty"`
	ServiceID     *uuid.UUID `json:"serviceId,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
		CustomerEmail: r.CustomerEmail,
		ServiceID:     r.ServiceID,
		Limit:         r.Limit,
		Offset:        r.Offset,
	}

	if r.DateFrom != nil && r.DateTo != nil && r.DateFrom.After(*r.DateTo) {
		return filter, ErrInvalidPeriod
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на смену статуса
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID              uuid.UUID `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ServiceID       uuid.UUID `json:"serviceId"`
	AppointmentDate string    `json:"appointmentDate"` // "2025-06-14"
	AppointmentTime string    `json:"appointmentTime"` // "10:00"
	Status          string    `json:"status"`          // хранимый статус
	EffectiveStatus string    `json:"effectiveStatus"` // статус для отображения
	Notes           *string   `json:"notes,omitempty"`
	TotalPrice      int64     `json:"totalPrice"`

	// Денормализованные данные
	ServiceName     string `json:"serviceName"`
	ServiceDuration *int   `json:"serviceDuration,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation, today time.Time) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		ServiceID:       r.ServiceID,
		AppointmentDate: r.AppointmentDate.Format(domain.DateFormat),
		AppointmentTime: r.AppointmentTime.String(),
		Status:          string(r.Status),
		EffectiveStatus: string(r.EffectiveStatus(today)),
		Notes:           r.Notes,
		TotalPrice:      r.TotalPrice,
		ServiceName:     r.ServiceName,
		ServiceDuration: r.ServiceDuration,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation, today time.Time) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if item := FromDomainReservation(r, today); item != nil {
			resp.Reservations = append(resp.Reservations, *item)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
