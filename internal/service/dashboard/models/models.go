package models

import (
	"time"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
)

// StatsResponse сводка для главной страницы админки
type StatsResponse struct {
	PendingReservations int64     `json:"pendingReservations"`
	ActiveServices      int64     `json:"activeServices"`
	UniqueCustomers     int64     `json:"uniqueCustomers"`
	MonthlyRevenue      int64     `json:"monthlyRevenue"` // в центах
	CalculatedAt        time.Time `json:"calculatedAt"`
}

// FromDomainStats конвертирует domain модель в DTO
func FromDomainStats(s *domain.DashboardStats) *StatsResponse {
	return &StatsResponse{
		PendingReservations: s.PendingReservations,
		ActiveServices:      s.ActiveServices,
		UniqueCustomers:     s.UniqueCustomers,
		MonthlyRevenue:      s.MonthlyRevenue,
		CalculatedAt:        s.CalculatedAt,
	}
}
