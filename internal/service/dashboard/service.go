package dashboard

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/internal/service/dashboard/models"
)

// Service сервис сводной статистики
type Service struct {
	reservations ReservationStats
	services     ServiceStats
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса статистики
func NewService(reservations ReservationStats, services ServiceStats, timeProvider TimeProvider, logger Logger) *Service {
	return &Service{
		reservations: reservations,
		services:     services,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetStats считает pending записи с сегодняшнего дня, активные услуги,
// уникальных клиентов по email и выручку completed записей за текущий месяц
func (s *Service) GetStats(ctx context.Context) (*models.StatsResponse, error) {
	now := s.timeProvider.Now()
	today := domain.DateOnly(now)
	monthStart, nextMonth := domain.MonthBounds(today)

	stats := &domain.DashboardStats{CalculatedAt: now}
	var err error

	if stats.PendingReservations, err = s.reservations.CountPendingFrom(ctx, today); err != nil {
		return nil, s.fail("count pending reservations", err)
	}
	if stats.ActiveServices, err = s.services.CountActive(ctx); err != nil {
		return nil, s.fail("count active services", err)
	}
	if stats.UniqueCustomers, err = s.reservations.CountUniqueCustomers(ctx); err != nil {
		return nil, s.fail("count unique customers", err)
	}
	if stats.MonthlyRevenue, err = s.reservations.SumCompletedRevenue(ctx, monthStart, nextMonth); err != nil {
		return nil, s.fail("sum monthly revenue", err)
	}

	return models.FromDomainStats(stats), nil
}

func (s *Service) fail(op string, err error) error {
	s.logger.Error("GetStats: failed to %s: %v", op, err)
	return fmt.Errorf("%w: GetStats - %s: %v", ErrInternal, op, err)
}
