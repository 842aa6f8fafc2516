package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	reservationRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-NailStudio/internal/service/reservations/models"
)

// Service сервис для работы с записями клиентов в админке
type Service struct {
	reservationRepo ReservationRepository
	cache           SlotCache
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservationRepo ReservationRepository,
	cache SlotCache,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		cache:           cache,
		txManager:       txManager,
		timeProvider:    timeProvider,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainReservation(reservation, s.timeProvider.Now()), nil
}

// List получает записи с фильтрацией по периоду, статусу, email и услуге.
// Прошедшие pending/confirmed отдаются с effectiveStatus=completed.
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("List: fetching reservations, status=%v, limit=%d, offset=%d", filter.Status, filter.Limit, filter.Offset)

	reservations, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations, s.timeProvider.Now()), nil
}

// UpdateStatus меняет статус записи по правилам переходов:
// pending -> confirmed|cancelled, confirmed -> completed|cancelled.
// После смены статуса кэш слотов на дату записи сбрасывается.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.ReservationResponse, error) {
	s.logger.Info("UpdateStatus: updating reservation id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s", req.Status)
		return nil, ErrInvalidStatus
	}

	var updated *domain.Reservation

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		// В транзакции запись читается с блокировкой
		reservation, err := s.reservationRepo.GetByID(txCtx, id)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		if !reservation.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, reservation.Status, newStatus)
		}

		if err := s.reservationRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				return ErrReservationNotFound
			}
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		reservation.Status = newStatus
		updated = reservation
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrReservationNotFound):
			s.logger.Warn("UpdateStatus: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		case errors.Is(err, ErrInvalidTransition):
			s.logger.Warn("UpdateStatus: %v", err)
			return nil, err
		case errors.Is(err, ErrInternal):
			s.logger.Error("UpdateStatus: %v", err)
			return nil, err
		default:
			s.logger.Error("UpdateStatus: transaction error for reservation id=%s: %v", id, err)
			return nil, fmt.Errorf("%w: UpdateStatus - transaction error: %v", ErrInternal, err)
		}
	}

	if err := s.cache.Invalidate(ctx, updated.AppointmentDate); err != nil {
		s.logger.Warn("UpdateStatus: failed to invalidate slots cache for %s: %v",
			updated.AppointmentDate.Format(domain.DateFormat), err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%s to status=%s", id, newStatus)
	return models.FromDomainReservation(updated, s.timeProvider.Now()), nil
}
