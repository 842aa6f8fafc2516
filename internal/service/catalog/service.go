package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	serviceRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/service"
	"github.com/m04kA/SMC-NailStudio/internal/service/catalog/models"
)

var validate = validator.New()

// Service сервис каталога услуг салона
type Service struct {
	serviceRepo ServiceRepository
	counter     ReservationCounter
	cache       SlotCache
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(serviceRepo ServiceRepository, counter ReservationCounter, cache SlotCache, logger Logger) *Service {
	return &Service{
		serviceRepo: serviceRepo,
		counter:     counter,
		cache:       cache,
		logger:      logger,
	}
}

// ListPublic возвращает только активные услуги
// Публичный метод - доступен всем
func (s *Service) ListPublic(ctx context.Context) (*models.ServiceListResponse, error) {
	return s.list(ctx, false)
}

// ListAll возвращает все услуги, включая скрытые
func (s *Service) ListAll(ctx context.Context) (*models.ServiceListResponse, error) {
	return s.list(ctx, true)
}

func (s *Service) list(ctx context.Context, includeInactive bool) (*models.ServiceListResponse, error) {
	services, err := s.serviceRepo.List(ctx, includeInactive)
	if err != nil {
		s.logger.Error("List: repository error, includeInactive=%t: %v", includeInactive, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceList(services), nil
}

// GetByID получает услугу по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.ServiceResponse, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("GetByID: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("GetByID: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainService(service), nil
}

// Create создает новую услугу
func (s *Service) Create(ctx context.Context, req *models.CreateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Create: creating service name=%q, duration=%d", req.Name, req.DurationMinutes)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.serviceRepo.Create(ctx, req.ToDomainService())
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created service id=%s", created.ID)
	return models.FromDomainService(created), nil
}

// Update частично обновляет услугу.
// Смена длительности или активности сбрасывает кэш слотов.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("Update: updating service id=%s", id)

	if err := validate.Struct(req); err != nil {
		s.logger.Warn("Update: validation failed for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	update := req.ToDomainUpdate()
	if update.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}
	if update.Name != nil && *update.Name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	updated, err := s.serviceRepo.Update(ctx, id, update)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Update: service id=%s not found", id)
			return nil, ErrServiceNotFound
		}
		s.logger.Error("Update: repository error for service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if update.DurationMinutes != nil || update.IsActive != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.logger.Warn("Update: failed to invalidate slots cache: %v", err)
		}
	}

	s.logger.Info("Update: successfully updated service id=%s", id)
	return models.FromDomainService(updated), nil
}

// Delete удаляет услугу. Услугу с записями удалить нельзя, её можно только скрыть.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	s.logger.Info("Delete: deleting service id=%s", id)

	count, err := s.counter.CountByService(ctx, id)
	if err != nil {
		s.logger.Error("Delete: failed to count reservations for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - count reservations: %v", ErrInternal, err)
	}
	if count > 0 {
		s.logger.Warn("Delete: service id=%s has %d reservations", id, count)
		return ErrServiceInUse
	}

	if err := s.serviceRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			s.logger.Warn("Delete: service id=%s not found", id)
			return ErrServiceNotFound
		}
		s.logger.Error("Delete: repository error for service id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted service id=%s", id)
	return nil
}
