package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	serviceRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/service"
)

// UseCase use case расчёта слотов дня.
// Ошибки хранилищ не пробрасываются: возвращается пустой список (лучше нет слотов, чем неверные).
type UseCase struct {
	workingHoursRepo WorkingHoursRepository
	reservationRepo  ReservationRepository
	serviceRepo      ServiceRepository
	cache            SlotCache
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	workingHoursRepo WorkingHoursRepository,
	reservationRepo ReservationRepository,
	serviceRepo ServiceRepository,
	cache SlotCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		workingHoursRepo: workingHoursRepo,
		reservationRepo:  reservationRepo,
		serviceRepo:      serviceRepo,
		cache:            cache,
		logger:           logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	dateStr := date.Format(domain.DateFormat)

	// 1. Длительность запрашиваемой услуги
	duration, err := uc.resolveDuration(ctx, req)
	if err != nil {
		if errors.Is(err, ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: service id=%s not found", req.ServiceID)
			return nil, err
		}
		uc.logger.Error("GetAvailableSlots: failed to get service id=%s, returning no slots: %v", req.ServiceID, err)
		return emptyResponse(date, nil), nil
	}

	// 2. Кэш по дате используется только без длительности: занятость от неё зависит
	if duration == nil {
		cached, ok, err := uc.cache.Get(ctx, date)
		if err != nil {
			uc.logger.Warn("GetAvailableSlots: cache read failed for date=%s: %v", dateStr, err)
		}
		if ok {
			return &Response{Date: date, Slots: cached}, nil
		}
	}

	// 3. День недели и рабочее окно
	day := domain.WeekdayFromDate(date)
	if !day.IsValid() {
		uc.logger.Info("GetAvailableSlots: date=%s is not a working weekday", dateStr)
		return emptyResponse(date, duration), nil
	}

	workingDays, err := uc.workingHoursRepo.GetAll(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours, returning no slots: %v", err)
		return emptyResponse(date, duration), nil
	}

	window, ok := domain.ResolveWorkingWindow(day, workingDays)
	if !ok {
		uc.logger.Info("GetAvailableSlots: salon is closed on date=%s (%s)", dateStr, day)
		uc.store(ctx, date, duration, []domain.Slot{})
		return emptyResponse(date, duration), nil
	}

	// 4. Активные записи дня
	booked, err := uc.reservationRepo.GetActiveForDate(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations for date=%s, returning no slots: %v", dateStr, err)
		return emptyResponse(date, duration), nil
	}

	// 5. Сетка с занятостью
	slots := domain.ComputeSlots(window, booked, duration)
	uc.store(ctx, date, duration, slots)

	uc.logger.Info("GetAvailableSlots: date=%s, window=%s-%s, reservations=%d, slots=%d",
		dateStr, window.Start, window.End, len(booked), len(slots))

	return &Response{
		Date:            date,
		DurationMinutes: duration,
		Slots:           slots,
	}, nil
}

func (uc *UseCase) resolveDuration(ctx context.Context, req *Request) (*int, error) {
	if req.ServiceID == nil {
		return req.DurationMinutes, nil
	}

	service, err := uc.serviceRepo.GetByID(ctx, *req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if !service.IsActive {
		return nil, ErrServiceNotFound
	}

	return &service.DurationMinutes, nil
}

// store кладёт результат в кэш, только если он посчитан без длительности
func (uc *UseCase) store(ctx context.Context, date time.Time, duration *int, slots []domain.Slot) {
	if duration != nil {
		return
	}
	if err := uc.cache.Set(ctx, date, slots); err != nil {
		uc.logger.Warn("GetAvailableSlots: cache write failed for date=%s: %v", date.Format(domain.DateFormat), err)
	}
}

func validateRequest(req *Request) error {
	if req == nil || req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes != nil && *req.DurationMinutes <= 0 {
		return fmt.Errorf("%w: durationMinutes must be positive", ErrInvalidInput)
	}
	return nil
}

func emptyResponse(date time.Time, duration *int) *Response {
	return &Response{
		Date:            date,
		DurationMinutes: duration,
		Slots:           []domain.Slot{},
	}
}
