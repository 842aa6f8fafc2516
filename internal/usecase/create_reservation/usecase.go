package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	serviceRepo "github.com/m04kA/SMC-NailStudio/internal/infra/storage/service"
	"github.com/m04kA/SMC-NailStudio/pkg/txmanager"
)

// UseCase use case публичной записи на услугу
type UseCase struct {
	reservationRepo  ReservationRepository
	workingHoursRepo WorkingHoursRepository
	serviceRepo      ServiceRepository
	cache            SlotCache
	txManager        TransactionManager
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	workingHoursRepo WorkingHoursRepository,
	serviceRepo ServiceRepository,
	cache SlotCache,
	txManager TransactionManager,
	timeProvider TimeProvider,
	logger Logger,
) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		reservationRepo:  reservationRepo,
		workingHoursRepo: workingHoursRepo,
		serviceRepo:      serviceRepo,
		cache:            cache,
		txManager:        txManager,
		timeProvider:     timeProvider,
		logger:           logger,
	}
}

// Execute выполняет use case создания записи.
// Проверка свободного слота и вставка идут в одной SERIALIZABLE транзакции,
// записи дня читаются с блокировкой.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)
	dateStr := date.Format(domain.DateFormat)

	uc.logger.Info("CreateReservation: service=%s, date=%s, time=%s", req.ServiceID, dateStr, req.StartTime)

	// 2. Дата не в прошлом
	if err := validateDate(date, req.StartTime, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: date validation failed: %v", err)
		return nil, err
	}

	day := domain.WeekdayFromDate(date)
	if !day.IsValid() {
		uc.logger.Warn("CreateReservation: salon is closed on %s", dateStr)
		return nil, ErrSalonClosed
	}

	// 3. Услуга
	service, err := uc.serviceRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, serviceRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%s not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%s: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateReservation: service id=%s is inactive", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	var result *domain.Reservation

	// 4. Проверка слота и вставка в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		workingDays, err := uc.workingHoursRepo.GetAll(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get working hours: %v", err)
			return fmt.Errorf("%w: failed to get working hours: %w", ErrInternal, err)
		}

		window, ok := domain.ResolveWorkingWindow(day, workingDays)
		if !ok {
			uc.logger.Warn("CreateReservation: salon is closed on %s (%s)", dateStr, day)
			return ErrSalonClosed
		}

		booked, err := uc.reservationRepo.GetActiveForDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %w", ErrInternal, err)
		}

		slots := domain.ComputeSlots(window, booked, &service.DurationMinutes)
		if !domain.IsSlotBookable(slots, req.StartTime) {
			uc.logger.Warn("CreateReservation: slot %s on %s is not available for %d minutes",
				req.StartTime, dateStr, service.DurationMinutes)
			return ErrSlotNotAvailable
		}

		reservation := &domain.Reservation{
			CustomerName:    req.CustomerName,
			CustomerEmail:   req.CustomerEmail,
			CustomerPhone:   req.CustomerPhone,
			ServiceID:       service.ID,
			AppointmentDate: date,
			AppointmentTime: req.StartTime,
			Status:          domain.StatusPending,
			Notes:           req.Notes,
			// Денормализация данных услуги
			TotalPrice:      service.Price,
			ServiceName:     service.Name,
			ServiceDuration: &service.DurationMinutes,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная запись на тот же день победила
		if errors.Is(err, txmanager.ErrSerialization) {
			uc.logger.Warn("CreateReservation: serialization conflict on %s %s", dateStr, req.StartTime)
			return nil, ErrSlotNotAvailable
		}
		if errors.Is(err, txmanager.ErrTransaction) {
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		return nil, err
	}

	// 5. Кэш дня устарел
	if err := uc.cache.Invalidate(ctx, date); err != nil {
		uc.logger.Warn("CreateReservation: failed to invalidate slots cache for %s: %v", dateStr, err)
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%s", result.ID)

	return &Response{
		ID:              result.ID,
		CustomerName:    result.CustomerName,
		CustomerEmail:   result.CustomerEmail,
		CustomerPhone:   result.CustomerPhone,
		ServiceID:       result.ServiceID,
		ServiceName:     result.ServiceName,
		DurationMinutes: service.DurationMinutes,
		Date:            result.AppointmentDate,
		StartTime:       result.AppointmentTime,
		Status:          string(result.Status),
		TotalPrice:      result.TotalPrice,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
	}, nil
}
