package workinghours

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-NailStudio/internal/domain"
	"github.com/m04kA/SMC-NailStudio/internal/service/workinghours/models"
	"github.com/m04kA/SMC-NailStudio/pkg/types"
)

// Service сервис для работы с расписанием салона
type Service struct {
	repo   WorkingHoursRepository
	cache  SlotCache
	logger Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(repo WorkingHoursRepository, cache SlotCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// GetWeek возвращает расписание с понедельника по субботу.
// Дни без записи в БД отдаются с окном по умолчанию.
// Публичный метод - доступен всем
func (s *Service) GetWeek(ctx context.Context) (*models.WeekResponse, error) {
	days, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetWeek: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetWeek - repository error: %v", ErrInternal, err)
	}

	byDay := make(map[domain.Weekday]*domain.WorkingDay, len(days))
	for _, d := range days {
		byDay[d.DayOfWeek] = d
	}

	resp := &models.WeekResponse{Days: make([]models.WorkingDayResponse, 0, len(domain.AllWeekdays))}
	for _, day := range domain.AllWeekdays {
		if d, ok := byDay[day]; ok {
			resp.Days = append(resp.Days, models.FromDomainWorkingDay(d))
			continue
		}
		resp.Days = append(resp.Days, models.DefaultWorkingDay(day))
	}

	return resp, nil
}

// UpdateDay сохраняет настройку дня.
// Выключенный день хранится явной записью is_working=false.
func (s *Service) UpdateDay(ctx context.Context, dayOfWeek int, req *models.UpdateDayRequest) (*models.WorkingDayResponse, error) {
	s.logger.Info("UpdateDay: updating day=%d, isWorking=%t", dayOfWeek, req.IsWorking)

	day, err := domain.ParseWeekday(dayOfWeek)
	if err != nil {
		s.logger.Warn("UpdateDay: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidDay, err)
	}

	workingDay := &domain.WorkingDay{DayOfWeek: day, IsWorking: req.IsWorking}

	if req.IsWorking {
		start, end, err := parseWindow(req.StartTime, req.EndTime)
		if err != nil {
			s.logger.Warn("UpdateDay: validation failed for day=%d: %v", dayOfWeek, err)
			return nil, err
		}
		workingDay.StartTime, workingDay.EndTime = &start, &end
	}

	saved, err := s.repo.Upsert(ctx, workingDay)
	if err != nil {
		s.logger.Error("UpdateDay: repository error for day=%d: %v", dayOfWeek, err)
		return nil, fmt.Errorf("%w: UpdateDay - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.InvalidateAll(ctx); err != nil {
		s.logger.Warn("UpdateDay: failed to invalidate slots cache: %v", err)
	}

	s.logger.Info("UpdateDay: successfully updated day=%s", day)
	resp := models.FromDomainWorkingDay(saved)
	return &resp, nil
}

func parseWindow(startRaw, endRaw *string) (types.TimeString, types.TimeString, error) {
	if startRaw == nil || endRaw == nil {
		return "", "", fmt.Errorf("%w: startTime and endTime are required for a working day", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(*startRaw)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}
	end, err := types.NewTimeStringFromString(*endRaw)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return "", "", fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	return start, end, nil
}
