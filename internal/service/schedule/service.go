package schedule

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/REM-AvailabilityService/internal/service/schedule/models"
)

// Service сервис для работы с расписаниями показов
type Service struct {
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса расписаний
func NewService(scheduleRepo ScheduleRepository, logger Logger) *Service {
	return &Service{
		scheduleRepo: scheduleRepo,
		logger:       logger,
	}
}

// GetByProperty получает расписание показов объекта
// Если индивидуальное расписание не задано, возвращает дефолтное с пометкой isDefault
func (s *Service) GetByProperty(ctx context.Context, propertyID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("GetByProperty: fetching schedule for property=%d", propertyID)

	sched, err := s.scheduleRepo.GetByProperty(ctx, propertyID)
	if err != nil {
		if errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			s.logger.Info("GetByProperty: no schedule for property=%d, returning defaults", propertyID)
			return models.FromDomainSchedule(domain.DefaultPropertySchedule(propertyID), true), nil
		}
		s.logger.Error("GetByProperty: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: GetByProperty - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByProperty: successfully fetched schedule id=%d for property=%d", sched.ID, propertyID)
	return models.FromDomainSchedule(sched, false), nil
}

// Update создает или обновляет расписание показов объекта
func (s *Service) Update(ctx context.Context, propertyID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for property=%d by user=%d", propertyID, req.UserID)

	sched, err := req.ToDomainSchedule(propertyID)
	if err != nil {
		s.logger.Warn("Update: invalid visible hours for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := validateSchedule(sched); err != nil {
		s.logger.Warn("Update: validation failed for property=%d: %v", propertyID, err)
		return nil, err
	}

	updated, err := s.scheduleRepo.Upsert(ctx, sched)
	if err != nil {
		s.logger.Error("Update: repository error for property=%d: %v", propertyID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated schedule id=%d for property=%d", updated.ID, propertyID)
	return models.FromDomainSchedule(updated, false), nil
}

// validateSchedule проверяет бизнес-правила расписания
func validateSchedule(sched *domain.PropertySchedule) error {
	if !sched.VisibleFrom.IsBefore(sched.VisibleTo) {
		return fmt.Errorf("%w: visibleFrom must be before visibleTo", ErrInvalidInput)
	}

	if sched.SlotDurationMinutes < domain.MinSlotDurationMinutes ||
		sched.SlotDurationMinutes > domain.MaxSlotDurationMinutes {
		return fmt.Errorf("%w: slot duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinSlotDurationMinutes, domain.MaxSlotDurationMinutes)
	}

	if sched.ICSFeedURL != nil && *sched.ICSFeedURL != "" {
		u, err := url.Parse(*sched.ICSFeedURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			return fmt.Errorf("%w: icsFeedUrl must be a valid http(s) URL", ErrInvalidInput)
		}
	}

	return nil
}
