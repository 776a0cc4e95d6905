package visits

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	visitRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/visitblock"
	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
)

// Service сервис для работы с визитами
type Service struct {
	visitRepo VisitRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса визитов
func NewService(visitRepo VisitRepository, logger Logger) *Service {
	return &Service{
		visitRepo: visitRepo,
		logger:    logger,
	}
}

// GetByID получает визит по ID
// Пользователь может видеть только свой визит
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.VisitResponse, error) {
	s.logger.Info("GetByID: fetching visit id=%d for user=%d", id, userID)

	visit, err := s.visitRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("GetByID: visit id=%d not found", id)
			return nil, ErrVisitNotFound
		}
		s.logger.Error("GetByID: repository error for visit id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if visit.UserID != userID {
		s.logger.Warn("GetByID: access denied for user=%d to visit id=%d", userID, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched visit id=%d", id)
	return models.FromDomainVisit(visit), nil
}

// GetUserVisits получает историю визитов пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserVisits(ctx context.Context, req *models.GetUserVisitsRequest) (*models.VisitListResponse, error) {
	s.logger.Info("GetUserVisits: fetching visits for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.VisitStatus
	if req.Status != nil {
		status, err := models.ToDomainVisitStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserVisits: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	visits, err := s.visitRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserVisits: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserVisits - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserVisits: successfully fetched %d visits for user=%d", len(visits), req.UserID)
	return models.FromDomainVisitList(visits), nil
}

// Cancel отменяет визит по инициативе пользователя
// Отменить можно только свой визит в статусе pending или confirmed
func (s *Service) Cancel(ctx context.Context, visitID int64, req *models.CancelVisitRequest) error {
	s.logger.Info("Cancel: cancelling visit id=%d by user=%d", visitID, req.UserID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for visit id=%d", visitID)
		return fmt.Errorf("%w: cancellation reason too long", ErrInvalidInput)
	}

	visit, err := s.visitRepo.GetByID(ctx, visitID)
	if err != nil {
		if errors.Is(err, visitRepo.ErrVisitNotFound) {
			s.logger.Warn("Cancel: visit id=%d not found", visitID)
			return ErrVisitNotFound
		}
		s.logger.Error("Cancel: repository error for visit id=%d: %v", visitID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if visit.UserID != req.UserID {
		s.logger.Warn("Cancel: access denied for user=%d to visit id=%d", req.UserID, visitID)
		return ErrAccessDenied
	}

	if !visit.CanBeCancelled() {
		s.logger.Warn("Cancel: visit id=%d in status=%s cannot be cancelled", visitID, visit.Status)
		return ErrCannotCancel
	}

	if err := s.visitRepo.Cancel(ctx, visitID, domain.VisitCancelledByUser, req.CancellationReason); err != nil {
		if errors.Is(err, visitRepo.ErrCannotCancel) {
			s.logger.Warn("Cancel: visit id=%d cannot be cancelled (already transitioned)", visitID)
			return ErrCannotCancel
		}
		s.logger.Error("Cancel: repository error for visit id=%d: %v", visitID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled visit id=%d", visitID)
	return nil
}
