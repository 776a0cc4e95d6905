package create_visit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
)

// UseCase use case записи на просмотр объекта
type UseCase struct {
	visitRepo    VisitRepository
	scheduleRepo ScheduleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	visitRepo VisitRepository,
	scheduleRepo ScheduleRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		visitRepo:    visitRepo,
		scheduleRepo: scheduleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute выполняет use case создания визита
// Проверка занятости слота и вставка идут в сериализуемой транзакции,
// чтобы исключить гонку с двойным бронированием одного слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateVisit: user=%d, property=%d, date=%s, time=%s",
		req.UserID, req.PropertyID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateVisit: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	if err := validateDateNotInPast(req.Date, now); err != nil {
		uc.logger.Warn("CreateVisit: date validation failed: %v", err)
		return nil, err
	}

	var result *domain.VisitBlock

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем расписание показов объекта
		sched, err := uc.scheduleRepo.GetByProperty(txCtx, req.PropertyID)
		if err != nil && !errors.Is(err, scheduleRepo.ErrScheduleNotFound) {
			uc.logger.Error("CreateVisit: failed to get schedule: %v", err)
			return fmt.Errorf("%w: failed to get schedule: %v", ErrInternal, err)
		}
		if sched == nil {
			sched = domain.DefaultPropertySchedule(req.PropertyID)
			uc.logger.Info("CreateVisit: using default schedule for property=%d", req.PropertyID)
		}

		// 3.2. Проверяем, что время попадает в сетку слотов
		if err := validateSlotInSchedule(req.StartTime, sched); err != nil {
			uc.logger.Warn("CreateVisit: slot validation failed: %v", err)
			return err
		}

		// 3.3. Проверяем, что слот не занят другим активным визитом
		filter := domain.VisitsFilter{
			PropertyID:      req.PropertyID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false,
		}
		existing, err := uc.visitRepo.GetByPropertyWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to get existing visits: %v", err)
			return fmt.Errorf("%w: failed to get existing visits: %v", ErrInternal, err)
		}

		requested := &domain.VisitBlock{
			VisitDate:       req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: sched.SlotDurationMinutes,
		}
		requestedRange, err := requested.Range(uc.location)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInternal, err)
		}

		for _, v := range existing {
			r, err := v.Range(uc.location)
			if err != nil {
				uc.logger.Warn("CreateVisit: skipping visit id=%d with invalid time: %v", v.ID, err)
				continue
			}
			if requestedRange.Overlaps(r) {
				uc.logger.Warn("CreateVisit: slot %s on %s already booked by visit id=%d",
					req.StartTime, req.Date.Format(domain.DateFormat), v.ID)
				return ErrSlotAlreadyBooked
			}
		}

		// 3.4. Создаем визит
		visit := &domain.VisitBlock{
			UserID:          req.UserID,
			PropertyID:      req.PropertyID,
			VisitDate:       req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: sched.SlotDurationMinutes,
			Status:          domain.VisitPending,
			Notes:           req.Notes,
		}

		result, err = uc.visitRepo.Create(txCtx, visit)
		if err != nil {
			uc.logger.Error("CreateVisit: failed to create visit: %v", err)
			return fmt.Errorf("%w: failed to create visit: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateVisit: visit id=%d created for user=%d, property=%d",
		result.ID, req.UserID, req.PropertyID)

	return &Response{Visit: result}, nil
}
