package schedule

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/psqlbuilder"
)

// Repository репозиторий расписаний показов объектов
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByProperty получает расписание показов объекта
func (r *Repository) GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"property_id",
		"visible_from",
		"visible_to",
		"slot_duration_minutes",
		"google_calendar_id",
		"ics_feed_url",
		"created_at",
		"updated_at",
	).
		From("property_schedules").
		Where(squirrel.Eq{"property_id": propertyID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProperty - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.PropertySchedule
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.PropertyID,
		&s.VisibleFrom,
		&s.VisibleTo,
		&s.SlotDurationMinutes,
		&s.GoogleCalendarID,
		&s.ICSFeedURL,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByProperty - scan schedule: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return &s, nil
}

// Upsert создает или обновляет расписание показов объекта
// Уникальность обеспечивается констрейнтом на property_id
func (r *Repository) Upsert(ctx context.Context, s *domain.PropertySchedule) (*domain.PropertySchedule, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("property_schedules").
		Columns(
			"property_id",
			"visible_from",
			"visible_to",
			"slot_duration_minutes",
			"google_calendar_id",
			"ics_feed_url",
		).
		Values(
			s.PropertyID,
			s.VisibleFrom,
			s.VisibleTo,
			s.SlotDurationMinutes,
			s.GoogleCalendarID,
			s.ICSFeedURL,
		).
		Suffix(`ON CONFLICT (property_id) DO UPDATE SET
			visible_from = EXCLUDED.visible_from,
			visible_to = EXCLUDED.visible_to,
			slot_duration_minutes = EXCLUDED.slot_duration_minutes,
			google_calendar_id = EXCLUDED.google_calendar_id,
			ics_feed_url = EXCLUDED.ics_feed_url,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time
	return s, nil
}
