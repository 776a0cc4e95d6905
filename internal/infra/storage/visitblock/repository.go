package visitblock

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/psqlbuilder"
)

// visitColumns полный набор колонок таблицы visit_blocks
var visitColumns = []string{
	"id",
	"user_id",
	"property_id",
	"visit_date",
	"start_time",
	"duration_minutes",
	"status",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с визитами
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория визитов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый визит
// Если в контексте передана активная транзакция (через context.Value), использует её.
// Создание визита с проверкой доступности слота должно идти в сериализуемой
// транзакции, иначе возможна гонка с двойным бронированием.
func (r *Repository) Create(ctx context.Context, visit *domain.VisitBlock) (*domain.VisitBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("visit_blocks").
		Columns(
			"user_id",
			"property_id",
			"visit_date",
			"start_time",
			"duration_minutes",
			"status",
			"notes",
		).
		Values(
			visit.UserID,
			visit.PropertyID,
			visit.VisitDate,
			visit.StartTime,
			visit.DurationMinutes,
			visit.Status,
			visit.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&visit.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time

	return visit, nil
}

// GetByID получает визит по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.VisitBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(visitColumns...).
		From("visit_blocks").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	visit, err := scanVisit(row)
	if err == sql.ErrNoRows {
		return nil, ErrVisitNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan visit: %v", ErrScanRow, err)
	}

	return visit, nil
}

// GetByUserID получает список визитов пользователя
// Опционально фильтрует по статусу
func (r *Repository) GetByUserID(ctx context.Context, userID int64, status *domain.VisitStatus) ([]*domain.VisitBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visit_blocks").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("visit_date DESC, start_time DESC")

	if status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *status})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// GetByPropertyWithFilter получает визиты по объекту с гибкой фильтрацией
// Расчёт доступности использует фильтр {PropertyID, StartDate=EndDate=дата},
// отмененные и no-show визиты при этом не попадают в выборку
func (r *Repository) GetByPropertyWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitBlock, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(visitColumns...).
		From("visit_blocks").
		Where(squirrel.Eq{"property_id": filter.PropertyID}).
		OrderBy("visit_date ASC, start_time ASC")

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"visit_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"visit_date": *filter.EndDate})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if !filter.IncludeInactive {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.InactiveVisitStatuses})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByPropertyWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanVisits(rows)
}

// Cancel отменяет визит с указанием причины
// Отмена возможна только из статусов pending и confirmed
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.VisitStatus, reason string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("visit_blocks").
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": []domain.VisitStatus{domain.VisitPending, domain.VisitConfirmed}}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrCannotCancel
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanVisit(row rowScanner) (*domain.VisitBlock, error) {
	var visit domain.VisitBlock
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&visit.ID,
		&visit.UserID,
		&visit.PropertyID,
		&visit.VisitDate,
		&visit.StartTime,
		&visit.DurationMinutes,
		&visit.Status,
		&visit.Notes,
		&visit.CancellationReason,
		&visit.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	visit.CreatedAt = createdAt.Time
	visit.UpdatedAt = updatedAt.Time
	return &visit, nil
}

func scanVisits(rows *sql.Rows) ([]*domain.VisitBlock, error) {
	visits := make([]*domain.VisitBlock, 0)
	for rows.Next() {
		visit, err := scanVisit(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan visit row: %v", ErrScanRow, err)
		}
		visits = append(visits, visit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate visit rows: %v", ErrScanRow, err)
	}
	return visits, nil
}
