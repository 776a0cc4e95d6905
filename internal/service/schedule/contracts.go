package schedule

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// ScheduleRepository интерфейс репозитория расписаний показов
type ScheduleRepository interface {
	GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error)
	Upsert(ctx context.Context, s *domain.PropertySchedule) (*domain.PropertySchedule, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
