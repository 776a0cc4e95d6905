package create_visit

import (
	"context"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	Create(ctx context.Context, visit *domain.VisitBlock) (*domain.VisitBlock, error)
	GetByPropertyWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitBlock, error)
}

// ScheduleRepository интерфейс репозитория расписаний показов
type ScheduleRepository interface {
	GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
