package visits

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.VisitBlock, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.VisitStatus) ([]*domain.VisitBlock, error)
	Cancel(ctx context.Context, id int64, status domain.VisitStatus, reason string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
