package get_schedule

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	GetByProperty(ctx context.Context, propertyID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
