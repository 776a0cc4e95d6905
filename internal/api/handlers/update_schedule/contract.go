package update_schedule

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/schedule/models"
)

type ScheduleService interface {
	Update(ctx context.Context, propertyID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
