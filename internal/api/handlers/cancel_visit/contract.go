package cancel_visit

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
)

type VisitService interface {
	Cancel(ctx context.Context, visitID int64, req *models.CancelVisitRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
