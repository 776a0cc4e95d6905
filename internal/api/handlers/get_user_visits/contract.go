package get_user_visits

import (
	"context"

	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
)

type VisitService interface {
	GetUserVisits(ctx context.Context, req *models.GetUserVisitsRequest) (*models.VisitListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
