package create_visit

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
	createVisit "github.com/m04kA/REM-AvailabilityService/internal/usecase/create_visit"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// CreateVisitRequest HTTP request model
type CreateVisitRequest struct {
	PropertyID int64   `json:"propertyId"`
	VisitDate  string  `json:"visitDate"` // "2026-09-15"
	StartTime  string  `json:"startTime"` // "10:00"
	Notes      *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *CreateVisitRequest) ToUseCaseRequest(userID int64) (*createVisit.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.VisitDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createVisit.Request{
		UserID:     userID,
		PropertyID: r.PropertyID,
		Date:       date,
		StartTime:  startTime,
		Notes:      r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createVisit.Response) *models.VisitResponse {
	return models.FromDomainVisit(resp.Visit)
}
