package models

import (
	"errors"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid visit status")
)

// Request модели

// CancelVisitRequest запрос на отмену визита
type CancelVisitRequest struct {
	UserID             int64  `json:"userId"`
	CancellationReason string `json:"cancellationReason"`
}

// GetUserVisitsRequest запрос на получение визитов пользователя
type GetUserVisitsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// VisitResponse ответ с данными визита
type VisitResponse struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	PropertyID      int64  `json:"propertyId"`
	VisitDate       string `json:"visitDate"` // "2026-09-15"
	StartTime       string `json:"startTime"` // "10:00"
	DurationMinutes int    `json:"durationMinutes"`
	Status          string `json:"status"`

	Notes              *string `json:"notes,omitempty"`
	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// VisitListResponse ответ со списком визитов
type VisitListResponse struct {
	Visits []VisitResponse `json:"visits"`
}

// FromDomainVisit конвертирует domain модель в response
func FromDomainVisit(v *domain.VisitBlock) *VisitResponse {
	resp := &VisitResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		PropertyID:         v.PropertyID,
		VisitDate:          v.VisitDate.Format(domain.DateFormat),
		StartTime:          v.StartTime.String(),
		DurationMinutes:    v.DurationMinutes,
		Status:             string(v.Status),
		Notes:              v.Notes,
		CancellationReason: v.CancellationReason,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}

	if v.CancelledAt != nil {
		cancelled := v.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainVisitList конвертирует список domain моделей в response
func FromDomainVisitList(visits []*domain.VisitBlock) *VisitListResponse {
	result := make([]VisitResponse, len(visits))
	for i, v := range visits {
		result[i] = *FromDomainVisit(v)
	}
	return &VisitListResponse{Visits: result}
}

// ToDomainVisitStatus конвертирует строку в domain статус с валидацией
func ToDomainVisitStatus(s string) (domain.VisitStatus, error) {
	status := domain.VisitStatus(s)
	switch status {
	case domain.VisitPending,
		domain.VisitConfirmed,
		domain.VisitCompleted,
		domain.VisitCancelledByUser,
		domain.VisitCancelledByAgent,
		domain.VisitNoShow:
		return status, nil
	default:
		return "", ErrInvalidStatus
	}
}
