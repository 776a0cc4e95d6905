package models

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// Request модели

// UpdateScheduleRequest запрос на обновление расписания показов объекта
type UpdateScheduleRequest struct {
	UserID              int64   `json:"userId"`
	VisibleFrom         string  `json:"visibleFrom"` // "09:00"
	VisibleTo           string  `json:"visibleTo"`   // "18:00"
	SlotDurationMinutes int     `json:"slotDurationMinutes"`
	GoogleCalendarID    *string `json:"googleCalendarId,omitempty"`
	ICSFeedURL          *string `json:"icsFeedUrl,omitempty"`
}

// ToDomainSchedule конвертирует request в domain модель с валидацией времени
func (r *UpdateScheduleRequest) ToDomainSchedule(propertyID int64) (*domain.PropertySchedule, error) {
	from, err := types.NewTimeStringFromString(r.VisibleFrom)
	if err != nil {
		return nil, err
	}
	to, err := types.NewTimeStringFromString(r.VisibleTo)
	if err != nil {
		return nil, err
	}

	return &domain.PropertySchedule{
		PropertyID:          propertyID,
		VisibleFrom:         from,
		VisibleTo:           to,
		SlotDurationMinutes: r.SlotDurationMinutes,
		GoogleCalendarID:    r.GoogleCalendarID,
		ICSFeedURL:          r.ICSFeedURL,
	}, nil
}

// Response модели

// ScheduleResponse ответ с расписанием показов объекта
type ScheduleResponse struct {
	ID                  int64     `json:"id,omitempty"`
	PropertyID          int64     `json:"propertyId"`
	VisibleFrom         string    `json:"visibleFrom"`
	VisibleTo           string    `json:"visibleTo"`
	SlotDurationMinutes int       `json:"slotDurationMinutes"`
	GoogleCalendarID    *string   `json:"googleCalendarId,omitempty"`
	ICSFeedURL          *string   `json:"icsFeedUrl,omitempty"`
	IsDefault           bool      `json:"isDefault"` // true, если расписание не настраивалось
	CreatedAt           time.Time `json:"createdAt,omitempty"`
	UpdatedAt           time.Time `json:"updatedAt,omitempty"`
}

// FromDomainSchedule конвертирует domain модель в response
func FromDomainSchedule(s *domain.PropertySchedule, isDefault bool) *ScheduleResponse {
	return &ScheduleResponse{
		ID:                  s.ID,
		PropertyID:          s.PropertyID,
		VisibleFrom:         s.VisibleFrom.String(),
		VisibleTo:           s.VisibleTo.String(),
		SlotDurationMinutes: s.SlotDurationMinutes,
		GoogleCalendarID:    s.GoogleCalendarID,
		ICSFeedURL:          s.ICSFeedURL,
		IsDefault:           isDefault,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           s.UpdatedAt,
	}
}
