package domain

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// PropertySchedule расписание показов объекта
// Задает окно видимых часов, длительность слота и привязки внешних календарей
type PropertySchedule struct {
	ID                  int64
	PropertyID          int64
	VisibleFrom         types.TimeString
	VisibleTo           types.TimeString
	SlotDurationMinutes int
	GoogleCalendarID    *string // NULL = календарь Google не подключен
	ICSFeedURL          *string // NULL = ICS-фид не подключен
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultPropertySchedule возвращает расписание по умолчанию для объектов
// без индивидуальной конфигурации
func DefaultPropertySchedule(propertyID int64) *PropertySchedule {
	return &PropertySchedule{
		PropertyID:          propertyID,
		VisibleFrom:         types.TimeString(DefaultVisibleHoursStart),
		VisibleTo:           types.TimeString(DefaultVisibleHoursEnd),
		SlotDurationMinutes: DefaultSlotDurationMinutes,
	}
}

// HasGoogleCalendar возвращает true, если к объекту привязан календарь Google
func (s *PropertySchedule) HasGoogleCalendar() bool {
	return s.GoogleCalendarID != nil && *s.GoogleCalendarID != ""
}

// HasICSFeed возвращает true, если к объекту привязан ICS-фид
func (s *PropertySchedule) HasICSFeed() bool {
	return s.ICSFeedURL != nil && *s.ICSFeedURL != ""
}

// VisibleWindow разворачивает видимые часы в абсолютный интервал на дату date
// в таймзоне loc
func (s *PropertySchedule) VisibleWindow(date time.Time, loc *time.Location) (TimeRange, error) {
	start, err := s.VisibleFrom.ResolveOn(date, loc)
	if err != nil {
		return TimeRange{}, err
	}
	end, err := s.VisibleTo.ResolveOn(date, loc)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{Start: start, End: end}, nil
}
