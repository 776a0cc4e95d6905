package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/events"
)

// VisitRepository интерфейс репозитория визитов
type VisitRepository interface {
	// GetByPropertyWithFilter получает визиты объекта на дату (внутренние блокировки)
	GetByPropertyWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitBlock, error)
}

// ScheduleRepository интерфейс репозитория расписаний показов
type ScheduleRepository interface {
	GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error)
}

// GoogleCalendarClient интерфейс адаптера Google Calendar
type GoogleCalendarClient interface {
	GetBusyIntervals(ctx context.Context, calendarID string, date time.Time) ([]events.RawRecord, error)
}

// ICSFeedClient интерфейс адаптера ICS-фидов
type ICSFeedClient interface {
	GetBusyIntervals(ctx context.Context, feedURL string, date time.Time) ([]events.RawRecord, error)
}

// EventNormalizer интерфейс нормализатора календарных событий
type EventNormalizer interface {
	Normalize(records []events.RawRecord) []domain.CalendarEvent
}

// AdapterMetrics интерфейс метрик обращений к внешним календарным источникам
// nil, если сбор метрик выключен
type AdapterMetrics interface {
	ObserveAdapterRequest(adapter, result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
