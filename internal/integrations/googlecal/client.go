package googlecal

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/m04kA/REM-AvailabilityService/internal/events"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config конфигурация адаптера Google Calendar
type Config struct {
	CredentialsFile string // путь к service-account JSON, пустой = не настроен
	Production      bool   // в production отсутствие учетных данных - ошибка
}

// Client адаптер занятых интервалов Google Calendar через FreeBusy API
type Client struct {
	svc        *calendar.Service
	production bool
	log        Logger
}

// NewClient создает новый адаптер Google Calendar
// Без учетных данных вне production возвращает неконфигурированный клиент,
// который отдает пустые интервалы. В production отсутствие учетных данных
// приводит к ErrNotConfigured при старте.
func NewClient(ctx context.Context, cfg Config, log Logger) (*Client, error) {
	if cfg.CredentialsFile == "" {
		if cfg.Production {
			return nil, ErrNotConfigured
		}
		log.Warn("GoogleCal: credentials are not configured, adapter will return no busy intervals")
		return &Client{production: cfg.Production, log: log}, nil
	}

	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(cfg.CredentialsFile),
		option.WithScopes(calendar.CalendarReadonlyScope),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create calendar service: %v", ErrFetch, err)
	}

	return &Client{svc: svc, production: cfg.Production, log: log}, nil
}

// GetBusyIntervals возвращает занятые интервалы календаря calendarID на дату date
// Запрос покрывает сутки [00:00, 23:59:59] UTC указанной даты.
// Для неконфигурированного клиента вне production возвращается пустой список.
func (c *Client) GetBusyIntervals(ctx context.Context, calendarID string, date time.Time) ([]events.RawRecord, error) {
	if c.svc == nil {
		if c.production {
			return nil, ErrNotConfigured
		}
		c.log.Info("GoogleCal: not configured, returning no busy intervals for calendar=%s", calendarID)
		return []events.RawRecord{}, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	req := &calendar.FreeBusyRequest{
		TimeMin: dayStart.Format(time.RFC3339),
		TimeMax: dayEnd.Format(time.RFC3339),
		Items:   []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := c.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: calendar=%s: %v", ErrFetch, calendarID, err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		return nil, fmt.Errorf("%w: calendar %s missing in freebusy response", ErrInvalidResponse, calendarID)
	}
	if len(cal.Errors) > 0 {
		return nil, fmt.Errorf("%w: calendar=%s: %s", ErrFetch, calendarID, cal.Errors[0].Reason)
	}

	records := make([]events.RawRecord, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		start, err := time.Parse(time.RFC3339, period.Start)
		if err != nil {
			c.log.Warn("GoogleCal: skipping busy period with invalid start %q: %v", period.Start, err)
			continue
		}
		end, err := time.Parse(time.RFC3339, period.End)
		if err != nil {
			c.log.Warn("GoogleCal: skipping busy period with invalid end %q: %v", period.End, err)
			continue
		}

		records = append(records, events.RawRecord{
			Kind: events.KindGoogle,
			Google: &events.GoogleRecord{
				CalendarID: calendarID,
				Start:      start,
				End:        end,
			},
		})
	}

	c.log.Info("GoogleCal: fetched %d busy intervals for calendar=%s, date=%s",
		len(records), calendarID, dayStart.Format("2006-01-02"))
	return records, nil
}
