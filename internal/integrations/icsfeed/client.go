package icsfeed

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/events"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client адаптер занятых интервалов из ICS-фида
type Client struct {
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый адаптер ICS-фидов
func NewClient(timeout time.Duration, log Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// GetBusyIntervals загружает фид и возвращает события, пересекающие сутки
// [00:00, 24:00) UTC указанной даты
//
// Битые VEVENT (без валидных DTSTART/DTEND) пропускаются с логированием,
// остальной фид обрабатывается. События с TRANSP:TRANSPARENT помечаются
// свободными и не блокируют слоты.
func (c *Client) GetBusyIntervals(ctx context.Context, feedURL string, date time.Time) ([]events.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "text/calendar")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFetch, resp.StatusCode)
	}

	cal, err := ical.ParseCalendar(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	day := domain.TimeRange{Start: dayStart, End: dayStart.Add(24 * time.Hour)}

	records := make([]events.RawRecord, 0)
	for _, ve := range cal.Events() {
		rec, ok := c.parseVEvent(feedURL, ve, day)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	c.log.Info("ICSFeed: fetched %d events for date=%s, url=%s",
		len(records), dayStart.Format("2006-01-02"), feedURL)
	return records, nil
}

func (c *Client) parseVEvent(feedURL string, ve *ical.VEvent, day domain.TimeRange) (events.RawRecord, bool) {
	var rec events.RawRecord

	start, err := ve.GetStartAt()
	if err != nil {
		c.log.Warn("ICSFeed: skipping event without valid DTSTART: %v", err)
		return rec, false
	}
	end, err := ve.GetEndAt()
	if err != nil {
		c.log.Warn("ICSFeed: skipping event without valid DTEND: %v", err)
		return rec, false
	}

	// События вне запрашиваемых суток не интересны
	if !day.Overlaps(domain.TimeRange{Start: start, End: end}) {
		return rec, false
	}

	uid := ""
	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		uid = p.Value
	}
	summary := ""
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		summary = p.Value
	}

	transparent := false
	if p := ve.GetProperty(ical.ComponentProperty("TRANSP")); p != nil {
		transparent = strings.EqualFold(strings.TrimSpace(p.Value), "TRANSPARENT")
	}

	return events.RawRecord{
		Kind: events.KindICS,
		ICS: &events.ICSRecord{
			FeedURL:     feedURL,
			UID:         uid,
			Summary:     summary,
			Start:       start,
			End:         end,
			Transparent: transparent,
		},
	}, true
}
