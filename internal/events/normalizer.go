package events

import (
	"fmt"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}

// Normalizer приводит сырые записи разных источников к domain.CalendarEvent
type Normalizer struct {
	logger Logger
}

// NewNormalizer создает новый нормализатор
func NewNormalizer(logger Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize конвертирует сырые записи в канонические события
//
// Контракт:
// - каждое событие на выходе имеет busy = true, если источник явно не пометил его свободным;
// - start < end у каждого события, записи с пустыми или перевернутыми границами
//   отбрасываются с логированием, но без ошибки - одна битая запись источника
//   не должна сорвать расчёт доступности на весь день;
// - поле Source всегда заполнено, чтобы конфликт можно было объяснить в слоте.
func (n *Normalizer) Normalize(records []RawRecord) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0, len(records))

	for _, rec := range records {
		ev, ok := n.normalizeOne(rec)
		if !ok {
			continue
		}
		events = append(events, ev)
	}

	return events
}

func (n *Normalizer) normalizeOne(rec RawRecord) (domain.CalendarEvent, bool) {
	var ev domain.CalendarEvent

	switch rec.Kind {
	case KindInternal:
		if rec.Internal == nil {
			n.logger.Warn("Normalize: internal record without payload, dropped")
			return ev, false
		}
		ev = domain.CalendarEvent{
			ID:     fmt.Sprintf("visit-%d", rec.Internal.VisitID),
			Title:  rec.Internal.Title,
			Start:  rec.Internal.Start,
			End:    rec.Internal.End,
			Busy:   true,
			Source: domain.SourceInternal,
		}

	case KindGoogle:
		if rec.Google == nil {
			n.logger.Warn("Normalize: google record without payload, dropped")
			return ev, false
		}
		ev = domain.CalendarEvent{
			ID:     fmt.Sprintf("gcal-%s-%d", rec.Google.CalendarID, rec.Google.Start.Unix()),
			Start:  rec.Google.Start,
			End:    rec.Google.End,
			Busy:   true,
			Source: domain.GoogleSource(rec.Google.CalendarID),
		}

	case KindICS:
		if rec.ICS == nil {
			n.logger.Warn("Normalize: ics record without payload, dropped")
			return ev, false
		}
		ev = domain.CalendarEvent{
			ID:     rec.ICS.UID,
			Title:  rec.ICS.Summary,
			Start:  rec.ICS.Start,
			End:    rec.ICS.End,
			Busy:   !rec.ICS.Transparent,
			Source: domain.ICSSource(rec.ICS.FeedURL),
		}

	default:
		n.logger.Warn("Normalize: unknown record kind %q, dropped", rec.Kind)
		return ev, false
	}

	if !ev.IsWellFormed() {
		n.logger.Warn("Normalize: malformed record from %s (start=%v, end=%v), dropped",
			ev.Source, ev.Start, ev.End)
		return domain.CalendarEvent{}, false
	}

	return ev, true
}
