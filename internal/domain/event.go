package domain

import (
	"fmt"
	"strings"
	"time"
)

// EventSource происхождение календарного события
// Формат: "internal", "google:<calendarId>", "ics:<url>"
// Используется только для диагностики и классификации причины блокировки слота,
// на сам расчёт доступности не влияет.
type EventSource string

// SourceInternal источник внутренних блокировок (визиты из нашей БД)
const SourceInternal EventSource = "internal"

// GoogleSource возвращает источник для календаря Google
func GoogleSource(calendarID string) EventSource {
	return EventSource(fmt.Sprintf("google:%s", calendarID))
}

// ICSSource возвращает источник для ICS-фида
func ICSSource(feedURL string) EventSource {
	return EventSource(fmt.Sprintf("ics:%s", feedURL))
}

// IsInternal возвращает true для внутреннего источника
func (s EventSource) IsInternal() bool {
	return s == SourceInternal
}

// IsExternal возвращает true для внешнего источника (Google, ICS)
func (s EventSource) IsExternal() bool {
	return strings.HasPrefix(string(s), "google:") || strings.HasPrefix(string(s), "ics:")
}

// CalendarEvent каноническое представление события из любого календарного источника
// Создается адаптерами в момент выборки, неизменяемо, живет в рамках одного
// расчёта доступности и не персистится
type CalendarEvent struct {
	ID     string
	Title  string
	Start  time.Time
	End    time.Time
	Busy   bool
	Source EventSource
}

// Range возвращает интервал события
func (e CalendarEvent) Range() TimeRange {
	return TimeRange{Start: e.Start, End: e.End}
}

// IsWellFormed возвращает true, если у события валидные границы (start < end)
func (e CalendarEvent) IsWellFormed() bool {
	return !e.Start.IsZero() && !e.End.IsZero() && e.Start.Before(e.End)
}
