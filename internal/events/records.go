package events

import "time"

// RecordKind тип сырой записи календарного источника
type RecordKind string

const (
	KindInternal RecordKind = "internal"
	KindGoogle   RecordKind = "google"
	KindICS      RecordKind = "ics"
)

// RawRecord сырая запись на границе адаптера
// Размеченное объединение: заполнено ровно одно из полей Google/ICS/Internal
// в соответствии с Kind. Нормализатор обрабатывает каждый вариант явно.
type RawRecord struct {
	Kind     RecordKind
	Google   *GoogleRecord
	ICS      *ICSRecord
	Internal *InternalRecord
}

// GoogleRecord busy-интервал из FreeBusy ответа Google Calendar
// FreeBusy не содержит идентификаторов и названий событий
type GoogleRecord struct {
	CalendarID string
	Start      time.Time
	End        time.Time
}

// ICSRecord событие из ICS-фида
type ICSRecord struct {
	FeedURL     string
	UID         string
	Summary     string
	Start       time.Time
	End         time.Time
	Transparent bool // TRANSP:TRANSPARENT - событие не занимает время
}

// InternalRecord внутренний визит, развернутый в абсолютный интервал
type InternalRecord struct {
	VisitID int64
	Title   string
	Start   time.Time
	End     time.Time
}
