package domain

// Default configuration values
const (
	DefaultSlotDurationMinutes = 30
	DefaultVisibleHoursStart   = "09:00"
	DefaultVisibleHoursEnd     = "18:00"
)

// Business validation constants
const (
	MinSlotDurationMinutes      = 10
	MaxSlotDurationMinutes      = 240 // 4 часа
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveVisitStatuses список статусов неактивных визитов
// Неактивные визиты не блокируют слоты в расчёте доступности
var InactiveVisitStatuses = []VisitStatus{
	VisitCancelledByUser,
	VisitCancelledByAgent,
	VisitNoShow,
}
