package domain

import (
	"time"

	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// VisitStatus статус визита (просмотра объекта)
type VisitStatus string

const (
	VisitPending          VisitStatus = "pending"
	VisitConfirmed        VisitStatus = "confirmed"
	VisitCompleted        VisitStatus = "completed"
	VisitCancelledByUser  VisitStatus = "cancelled_by_user"
	VisitCancelledByAgent VisitStatus = "cancelled_by_agent"
	VisitNoShow           VisitStatus = "no_show"
)

// VisitBlock запись о запланированном визите (просмотре объекта)
// Активные визиты формируют внутренние блокировки календаря доступности
type VisitBlock struct {
	ID              int64
	UserID          int64
	PropertyID      int64
	VisitDate       time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          VisitStatus
	Notes           *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если визит блокирует свой слот в календаре доступности
func (v *VisitBlock) IsActive() bool {
	return v.Status != VisitCancelledByUser &&
		v.Status != VisitCancelledByAgent &&
		v.Status != VisitNoShow
}

// CanBeCancelled возвращает true, если визит можно отменить
func (v *VisitBlock) CanBeCancelled() bool {
	return v.Status == VisitPending || v.Status == VisitConfirmed
}

// Range разворачивает дату и локальное время визита в абсолютный интервал
// в таймзоне loc
func (v *VisitBlock) Range(loc *time.Location) (TimeRange, error) {
	start, err := v.StartTime.ResolveOn(v.VisitDate, loc)
	if err != nil {
		return TimeRange{}, err
	}
	return TimeRange{
		Start: start,
		End:   start.Add(time.Duration(v.DurationMinutes) * time.Minute),
	}, nil
}

// VisitsFilter фильтр для выборки визитов по объекту
type VisitsFilter struct {
	PropertyID      int64        // Обязательный параметр
	StartDate       *time.Time   // Начало периода (опционально)
	EndDate         *time.Time   // Конец периода (опционально)
	Status          *VisitStatus // Фильтр по статусу (опционально)
	IncludeInactive bool         // Включать ли отмененные и no-show визиты
}
