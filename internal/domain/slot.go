package domain

import "time"

// BlockReason причина состояния слота
type BlockReason string

const (
	// ReasonOpen слот свободен, конфликтов нет
	ReasonOpen BlockReason = "open"

	// ReasonBlockedInternal слот занят внутренним визитом
	// Внутренние блокировки приоритетны при классификации конфликта
	ReasonBlockedInternal BlockReason = "blocked_internal"

	// ReasonBlockedExternal слот занят событием внешнего календаря (Google, ICS)
	ReasonBlockedExternal BlockReason = "blocked_external"
)

// AvailabilitySlot слот видимых часов с признаком доступности
// Создается заново при каждом расчёте и не мутируется после создания
type AvailabilitySlot struct {
	Start     time.Time
	End       time.Time
	Available bool
	Reason    BlockReason
	Source    EventSource // источник первого конфликта, пустой для свободного слота
}

// Range возвращает интервал слота
func (s AvailabilitySlot) Range() TimeRange {
	return TimeRange{Start: s.Start, End: s.End}
}

// NormalizedCalendar результат расчёта доступности на один календарный день
// Слоты упорядочены по возрастанию начала, непрерывны, не пересекаются
// и точно покрывают окно видимых часов (остаток короче одного слота отброшен)
type NormalizedCalendar struct {
	Date  time.Time
	Slots []AvailabilitySlot
}

// AvailableCount возвращает количество свободных слотов
func (c *NormalizedCalendar) AvailableCount() int {
	count := 0
	for _, s := range c.Slots {
		if s.Available {
			count++
		}
	}
	return count
}
