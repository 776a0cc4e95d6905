package get_availability

import (
	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

// buildSlots размечает слоты окна видимых часов по занятым интервалам
//
// Каждый слот сравнивается с каждым busy-событием по полуоткрытой семантике
// (граничащие интервалы не конфликтуют). Слот недоступен, если есть хотя бы
// одно пересечение. Причина блокировки: внутренний конфликт приоритетнее
// внешнего - внутренние визиты авторитетны и более действенны для оператора,
// разбирающегося, почему слот занят.
//
// Слоты возвращаются в порядке генерации (по возрастанию начала); вызывающая
// сторона не должна их пересортировывать.
func buildSlots(window domain.TimeRange, slotDurationMinutes int, busyEvents []domain.CalendarEvent) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0)

	for slotRange := range window.Slots(slotDurationMinutes) {
		slots = append(slots, markSlot(slotRange, busyEvents))
	}

	return slots
}

// markSlot определяет доступность одного слота
func markSlot(slotRange domain.TimeRange, busyEvents []domain.CalendarEvent) domain.AvailabilitySlot {
	slot := domain.AvailabilitySlot{
		Start:     slotRange.Start,
		End:       slotRange.End,
		Available: true,
		Reason:    domain.ReasonOpen,
	}

	var externalConflict *domain.CalendarEvent

	for i := range busyEvents {
		ev := busyEvents[i]
		// События, явно помеченные свободными, не блокируют слот
		if !ev.Busy {
			continue
		}
		if !slotRange.Overlaps(ev.Range()) {
			continue
		}

		// Внутренний конфликт - окончательная классификация, дальше можно не искать
		if ev.Source.IsInternal() {
			return domain.AvailabilitySlot{
				Start:     slotRange.Start,
				End:       slotRange.End,
				Available: false,
				Reason:    domain.ReasonBlockedInternal,
				Source:    ev.Source,
			}
		}

		if externalConflict == nil {
			externalConflict = &ev
		}
	}

	if externalConflict != nil {
		slot.Available = false
		slot.Reason = domain.ReasonBlockedExternal
		slot.Source = externalConflict.Source
	}

	return slot
}
