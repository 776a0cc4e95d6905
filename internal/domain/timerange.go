package domain

import (
	"iter"
	"time"
)

// TimeRange абсолютный временной интервал [Start, End)
// Инвариант: Start < End. Интервал нулевой длины не валиден и ни с чем не пересекается.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsValid возвращает true, если Start строго раньше End
func (r TimeRange) IsValid() bool {
	return r.Start.Before(r.End)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов
// Интервалы пересекаются, только если начало одного СТРОГО раньше конца другого
// и наоборот. Граничащие интервалы (конец одного равен началу другого) НЕ пересекаются.
//
// Примеры:
// - [11:30, 12:00) и [11:20, 11:40) → пересекаются
// - [11:30, 12:00) и [11:00, 11:30) → не пересекаются (граничат)
// - [11:30, 12:00) и [12:00, 12:30) → не пересекаются (граничат)
func (r TimeRange) Overlaps(other TimeRange) bool {
	// Вырожденные интервалы ни с чем не пересекаются
	if !r.IsValid() || !other.IsValid() {
		return false
	}
	return r.Start.Before(other.End) && other.Start.Before(r.End)
}

// Duration возвращает длительность интервала
func (r TimeRange) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// Slots возвращает ленивую последовательность слотов фиксированной длительности,
// замощающих интервал слева направо. Последний неполный слот (короче durationMinutes)
// отбрасывается и не эмитится. Последовательность конечна и может итерироваться повторно.
func (r TimeRange) Slots(durationMinutes int) iter.Seq[TimeRange] {
	step := time.Duration(durationMinutes) * time.Minute

	return func(yield func(TimeRange) bool) {
		if durationMinutes <= 0 || !r.IsValid() {
			return
		}
		for start := r.Start; !start.Add(step).After(r.End); start = start.Add(step) {
			if !yield(TimeRange{Start: start, End: start.Add(step)}) {
				return
			}
		}
	}
}
