package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2026, 9, 1, hour, min, 0, 0, time.UTC)
}

func window(startHour, endHour int) domain.TimeRange {
	return domain.TimeRange{Start: at(startHour, 0), End: at(endHour, 0)}
}

func busyEvent(source domain.EventSource, start, end time.Time) domain.CalendarEvent {
	return domain.CalendarEvent{
		ID:     "ev",
		Start:  start,
		End:    end,
		Busy:   true,
		Source: source,
	}
}

func TestBuildSlots_NoEvents(t *testing.T) {
	slots := buildSlots(window(9, 11), 30, nil)

	require.Len(t, slots, 4)
	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Equal(t, domain.ReasonOpen, s.Reason)
		assert.Empty(t, s.Source)
	}
}

func TestBuildSlots_InternalConflict(t *testing.T) {
	// Окно [09:00, 11:00), слоты по 60 минут, внутренний визит [09:00, 10:00)
	slots := buildSlots(window(9, 11), 60, []domain.CalendarEvent{
		busyEvent(domain.SourceInternal, at(9, 0), at(10, 0)),
	})

	require.Len(t, slots, 2)

	assert.False(t, slots[0].Available)
	assert.Equal(t, domain.ReasonBlockedInternal, slots[0].Reason)
	assert.Equal(t, domain.SourceInternal, slots[0].Source)

	// Визит заканчивается ровно на границе второго слота и его не блокирует
	assert.True(t, slots[1].Available)
	assert.Equal(t, domain.ReasonOpen, slots[1].Reason)
}

func TestBuildSlots_EventSpanningTwoSlots(t *testing.T) {
	// Событие [09:30, 10:30) пересекает оба часовых слота
	slots := buildSlots(window(9, 11), 60, []domain.CalendarEvent{
		busyEvent(domain.SourceInternal, at(9, 30), at(10, 30)),
	})

	require.Len(t, slots, 2)
	assert.False(t, slots[0].Available)
	assert.False(t, slots[1].Available)
}

func TestBuildSlots_ExternalConflict(t *testing.T) {
	source := domain.GoogleSource("agent@example.com")
	slots := buildSlots(window(9, 11), 30, []domain.CalendarEvent{
		busyEvent(source, at(10, 0), at(10, 30)),
	})

	require.Len(t, slots, 4)
	assert.True(t, slots[0].Available)
	assert.True(t, slots[1].Available)
	assert.False(t, slots[2].Available)
	assert.Equal(t, domain.ReasonBlockedExternal, slots[2].Reason)
	assert.Equal(t, source, slots[2].Source)
	assert.True(t, slots[3].Available)
}

func TestBuildSlots_InternalWinsOverExternal(t *testing.T) {
	// Когда слот конфликтует и с внутренним визитом, и с внешним событием,
	// причиной указывается внутренняя блокировка независимо от порядка событий
	internal := busyEvent(domain.SourceInternal, at(9, 0), at(9, 30))
	external := busyEvent(domain.GoogleSource("cal"), at(9, 0), at(9, 30))

	for name, evs := range map[string][]domain.CalendarEvent{
		"внутреннее первым": {internal, external},
		"внешнее первым":    {external, internal},
	} {
		t.Run(name, func(t *testing.T) {
			slots := buildSlots(window(9, 10), 30, evs)

			require.Len(t, slots, 2)
			assert.False(t, slots[0].Available)
			assert.Equal(t, domain.ReasonBlockedInternal, slots[0].Reason)
			assert.Equal(t, domain.SourceInternal, slots[0].Source)
		})
	}
}

func TestBuildSlots_FreeEventsDoNotBlock(t *testing.T) {
	free := busyEvent(domain.ICSSource("https://cal.example.com/feed.ics"), at(9, 0), at(10, 0))
	free.Busy = false

	slots := buildSlots(window(9, 10), 30, []domain.CalendarEvent{free})

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestBuildSlots_AdjacentEventDoesNotBlock(t *testing.T) {
	// Событие заканчивается ровно в начале окна
	slots := buildSlots(window(10, 11), 30, []domain.CalendarEvent{
		busyEvent(domain.SourceInternal, at(9, 0), at(10, 0)),
	})

	require.Len(t, slots, 2)
	for _, s := range slots {
		assert.True(t, s.Available)
	}
}

func TestBuildSlots_SlotsAreContiguousAndOrdered(t *testing.T) {
	slots := buildSlots(window(9, 18), 30, nil)

	require.Len(t, slots, 18)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(18, 0), slots[len(slots)-1].End)
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End, slots[i].Start)
	}
}
