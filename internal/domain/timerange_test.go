package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return ts
}

func rng(t *testing.T, start, end string) TimeRange {
	t.Helper()
	return TimeRange{
		Start: mustTime(t, start),
		End:   mustTime(t, end),
	}
}

func TestTimeRange_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    TimeRange
		b    TimeRange
		want bool
	}{
		{
			name: "частичное пересечение",
			a:    rng(t, "2026-09-01T11:30:00Z", "2026-09-01T12:00:00Z"),
			b:    rng(t, "2026-09-01T11:20:00Z", "2026-09-01T11:40:00Z"),
			want: true,
		},
		{
			name: "граничащие интервалы не пересекаются (конец a = начало b)",
			a:    rng(t, "2026-09-01T11:00:00Z", "2026-09-01T11:30:00Z"),
			b:    rng(t, "2026-09-01T11:30:00Z", "2026-09-01T12:00:00Z"),
			want: false,
		},
		{
			name: "граничащие интервалы не пересекаются (конец b = начало a)",
			a:    rng(t, "2026-09-01T11:30:00Z", "2026-09-01T12:00:00Z"),
			b:    rng(t, "2026-09-01T11:00:00Z", "2026-09-01T11:30:00Z"),
			want: false,
		},
		{
			name: "вложенный интервал",
			a:    rng(t, "2026-09-01T10:00:00Z", "2026-09-01T12:00:00Z"),
			b:    rng(t, "2026-09-01T10:30:00Z", "2026-09-01T11:00:00Z"),
			want: true,
		},
		{
			name: "идентичные интервалы",
			a:    rng(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z"),
			b:    rng(t, "2026-09-01T10:00:00Z", "2026-09-01T11:00:00Z"),
			want: true,
		},
		{
			name: "непересекающиеся интервалы",
			a:    rng(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z"),
			b:    rng(t, "2026-09-01T14:00:00Z", "2026-09-01T15:00:00Z"),
			want: false,
		},
		{
			name: "вырожденный интервал нулевой длины ни с чем не пересекается",
			a:    rng(t, "2026-09-01T10:00:00Z", "2026-09-01T10:00:00Z"),
			b:    rng(t, "2026-09-01T09:00:00Z", "2026-09-01T11:00:00Z"),
			want: false,
		},
		{
			name: "перевернутый интервал ни с чем не пересекается",
			a:    rng(t, "2026-09-01T12:00:00Z", "2026-09-01T10:00:00Z"),
			b:    rng(t, "2026-09-01T09:00:00Z", "2026-09-01T13:00:00Z"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestTimeRange_Slots(t *testing.T) {
	t.Run("ровное замощение окна", func(t *testing.T) {
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T11:00:00Z")

		var slots []TimeRange
		for s := range window.Slots(30) {
			slots = append(slots, s)
		}

		require.Len(t, slots, 4)

		// Первый слот начинается с начала окна, последний заканчивается концом окна
		assert.Equal(t, window.Start, slots[0].Start)
		assert.Equal(t, window.End, slots[len(slots)-1].End)

		// Слоты непрерывны, упорядочены и одной длительности
		for i, s := range slots {
			assert.Equal(t, 30*time.Minute, s.Duration())
			if i > 0 {
				assert.Equal(t, slots[i-1].End, s.Start)
			}
		}
	})

	t.Run("неполный последний слот отбрасывается", func(t *testing.T) {
		// Окно 100 минут, слот 45 минут: помещаются ровно два слота
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T10:40:00Z")

		var slots []TimeRange
		for s := range window.Slots(45) {
			slots = append(slots, s)
		}

		require.Len(t, slots, 2)
		assert.Equal(t, mustTime(t, "2026-09-01T10:30:00Z"), slots[1].End)
	})

	t.Run("окно короче одного слота", func(t *testing.T) {
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T09:20:00Z")

		count := 0
		for range window.Slots(30) {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("невалидное окно не дает слотов", func(t *testing.T) {
		window := rng(t, "2026-09-01T11:00:00Z", "2026-09-01T09:00:00Z")

		count := 0
		for range window.Slots(30) {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("нулевая длительность не дает слотов", func(t *testing.T) {
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T11:00:00Z")

		count := 0
		for range window.Slots(0) {
			count++
		}
		assert.Zero(t, count)
	})

	t.Run("последовательность можно итерировать повторно", func(t *testing.T) {
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z")
		seq := window.Slots(30)

		first := 0
		for range seq {
			first++
		}
		second := 0
		for range seq {
			second++
		}

		assert.Equal(t, 2, first)
		assert.Equal(t, first, second)
	})

	t.Run("раннее прекращение итерации", func(t *testing.T) {
		window := rng(t, "2026-09-01T09:00:00Z", "2026-09-01T18:00:00Z")

		var got []TimeRange
		for s := range window.Slots(30) {
			got = append(got, s)
			if len(got) == 3 {
				break
			}
		}
		require.Len(t, got, 3)
		assert.Equal(t, mustTime(t, "2026-09-01T10:30:00Z"), got[2].End)
	})
}

func TestTimeRange_IsValid(t *testing.T) {
	assert.True(t, rng(t, "2026-09-01T09:00:00Z", "2026-09-01T10:00:00Z").IsValid())
	assert.False(t, rng(t, "2026-09-01T09:00:00Z", "2026-09-01T09:00:00Z").IsValid())
	assert.False(t, rng(t, "2026-09-01T10:00:00Z", "2026-09-01T09:00:00Z").IsValid())
}
