package get_availability

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	"github.com/m04kA/REM-AvailabilityService/internal/events"
	schedulestore "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/REM-AvailabilityService/internal/integrations/googlecal"
	"github.com/m04kA/REM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// testLogger заглушка логгера для тестов
type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubVisitRepo struct {
	visits []*domain.VisitBlock
	err    error
}

func (s *stubVisitRepo) GetByPropertyWithFilter(ctx context.Context, filter domain.VisitsFilter) ([]*domain.VisitBlock, error) {
	return s.visits, s.err
}

type stubScheduleRepo struct {
	sched *domain.PropertySchedule
	err   error
}

func (s *stubScheduleRepo) GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.sched, nil
}

type stubCalendarClient struct {
	records []events.RawRecord
	err     error
	calls   int
}

func (s *stubCalendarClient) GetBusyIntervals(ctx context.Context, source string, date time.Time) ([]events.RawRecord, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// adapterObservation одно зафиксированное обращение к внешнему источнику
type adapterObservation struct {
	adapter string
	result  string
}

// metricsRecorder запоминает вызовы ObserveAdapterRequest
type metricsRecorder struct {
	mu           sync.Mutex
	observations []adapterObservation
}

func (r *metricsRecorder) ObserveAdapterRequest(adapter, result string, duration time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observations = append(r.observations, adapterObservation{adapter: adapter, result: result})
}

type fixture struct {
	visitRepo    *stubVisitRepo
	scheduleRepo *stubScheduleRepo
	google       *stubCalendarClient
	ics          *stubCalendarClient
	metrics      AdapterMetrics
	uc           *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		visitRepo:    &stubVisitRepo{},
		scheduleRepo: &stubScheduleRepo{err: schedulestore.ErrScheduleNotFound},
		google:       &stubCalendarClient{},
		ics:          &stubCalendarClient{},
	}
	f.uc = NewUseCase(
		f.visitRepo,
		f.scheduleRepo,
		f.google,
		f.ics,
		events.NewNormalizer(testLogger{}),
		f.metrics,
		time.UTC,
		testLogger{},
	)
	return f
}

var testDate = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

func testSchedule(propertyID int64) *domain.PropertySchedule {
	return &domain.PropertySchedule{
		ID:                  1,
		PropertyID:          propertyID,
		VisibleFrom:         types.TimeString("09:00"),
		VisibleTo:           types.TimeString("18:00"),
		SlotDurationMinutes: 30,
	}
}

func TestUseCase_Execute_DefaultSchedule(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)

	// Дефолтное расписание: 09:00-18:00, слоты по 30 минут
	require.Len(t, resp.Slots, 18)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
		assert.Equal(t, domain.ReasonOpen, s.Reason)
	}

	// Внешние источники не привязаны и не опрашиваются
	assert.Zero(t, f.google.calls)
	assert.Zero(t, f.ics.calls)
}

func TestUseCase_Execute_InternalVisitBlocksSlot(t *testing.T) {
	f := newFixture()
	f.scheduleRepo = &stubScheduleRepo{sched: testSchedule(10)}
	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	f.visitRepo.visits = []*domain.VisitBlock{{
		ID:              7,
		PropertyID:      10,
		VisitDate:       testDate,
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          domain.VisitConfirmed,
	}}

	resp, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 18)

	// Слот [10:00, 10:30) занят визитом, соседние свободны
	blocked := resp.Slots[2]
	assert.Equal(t, time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC), blocked.Start)
	assert.False(t, blocked.Available)
	assert.Equal(t, domain.ReasonBlockedInternal, blocked.Reason)
	assert.Equal(t, domain.SourceInternal, blocked.Source)

	assert.True(t, resp.Slots[1].Available)
	assert.True(t, resp.Slots[3].Available)
}

func TestUseCase_Execute_GoogleEventsBlockSlots(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.GoogleCalendarID = ptr.Ptr("agent@example.com")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}

	f.google.records = []events.RawRecord{{
		Kind: events.KindGoogle,
		Google: &events.GoogleRecord{
			CalendarID: "agent@example.com",
			Start:      time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 9, 1, 9, 30, 0, 0, time.UTC),
		},
	}}

	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	resp, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 1, f.google.calls)
	assert.Zero(t, f.ics.calls)

	first := resp.Slots[0]
	assert.False(t, first.Available)
	assert.Equal(t, domain.ReasonBlockedExternal, first.Reason)
	assert.Equal(t, domain.GoogleSource("agent@example.com"), first.Source)
	assert.True(t, resp.Slots[1].Available)
}

func TestUseCase_Execute_UnavailableSourceDegradesToEmpty(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.ICSFeedURL = ptr.Ptr("https://cal.example.com/feed.ics")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}
	f.ics.err = errors.New("connection refused")

	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	resp, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)

	// Недоступный источник считается пустым, расчёт не срывается
	require.Len(t, resp.Slots, 18)
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestUseCase_Execute_NotConfiguredSourceFails(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.GoogleCalendarID = ptr.Ptr("agent@example.com")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}
	f.google.err = googlecal.ErrNotConfigured

	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	_, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSourceNotConfigured)
}

func TestUseCase_Execute_AdapterMetricsObserved(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.GoogleCalendarID = ptr.Ptr("agent@example.com")
	sched.ICSFeedURL = ptr.Ptr("https://cal.example.com/feed.ics")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}

	recorder := &metricsRecorder{}
	f.metrics = recorder
	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	_, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)

	// По одному наблюдению на каждый опрошенный источник
	require.Len(t, recorder.observations, 2)
	assert.Contains(t, recorder.observations, adapterObservation{adapter: "google", result: "ok"})
	assert.Contains(t, recorder.observations, adapterObservation{adapter: "ics", result: "ok"})
}

func TestUseCase_Execute_AdapterMetricsObserveError(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.ICSFeedURL = ptr.Ptr("https://cal.example.com/feed.ics")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}
	f.ics.err = errors.New("connection refused")

	recorder := &metricsRecorder{}
	f.metrics = recorder
	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	_, err := f.uc.Execute(context.Background(), &Request{PropertyID: 10, Date: testDate})
	require.NoError(t, err)

	require.Len(t, recorder.observations, 1)
	assert.Equal(t, adapterObservation{adapter: "ics", result: "error"}, recorder.observations[0])
}

func TestUseCase_Execute_RequestOverrides(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), &Request{
		PropertyID:          10,
		Date:                testDate,
		VisibleFrom:         ptr.Ptr(types.TimeString("12:00")),
		VisibleTo:           ptr.Ptr(types.TimeString("14:00")),
		SlotDurationMinutes: ptr.Ptr(60),
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 2)
	assert.Equal(t, time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC), resp.Slots[0].Start)
	assert.Equal(t, time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC), resp.Slots[1].End)
}

func TestUseCase_Execute_Validation(t *testing.T) {
	f := newFixture()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "неположительный propertyID",
			req:     &Request{PropertyID: 0, Date: testDate},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "нулевая дата",
			req:     &Request{PropertyID: 10},
			wantErr: ErrInvalidDate,
		},
		{
			name: "переопределение окна только одной границей",
			req: &Request{
				PropertyID:  10,
				Date:        testDate,
				VisibleFrom: ptr.Ptr(types.TimeString("09:00")),
			},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "перевернутое окно",
			req: &Request{
				PropertyID:  10,
				Date:        testDate,
				VisibleFrom: ptr.Ptr(types.TimeString("18:00")),
				VisibleTo:   ptr.Ptr(types.TimeString("09:00")),
			},
			wantErr: ErrInvalidWindow,
		},
		{
			name: "слишком короткий слот",
			req: &Request{
				PropertyID:          10,
				Date:                testDate,
				SlotDurationMinutes: ptr.Ptr(5),
			},
			wantErr: ErrInvalidSlotDuration,
		},
		{
			name: "слишком длинный слот",
			req: &Request{
				PropertyID:          10,
				Date:                testDate,
				SlotDurationMinutes: ptr.Ptr(480),
			},
			wantErr: ErrInvalidSlotDuration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUseCase_Execute_Deterministic(t *testing.T) {
	f := newFixture()
	sched := testSchedule(10)
	sched.GoogleCalendarID = ptr.Ptr("agent@example.com")
	sched.ICSFeedURL = ptr.Ptr("https://cal.example.com/feed.ics")
	f.scheduleRepo = &stubScheduleRepo{sched: sched}

	f.google.records = []events.RawRecord{{
		Kind: events.KindGoogle,
		Google: &events.GoogleRecord{
			CalendarID: "agent@example.com",
			Start:      time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC),
			End:        time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC),
		},
	}}
	f.ics.records = []events.RawRecord{{
		Kind: events.KindICS,
		ICS: &events.ICSRecord{
			FeedURL: "https://cal.example.com/feed.ics",
			UID:     "ev-1",
			Start:   time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC),
			End:     time.Date(2026, 9, 1, 16, 0, 0, 0, time.UTC),
		},
	}}

	f.uc = NewUseCase(f.visitRepo, f.scheduleRepo, f.google, f.ics,
		events.NewNormalizer(testLogger{}), f.metrics, time.UTC, testLogger{})

	req := &Request{PropertyID: 10, Date: testDate}

	first, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	// Повторный расчёт при неизменных данных источников идентичен
	assert.Equal(t, first, second)
}

func TestUseCase_Execute_CancelledContext(t *testing.T) {
	f := newFixture()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.uc.Execute(ctx, &Request{PropertyID: 10, Date: testDate})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
