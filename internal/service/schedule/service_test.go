package schedule

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	scheduleRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/schedule"
	"github.com/m04kA/REM-AvailabilityService/internal/service/schedule/models"
	"github.com/m04kA/REM-AvailabilityService/pkg/ptr"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// testLogger заглушка логгера для тестов
type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubScheduleRepo struct {
	sched    *domain.PropertySchedule
	getErr   error
	upserted *domain.PropertySchedule
}

func (s *stubScheduleRepo) GetByProperty(ctx context.Context, propertyID int64) (*domain.PropertySchedule, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.sched, nil
}

func (s *stubScheduleRepo) Upsert(ctx context.Context, sched *domain.PropertySchedule) (*domain.PropertySchedule, error) {
	stored := *sched
	stored.ID = 1
	s.upserted = &stored
	return &stored, nil
}

func TestService_GetByProperty(t *testing.T) {
	t.Run("настроенное расписание", func(t *testing.T) {
		repo := &stubScheduleRepo{sched: &domain.PropertySchedule{
			ID:                  1,
			PropertyID:          10,
			VisibleFrom:         types.TimeString("10:00"),
			VisibleTo:           types.TimeString("20:00"),
			SlotDurationMinutes: 60,
		}}
		svc := NewService(repo, testLogger{})

		resp, err := svc.GetByProperty(context.Background(), 10)
		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "10:00", resp.VisibleFrom)
		assert.Equal(t, 60, resp.SlotDurationMinutes)
	})

	t.Run("дефолтное расписание для ненастроенного объекта", func(t *testing.T) {
		repo := &stubScheduleRepo{getErr: scheduleRepo.ErrScheduleNotFound}
		svc := NewService(repo, testLogger{})

		resp, err := svc.GetByProperty(context.Background(), 10)
		require.NoError(t, err)
		assert.True(t, resp.IsDefault)
		assert.Equal(t, domain.DefaultVisibleHoursStart, resp.VisibleFrom)
		assert.Equal(t, domain.DefaultVisibleHoursEnd, resp.VisibleTo)
		assert.Equal(t, domain.DefaultSlotDurationMinutes, resp.SlotDurationMinutes)
	})
}

func TestService_Update(t *testing.T) {
	validReq := func() *models.UpdateScheduleRequest {
		return &models.UpdateScheduleRequest{
			UserID:              1,
			VisibleFrom:         "10:00",
			VisibleTo:           "19:00",
			SlotDurationMinutes: 30,
		}
	}

	t.Run("успешное обновление", func(t *testing.T) {
		repo := &stubScheduleRepo{}
		svc := NewService(repo, testLogger{})

		req := validReq()
		req.GoogleCalendarID = ptr.Ptr("agent@example.com")
		req.ICSFeedURL = ptr.Ptr("https://cal.example.com/feed.ics")

		resp, err := svc.Update(context.Background(), 10, req)
		require.NoError(t, err)
		assert.False(t, resp.IsDefault)
		assert.Equal(t, "10:00", resp.VisibleFrom)
		require.NotNil(t, repo.upserted)
		assert.Equal(t, int64(10), repo.upserted.PropertyID)
	})

	t.Run("перевернутое окно", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, testLogger{})

		req := validReq()
		req.VisibleFrom = "19:00"
		req.VisibleTo = "10:00"

		_, err := svc.Update(context.Background(), 10, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("некорректный формат времени", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, testLogger{})

		req := validReq()
		req.VisibleFrom = "пол-одиннадцатого"

		_, err := svc.Update(context.Background(), 10, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("недопустимая длительность слота", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, testLogger{})

		req := validReq()
		req.SlotDurationMinutes = 5

		_, err := svc.Update(context.Background(), 10, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("ICS URL с недопустимой схемой", func(t *testing.T) {
		svc := NewService(&stubScheduleRepo{}, testLogger{})

		req := validReq()
		req.ICSFeedURL = ptr.Ptr("ftp://cal.example.com/feed.ics")

		_, err := svc.Update(context.Background(), 10, req)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
