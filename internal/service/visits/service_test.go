package visits

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/REM-AvailabilityService/internal/domain"
	visitRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/visitblock"
	"github.com/m04kA/REM-AvailabilityService/internal/service/visits/models"
	"github.com/m04kA/REM-AvailabilityService/pkg/types"
)

// testLogger заглушка логгера для тестов
type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

type stubVisitRepo struct {
	visit       *domain.VisitBlock
	visits      []*domain.VisitBlock
	getErr      error
	cancelErr   error
	cancelCalls int
}

func (s *stubVisitRepo) GetByID(ctx context.Context, id int64) (*domain.VisitBlock, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.visit, nil
}

func (s *stubVisitRepo) GetByUserID(ctx context.Context, userID int64, status *domain.VisitStatus) ([]*domain.VisitBlock, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.visits, nil
}

func (s *stubVisitRepo) Cancel(ctx context.Context, id int64, status domain.VisitStatus, reason string) error {
	s.cancelCalls++
	return s.cancelErr
}

func testVisit(userID int64, status domain.VisitStatus) *domain.VisitBlock {
	return &domain.VisitBlock{
		ID:              42,
		UserID:          userID,
		PropertyID:      10,
		VisitDate:       time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		StartTime:       types.TimeString("10:00"),
		DurationMinutes: 30,
		Status:          status,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("успешное получение своего визита", func(t *testing.T) {
		repo := &stubVisitRepo{visit: testVisit(1, domain.VisitConfirmed)}
		svc := NewService(repo, testLogger{})

		resp, err := svc.GetByID(context.Background(), 42, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
		assert.Equal(t, "10:00", resp.StartTime)
		assert.Equal(t, "2026-09-01", resp.VisitDate)
	})

	t.Run("чужой визит недоступен", func(t *testing.T) {
		repo := &stubVisitRepo{visit: testVisit(1, domain.VisitConfirmed)}
		svc := NewService(repo, testLogger{})

		_, err := svc.GetByID(context.Background(), 42, 2)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("визит не найден", func(t *testing.T) {
		repo := &stubVisitRepo{getErr: visitRepo.ErrVisitNotFound}
		svc := NewService(repo, testLogger{})

		_, err := svc.GetByID(context.Background(), 42, 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrVisitNotFound)
	})
}

func TestService_GetUserVisits(t *testing.T) {
	t.Run("список визитов пользователя", func(t *testing.T) {
		repo := &stubVisitRepo{visits: []*domain.VisitBlock{
			testVisit(1, domain.VisitConfirmed),
			testVisit(1, domain.VisitCompleted),
		}}
		svc := NewService(repo, testLogger{})

		resp, err := svc.GetUserVisits(context.Background(), &models.GetUserVisitsRequest{UserID: 1})
		require.NoError(t, err)
		assert.Len(t, resp.Visits, 2)
	})

	t.Run("некорректный статус", func(t *testing.T) {
		svc := NewService(&stubVisitRepo{}, testLogger{})

		bad := "unknown"
		_, err := svc.GetUserVisits(context.Background(), &models.GetUserVisitsRequest{UserID: 1, Status: &bad})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Cancel(t *testing.T) {
	t.Run("успешная отмена", func(t *testing.T) {
		repo := &stubVisitRepo{visit: testVisit(1, domain.VisitPending)}
		svc := NewService(repo, testLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelVisitRequest{
			UserID:             1,
			CancellationReason: "передумал",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.cancelCalls)
	})

	t.Run("чужой визит отменить нельзя", func(t *testing.T) {
		repo := &stubVisitRepo{visit: testVisit(1, domain.VisitPending)}
		svc := NewService(repo, testLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelVisitRequest{UserID: 2})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrAccessDenied)
		assert.Zero(t, repo.cancelCalls)
	})

	t.Run("завершенный визит отменить нельзя", func(t *testing.T) {
		repo := &stubVisitRepo{visit: testVisit(1, domain.VisitCompleted)}
		svc := NewService(repo, testLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelVisitRequest{UserID: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("гонка со сменой статуса в БД", func(t *testing.T) {
		repo := &stubVisitRepo{
			visit:     testVisit(1, domain.VisitPending),
			cancelErr: visitRepo.ErrCannotCancel,
		}
		svc := NewService(repo, testLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelVisitRequest{UserID: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrCannotCancel)
	})

	t.Run("ошибка репозитория", func(t *testing.T) {
		repo := &stubVisitRepo{getErr: errors.New("connection lost")}
		svc := NewService(repo, testLogger{})

		err := svc.Cancel(context.Background(), 42, &models.CancelVisitRequest{UserID: 1})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInternal)
	})
}
