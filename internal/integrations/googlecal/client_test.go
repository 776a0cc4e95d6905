package googlecal

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger заглушка логгера для тестов
type testLogger struct{}

func (testLogger) Info(format string, v ...interface{})  {}
func (testLogger) Warn(format string, v ...interface{})  {}
func (testLogger) Error(format string, v ...interface{}) {}

func TestNewClient_NotConfigured(t *testing.T) {
	t.Run("вне production отсутствие учетных данных допустимо", func(t *testing.T) {
		client, err := NewClient(context.Background(), Config{}, testLogger{})
		require.NoError(t, err)
		require.NotNil(t, client)
	})

	t.Run("в production отсутствие учетных данных - ошибка конфигурации", func(t *testing.T) {
		_, err := NewClient(context.Background(), Config{Production: true}, testLogger{})
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}

func TestClient_GetBusyIntervals_NotConfigured(t *testing.T) {
	date := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("вне production возвращается пустой список без ошибки", func(t *testing.T) {
		client, err := NewClient(context.Background(), Config{}, testLogger{})
		require.NoError(t, err)

		records, err := client.GetBusyIntervals(context.Background(), "agent@example.com", date)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("в production неконфигурированный клиент возвращает ErrNotConfigured", func(t *testing.T) {
		client := &Client{production: true, log: testLogger{}}

		_, err := client.GetBusyIntervals(context.Background(), "agent@example.com", date)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotConfigured)
	})
}
