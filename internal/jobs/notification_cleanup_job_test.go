package jobs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"meatdelivery/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPurger struct {
	mock.Mock
}

func (m *MockPurger) Handle(ctx context.Context, cmd commands.PurgeExpiredNotificationsCommand) (int64, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(int64), args.Error(1)
}

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestNotificationCleanupJob_Run(t *testing.T) {
	t.Run("should log how many notifications were removed", func(t *testing.T) {
		var buf bytes.Buffer
		purger := new(MockPurger)
		purger.On("Handle", mock.Anything, mock.Anything).Return(int64(3), nil).Once()

		NewNotificationCleanupJob(purger, "@daily", newTestLogger(&buf)).run(t.Context())

		purger.AssertExpectations(t)
		assert.Contains(t, buf.String(), "deleted=3")
		assert.Contains(t, buf.String(), "component=notification_cleanup_job")
	})

	t.Run("should log failures without panicking", func(t *testing.T) {
		var buf bytes.Buffer
		purger := new(MockPurger)
		purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), errors.New("mongo down")).Once()

		NewNotificationCleanupJob(purger, "@daily", newTestLogger(&buf)).run(t.Context())

		assert.Contains(t, buf.String(), "Notification cleanup job failed")
		assert.Contains(t, buf.String(), "mongo down")
	})

	t.Run("should stay quiet when nothing expired", func(t *testing.T) {
		var buf bytes.Buffer
		purger := new(MockPurger)
		purger.On("Handle", mock.Anything, mock.Anything).Return(int64(0), nil).Once()

		NewNotificationCleanupJob(purger, "@daily", newTestLogger(&buf)).run(t.Context())

		assert.NotContains(t, buf.String(), "Expired notifications removed")
	})
}

func TestNotificationCleanupJob_Start(t *testing.T) {
	t.Run("should reject an invalid schedule", func(t *testing.T) {
		var buf bytes.Buffer
		job := NewNotificationCleanupJob(new(MockPurger), "not a schedule", newTestLogger(&buf))

		require.Error(t, job.Start())
	})

	t.Run("should start and stop with a valid schedule", func(t *testing.T) {
		var buf bytes.Buffer
		job := NewNotificationCleanupJob(new(MockPurger), "0 0 3 * * *", newTestLogger(&buf))

		require.NoError(t, job.Start())
		job.Stop()

		assert.Contains(t, buf.String(), "Notification cleanup job stopped")
	})
}
