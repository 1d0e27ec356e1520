package jobs

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type noopCleaner struct{}

func (noopCleaner) CleanupExpiredSessions(ctx context.Context) error { return nil }

func TestStartScheduler(t *testing.T) {
	store, assigner := setupAssignment(t)
	sweep := NewRecoverySweep(store, assigner, zap.NewNop())

	t.Run("All jobs registered", func(t *testing.T) {
		c, err := StartScheduler(Schedules{
			Sweep:    "@every 1m",
			Export:   "0 2 * * *",
			Sessions: "@hourly",
			Timezone: "Asia/Kolkata",
		}, sweep, NewExportJob(store, nil, zap.NewNop()), noopCleaner{}, zap.NewNop())
		require.NoError(t, err)
		defer c.Stop()

		assert.Len(t, c.Entries(), 3)
		assert.Equal(t, "Asia/Kolkata", c.Location().String())
	})

	t.Run("Off disables a job", func(t *testing.T) {
		c, err := StartScheduler(Schedules{Sweep: ScheduleOff, Export: "0 2 * * *", Timezone: "UTC"}, sweep, nil, nil, zap.NewNop())
		require.NoError(t, err)
		defer c.Stop()

		assert.Empty(t, c.Entries())
	})

	t.Run("Invalid spec", func(t *testing.T) {
		_, err := StartScheduler(Schedules{Sweep: "every minute", Timezone: "UTC"}, sweep, nil, nil, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("Unknown timezone falls back to UTC", func(t *testing.T) {
		c, err := StartScheduler(Schedules{Sweep: "@every 1m", Timezone: "Mars/Olympus"}, sweep, nil, nil, zap.NewNop())
		require.NoError(t, err)
		defer c.Stop()

		assert.Equal(t, "UTC", c.Location().String())
	})
}
