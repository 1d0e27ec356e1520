package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"trace_app_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestTimerSchedulerFiresOnce(t *testing.T) {
	assigner := &countingAssigner{}
	sched := NewTimerScheduler(assigner, zap.NewNop())

	start := time.Now()
	require.NoError(t, sched.Schedule(context.Background(), 7, 30*time.Millisecond))
	sched.Wait()

	assert.Equal(t, []uint{7}, assigner.Calls())
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestTimerSchedulerIndependentTimers(t *testing.T) {
	assigner := &countingAssigner{}
	sched := NewTimerScheduler(assigner, zap.NewNop())
	ctx := context.Background()

	for id := uint(1); id <= 5; id++ {
		require.NoError(t, sched.Schedule(ctx, id, time.Duration(id)*5*time.Millisecond))
	}
	sched.Wait()

	assert.ElementsMatch(t, []uint{1, 2, 3, 4, 5}, assigner.Calls())
}

func TestTimerSchedulerErrorsAreDropped(t *testing.T) {
	assigner := &countingAssigner{err: errors.New("database is locked")}
	sched := NewTimerScheduler(assigner, zap.NewNop())

	require.NoError(t, sched.Schedule(context.Background(), 1, 0))
	sched.Wait()

	// No retry
	assert.Equal(t, []uint{1}, assigner.Calls())
}

func TestTimerSchedulerAssignsAfterDelay(t *testing.T) {
	store, assigner := setupAssignment(t)
	sched := NewTimerScheduler(assigner, zap.NewNop())
	ctx := context.Background()

	id := createComplaint(t, store, nil)
	// A request context that ends before the timer fires must not cancel the attempt
	reqCtx, cancel := context.WithCancel(ctx)
	require.NoError(t, sched.Schedule(reqCtx, id, 20*time.Millisecond))
	cancel()

	before, _ := store.GetByID(ctx, id)
	assert.Equal(t, models.OfficerNotAssigned, before.OfficerAssigned)

	sched.Wait()

	after, err := store.GetByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAssigned, after.Status)
	assert.NotEqual(t, models.OfficerNotAssigned, after.OfficerAssigned)
}

func TestTimerSchedulerAdminStatusOverwritten(t *testing.T) {
	store, assigner := setupAssignment(t)
	sched := NewTimerScheduler(assigner, zap.NewNop())
	ctx := context.Background()

	id := createComplaint(t, store, nil)
	require.NoError(t, sched.Schedule(ctx, id, 200*time.Millisecond))

	closed := "Closed"
	require.NoError(t, store.Update(ctx, id, models.ComplaintUpdate{Status: &closed}))

	sched.Wait()

	got, _ := store.GetByID(ctx, id)
	assert.Equal(t, models.StatusAssigned, got.Status)
}
