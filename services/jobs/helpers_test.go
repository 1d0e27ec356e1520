package jobs

import (
	"context"
	"sync"
	"testing"
	"time"

	"trace_app_go/db"
	"trace_app_go/models"
	"trace_app_go/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// countingAssigner records every attempt
type countingAssigner struct {
	mu    sync.Mutex
	calls []uint
	err   error
}

func (c *countingAssigner) TryAssign(ctx context.Context, id uint) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.calls = append(c.calls, id)
	return c.err == nil, c.err
}

func (c *countingAssigner) Calls() []uint {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]uint(nil), c.calls...)
}

// setupAssignment wires a real store and assigner on an in-memory database
func setupAssignment(t *testing.T) (*services.GormComplaintStore, *services.Assigner) {
	t.Helper()

	testDB, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(testDB) })
	require.NoError(t, db.AutoMigrate(testDB, &models.Complaint{}))

	store := services.NewComplaintStore(testDB)
	pool, err := services.NewOfficerPool(services.DefaultOfficers, nil)
	require.NoError(t, err)

	return store, services.NewAssigner(store, pool, nil, zap.NewNop())
}

func createComplaint(t *testing.T, store *services.GormComplaintStore, due *time.Time) uint {
	t.Helper()
	id, err := store.Create(context.Background(), &models.Complaint{
		Name:          "Asha Rao",
		Contact:       "9990001111",
		Area:          "Indiranagar",
		IncidentDate:  "2024-05-01",
		IncidentPlace: "100 Feet Road",
		Description:   "Stolen bicycle",
		AssignDueAt:   due,
	})
	require.NoError(t, err)
	return id
}
