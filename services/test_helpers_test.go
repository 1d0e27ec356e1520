package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"trace_app_go/db"
	"trace_app_go/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	testDB, err := db.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close(testDB) })

	require.NoError(t, db.AutoMigrate(testDB, &models.Complaint{}, &models.Admin{}, &models.AdminSession{}))
	return testDB
}

// stubExtractor returns fixed entities or a fixed error
type stubExtractor struct {
	entities Entities
	err      error
}

func (s stubExtractor) Extract(ctx context.Context, text string) (Entities, error) {
	return s.entities, s.err
}

type scheduledCall struct {
	ID    uint
	Delay time.Duration
}

// recordingScheduler remembers every Schedule call instead of arming timers
type recordingScheduler struct {
	mu    sync.Mutex
	calls []scheduledCall
	err   error
}

func (r *recordingScheduler) Schedule(ctx context.Context, id uint, delay time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, scheduledCall{ID: id, Delay: delay})
	return r.err
}

func (r *recordingScheduler) Calls() []scheduledCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]scheduledCall(nil), r.calls...)
}

func strPtr(s string) *string { return &s }

func newTestComplaint(contact string) *models.Complaint {
	return &models.Complaint{
		Name:          "Asha Rao",
		Contact:       contact,
		Area:          "Indiranagar",
		IncidentDate:  "2024-05-01",
		IncidentPlace: "100 Feet Road",
		Description:   "My bicycle was stolen.",
		FormattedText: "report",
	}
}
