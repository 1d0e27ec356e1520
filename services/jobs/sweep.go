package jobs

import (
	"context"
	"time"

	"trace_app_go/models"

	"go.uber.org/zap"
)

// PendingLister finds unassigned complaints whose attempt is overdue
type PendingLister interface {
	ListPendingAssignments(ctx context.Context, dueBefore time.Time) ([]models.Complaint, error)
}

// RecoverySweep re-triggers assignment for complaints whose scheduled
// attempt never ran, for example after a restart with in-memory timers
type RecoverySweep struct {
	store    PendingLister
	assigner Assigner
	log      *zap.Logger
	now      func() time.Time
}

// NewRecoverySweep creates the sweep job
func NewRecoverySweep(store PendingLister, assigner Assigner, log *zap.Logger) *RecoverySweep {
	if log == nil {
		log = zap.NewNop()
	}
	return &RecoverySweep{store: store, assigner: assigner, log: log, now: time.Now}
}

// Run attempts every overdue assignment once and returns how many it made
func (r *RecoverySweep) Run(ctx context.Context) int {
	pending, err := r.store.ListPendingAssignments(ctx, r.now())
	if err != nil {
		r.log.Warn("[JOB] Failed to list overdue assignments", zap.Error(err))
		return 0
	}
	if len(pending) == 0 {
		return 0
	}

	assigned := 0
	for _, c := range pending {
		ok, err := r.assigner.TryAssign(ctx, c.ID)
		if err != nil {
			r.log.Warn("[JOB] Sweep assignment failed", zap.Uint("complaint_id", c.ID), zap.Error(err))
			continue
		}
		if ok {
			assigned++
		}
	}

	r.log.Info("[JOB] Assignment sweep finished", zap.Int("overdue", len(pending)), zap.Int("assigned", assigned))
	return assigned
}
