package services

import (
	"context"

	"go.uber.org/zap"
)

// Assigner performs the delayed officer assignment for a single complaint
type Assigner struct {
	store    ComplaintStore
	pool     *OfficerPool
	notifier Notifier
	log      *zap.Logger
}

// NewAssigner wires the assignment step. notifier may be nil.
func NewAssigner(store ComplaintStore, pool *OfficerPool, notifier Notifier, log *zap.Logger) *Assigner {
	if log == nil {
		log = zap.NewNop()
	}
	return &Assigner{store: store, pool: pool, notifier: notifier, log: log}
}

// TryAssign assigns a random officer when the complaint still carries the
// unassigned sentinel. It returns true only when this call wrote the
// assignment. A missing or already-assigned complaint is a no-op.
//
// Only the officer sentinel is checked: a status set by an admin is
// overwritten with "Assigned" if no officer was set.
func (a *Assigner) TryAssign(ctx context.Context, id uint) (bool, error) {
	officer := a.pool.Pick()

	assigned, err := a.store.AssignIfUnassigned(ctx, id, officer)
	if err != nil {
		return false, err
	}
	if !assigned {
		a.log.Debug("Assignment skipped, complaint missing or already assigned", zap.Uint("complaint_id", id))
		return false, nil
	}

	a.log.Info("Officer assigned",
		zap.Uint("complaint_id", id),
		zap.String("officer", officer.Name),
		zap.String("station", officer.Station),
	)

	if a.notifier != nil {
		a.notify(ctx, id)
	}
	return true, nil
}

func (a *Assigner) notify(ctx context.Context, id uint) {
	complaint, err := a.store.GetByID(ctx, id)
	if err != nil {
		a.log.Warn("Failed to load complaint for notification", zap.Uint("complaint_id", id), zap.Error(err))
		return
	}
	if err := a.notifier.AssignmentMade(ctx, *complaint); err != nil {
		a.log.Warn("Failed to send assignment notification", zap.Uint("complaint_id", id), zap.Error(err))
	}
}

