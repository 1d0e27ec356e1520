package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// fireTimeout bounds one assignment attempt started by a timer or poller
const fireTimeout = 10 * time.Second

// Assigner performs one assignment attempt
type Assigner interface {
	TryAssign(ctx context.Context, complaintID uint) (bool, error)
}

// fire runs one attempt detached from the request that scheduled it.
// Errors are logged and dropped; the recovery sweep retries anything left unassigned.
func fire(assigner Assigner, log *zap.Logger, complaintID uint, source string) {
	ctx, cancel := context.WithTimeout(context.Background(), fireTimeout)
	defer cancel()

	assigned, err := assigner.TryAssign(ctx, complaintID)
	if err != nil {
		log.Warn("[JOB] Assignment attempt failed",
			zap.String("source", source),
			zap.Uint("complaint_id", complaintID),
			zap.Error(err),
		)
		return
	}

	log.Debug("[JOB] Assignment attempt finished",
		zap.String("source", source),
		zap.Uint("complaint_id", complaintID),
		zap.Bool("assigned", assigned),
	)
}
