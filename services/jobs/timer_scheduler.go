package jobs

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// TimerScheduler arms one in-process timer per complaint. Armed timers
// cannot be cancelled and are lost if the process exits before they fire.
type TimerScheduler struct {
	assigner Assigner
	log      *zap.Logger
	wg       sync.WaitGroup
}

// NewTimerScheduler creates the in-memory scheduler
func NewTimerScheduler(assigner Assigner, log *zap.Logger) *TimerScheduler {
	if log == nil {
		log = zap.NewNop()
	}
	return &TimerScheduler{assigner: assigner, log: log}
}

// Schedule fires TryAssign once, on its own goroutine, after delay
func (s *TimerScheduler) Schedule(ctx context.Context, complaintID uint, delay time.Duration) error {
	s.wg.Add(1)
	time.AfterFunc(delay, func() {
		defer s.wg.Done()
		fire(s.assigner, s.log, complaintID, "timer")
	})

	s.log.Debug("[JOB] Assignment timer armed", zap.Uint("complaint_id", complaintID), zap.Duration("delay", delay))
	return nil
}

// Wait blocks until every armed timer has fired and finished
func (s *TimerScheduler) Wait() {
	s.wg.Wait()
}
