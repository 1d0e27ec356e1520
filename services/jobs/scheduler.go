package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ScheduleOff disables a cron job
const ScheduleOff = "off"

// Schedules holds the cron specs of the periodic jobs
type Schedules struct {
	Sweep    string // recovery sweep for overdue assignments
	Export   string // nightly workbook export
	Sessions string // expired admin session cleanup
	Timezone string
}

// SessionCleaner removes expired admin sessions
type SessionCleaner interface {
	CleanupExpiredSessions(ctx context.Context) error
}

// jobTimeout bounds a single cron run
const jobTimeout = 5 * time.Minute

// StartScheduler registers the periodic jobs and starts the cron runner.
// A nil job or a spec of "off" skips that job. The caller stops the returned cron.
func StartScheduler(schedules Schedules, sweep *RecoverySweep, export *ExportJob, sessions SessionCleaner, log *zap.Logger) (*cron.Cron, error) {
	loc, err := time.LoadLocation(schedules.Timezone)
	if err != nil {
		log.Warn("[CRON] Unknown timezone, using UTC", zap.String("timezone", schedules.Timezone), zap.Error(err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	add := func(name, spec string, run func(ctx context.Context)) error {
		if spec == "" || spec == ScheduleOff {
			log.Info("[CRON] Job disabled", zap.String("job", name))
			return nil
		}
		_, err := c.AddFunc(spec, func() {
			ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
			defer cancel()
			run(ctx)
		})
		if err != nil {
			return fmt.Errorf("failed to schedule %s job (%q): %w", name, spec, err)
		}
		log.Info("[CRON] Job scheduled", zap.String("job", name), zap.String("spec", spec))
		return nil
	}

	if sweep != nil {
		if err := add("assignment-sweep", schedules.Sweep, func(ctx context.Context) { sweep.Run(ctx) }); err != nil {
			return nil, err
		}
	}
	if export != nil {
		if err := add("complaints-export", schedules.Export, func(ctx context.Context) { export.Run(ctx) }); err != nil {
			return nil, err
		}
	}
	if sessions != nil {
		if err := add("session-cleanup", schedules.Sessions, func(ctx context.Context) {
			if err := sessions.CleanupExpiredSessions(ctx); err != nil {
				log.Warn("[JOB] Session cleanup failed", zap.Error(err))
			}
		}); err != nil {
			return nil, err
		}
	}

	c.Start()
	log.Info("[CRON] Scheduler started", zap.Int("jobs", len(c.Entries())), zap.String("timezone", loc.String()))
	return c, nil
}
