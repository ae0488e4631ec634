package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the reminder job on a cron expression in the school's
// timezone. Overlapping runs are skipped.
type Scheduler struct {
	cron *cron.Cron
	log  *zap.Logger
}

func NewScheduler(spec string, job *ReminderJob, loc *time.Location, log *zap.Logger) (*Scheduler, error) {
	cronLog := cron.PrintfLogger(zap.NewStdLog(log))

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		if _, err := job.Run(ctx); err != nil {
			log.Error("reminder job failed", zap.Error(err))
		}
	})
	if err != nil {
		return nil, fmt.Errorf("reminder cron %q: %w", spec, err)
	}

	return &Scheduler{cron: c, log: log}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("reminder scheduler started")
}

// Stop waits for a running job or ctx, whichever ends first.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
