package indicator

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"indicators/internal/config"
)

// Runner executes an operation by name.
type Runner interface {
	Run(ctx context.Context, name string) (Response, error)
}

type Scheduler struct {
	runner   Runner
	cfg      config.Scheduler
	location *time.Location
	// -----
	mu    sync.Mutex
	sched gocron.Scheduler
}

func (s *Scheduler) Start(ctx context.Context) error {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(s.location))
	if err != nil {
		return err
	}

	jobs := []struct {
		name string
		cron string
	}{
		{name: OperationUF, cron: s.cfg.UFCron},
		{name: OperationDolar, cron: s.cfg.DolarCron},
	}
	for _, j := range jobs {
		_, err = scheduler.NewJob(
			gocron.CronJob(j.cron, false),
			gocron.NewTask(s.runJob, j.name),
			gocron.WithName(j.name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			_ = scheduler.Shutdown()
			return err
		}
	}

	s.mu.Lock()
	s.sched = scheduler
	s.mu.Unlock()
	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) runJob(jobCtx context.Context, name string) {
	execID := uuid.NewString()
	fields := logrus.Fields{"job": name, "exec_id": execID}

	resp, err := s.runner.Run(jobCtx, name)
	if err != nil {
		logrus.WithFields(fields).WithError(err).Error("Scheduled job failed to start")
		return
	}
	entry := logrus.WithFields(fields).WithField("status", resp.StatusCode)
	if resp.StatusCode >= 400 {
		entry.Error("Scheduled job finished with failure")
		return
	}
	entry.Info("Scheduled job finished")
}

// Shutdown stops the scheduler once; later calls are no-ops.
func (s *Scheduler) Shutdown() error {
	s.mu.Lock()
	sched := s.sched
	s.sched = nil
	s.mu.Unlock()

	if sched == nil {
		return nil
	}
	return sched.Shutdown()
}

func (s *Scheduler) running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sched != nil
}

func NewScheduler(runner Runner, cfg config.Scheduler, location *time.Location) *Scheduler {
	if location == nil {
		location = time.UTC
	}
	return &Scheduler{runner: runner, cfg: cfg, location: location}
}
