package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// Job is a unit of scheduled work. The context is cancelled when the scheduler stops.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// Scheduler runs registered jobs on cron specs (standard 5-field format).
type Scheduler struct {
	cron   *cron.Cron
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a scheduler. Overlapping runs of the same job are skipped
// and panics are recovered and logged.
func New() *Scheduler {
	return newScheduler(slog.Default())
}

func newScheduler(log *slog.Logger) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	logger := cronLogger{log: log.With("component", "scheduler")}
	return &Scheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(
				cron.Recover(logger),
				cron.SkipIfStillRunning(logger),
			),
		),
		ctx:    ctx,
		cancel: cancel,
	}
}

// cronLogger writes cron's internal logs through slog
type cronLogger struct {
	log *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.log.Debug(msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.log.Error(msg, append(keysAndValues, "error", err)...)
}

// Register schedules job on spec.
func (s *Scheduler) Register(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.execute(job)
	})
	if err != nil {
		return fmt.Errorf("스케줄 등록 실패 job=%s spec=%s: %w", job.Name(), spec, err)
	}

	slog.Info("스케줄 작업 등록", "job", job.Name(), "spec", spec)
	return nil
}

// RunNow executes job once synchronously, outside the cron schedule.
func (s *Scheduler) RunNow(job Job) {
	s.execute(job)
}

func (s *Scheduler) execute(job Job) {
	start := time.Now()
	log := slog.With("job", job.Name())

	if err := job.Run(s.ctx); err != nil {
		log.Error("스케줄 작업 실패", "error", err, "elapsed", time.Since(start).String())
		return
	}
	log.Info("스케줄 작업 완료", "elapsed", time.Since(start).String())
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("스케줄러 시작", "jobs", len(s.cron.Entries()))
}

// Stop stops the scheduler and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.cancel()
	done := s.cron.Stop().Done()

	select {
	case <-done:
		slog.Info("스케줄러 종료 완료")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("스케줄러 종료 대기 시간 초과: %w", ctx.Err())
	}
}
