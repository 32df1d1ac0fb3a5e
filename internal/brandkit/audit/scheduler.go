package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// OrphanCounter counts projects that have no kit.
type OrphanCounter interface {
	CountOrphans(ctx context.Context) (int64, error)
}

// Scheduler periodically reports orphaned projects. It never modifies data.
type Scheduler struct {
	counter OrphanCounter
	logger  *zap.Logger
	timeout time.Duration
	cron    *cron.Cron
}

func NewScheduler(counter OrphanCounter, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.With(zap.String("component", "orphan_audit"))
	return &Scheduler{
		counter: counter,
		logger:  logger,
		timeout: 30 * time.Second,
		cron:    cron.New(cron.WithSeconds(), cron.WithLogger(cronLogger{logger.Sugar()})),
	}
}

// Start registers the audit under a six-field cron spec (seconds first) and starts
// the scheduler.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("invalid audit schedule %q: %w", spec, err)
	}
	s.cron.Start()
	s.logger.Info("orphan audit scheduled", zap.String("schedule", spec))
	return nil
}

// Stop halts scheduling and waits for a running audit until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

// RunOnce counts orphaned projects and logs the result.
func (s *Scheduler) RunOnce(ctx context.Context) (int64, error) {
	n, err := s.counter.CountOrphans(ctx)
	if err != nil {
		s.logger.Error("orphan audit failed", zap.Error(err))
		return 0, err
	}
	if n > 0 {
		s.logger.Warn("projects without a brand kit", zap.Int64("orphaned_projects", n))
	} else {
		s.logger.Info("no orphaned projects")
	}
	return n, nil
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()
	_, _ = s.RunOnce(ctx)
}

// cronLogger routes cron's own messages to zap.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Debugw(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
