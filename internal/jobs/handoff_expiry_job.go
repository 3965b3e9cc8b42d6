package jobs

import (
	"context"
	"log/slog"
	"time"

	"dashboard/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

type HandoffExpirer interface {
	Handle(ctx context.Context, command commands.ExpireHandoffsCommand) (int, error)
}

// HandoffExpiryJob abandons locker handoffs whose door was opened but never
// confirmed closed within ttl.
type HandoffExpiryJob struct {
	handler  HandoffExpirer
	schedule string
	ttl      time.Duration
	now      func() time.Time
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewHandoffExpiryJob(handler HandoffExpirer, schedule string, ttl time.Duration, logger *slog.Logger) *HandoffExpiryJob {
	return &HandoffExpiryJob{
		handler:  handler,
		schedule: schedule,
		ttl:      ttl,
		now:      time.Now,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "handoff_expiry_job"),
	}
}

func (j *HandoffExpiryJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Handoff expiry job started", "schedule", j.schedule, "ttl", j.ttl)
	return nil
}

func (j *HandoffExpiryJob) run(ctx context.Context) {
	cmd, err := commands.NewExpireHandoffsCommand(j.now(), j.ttl)
	if err != nil {
		j.logger.ErrorContext(ctx, "Handoff expiry job misconfigured", "error", err)
		return
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Handoff expiry job failed", "error", err)
		return
	}
	if expired > 0 {
		j.logger.WarnContext(ctx, "Abandoned handoffs left open", "count", expired)
	}
}

func (j *HandoffExpiryJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Handoff expiry job stopped")
}
