package jobs

import (
	"context"
	"errors"
	"log/slog"

	"dashboard/internal/core/application/usecases/commands"
	"dashboard/internal/pkg/errs"

	"github.com/robfig/cron/v3"
)

type RequestsRefresher interface {
	Handle(ctx context.Context, command commands.RefreshRequestsCommand) (int, error)
}

// RequestSyncJob re-reads the request list from the remote on a schedule so
// the read model stays current without a dashboard open.
type RequestSyncJob struct {
	handler  RequestsRefresher
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

func NewRequestSyncJob(handler RequestsRefresher, schedule string, logger *slog.Logger) *RequestSyncJob {
	return &RequestSyncJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "request_sync_job"),
	}
}

func (j *RequestSyncJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Request sync job started", "schedule", j.schedule)
	return nil
}

func (j *RequestSyncJob) run(ctx context.Context) {
	refreshed, err := j.handler.Handle(ctx, commands.NewRefreshAllRequestsCommand())
	if err != nil {
		// Without a configured session there is nothing to sync.
		if errors.Is(err, errs.ErrNotAuthenticated) {
			j.logger.DebugContext(ctx, "Request sync skipped", "error", err)
			return
		}
		j.logger.ErrorContext(ctx, "Request sync job failed", "error", err)
		return
	}
	j.logger.DebugContext(ctx, "Requests synced", "count", refreshed)
}

func (j *RequestSyncJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Request sync job stopped")
}
