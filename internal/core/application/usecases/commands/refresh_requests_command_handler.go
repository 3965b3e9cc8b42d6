package commands

import (
	"context"
)

type RefreshRequestsCommandHandler struct {
	refresher RequestRefresher
}

func NewRefreshRequestsCommandHandler(refresher RequestRefresher) RefreshRequestsCommandHandler {
	return RefreshRequestsCommandHandler{refresher: refresher}
}

// Handle returns how many requests were refreshed.
func (h RefreshRequestsCommandHandler) Handle(ctx context.Context, command RefreshRequestsCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	if id := command.RequestID(); id != nil {
		if _, err := h.refresher.Refresh(ctx, *id); err != nil {
			return 0, err
		}
		return 1, nil
	}

	summaries, err := h.refresher.RefreshAll(ctx)
	if err != nil {
		return 0, err
	}
	return len(summaries), nil
}
