package ports

import (
	"context"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/core/domain/model/request"
)

// RequestRepository is the local read model of the last fetched requests.
// The remote stays the source of truth; the read model is only ever replaced
// with what the remote reported.
type RequestRepository interface {
	// Save stores a detailed request, replacing any previous copy and its
	// list entry.
	Save(ctx context.Context, aggregate *request.Request) error

	// ReplaceSummaries replaces the request list with the given summaries.
	ReplaceSummaries(ctx context.Context, summaries []request.Summary) error

	// Get returns the detailed request. Fails with errs.ErrObjectNotFound when
	// it has not been fetched yet.
	Get(ctx context.Context, id kernel.ID) (*request.Request, error)

	// GetByOrder returns the detailed request that owns the order.
	GetByOrder(ctx context.Context, orderID kernel.ID) (*request.Request, error)
}
