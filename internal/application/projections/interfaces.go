package projections

import (
	"context"

	domainResponse "wrapped/internal/domain/response"
	domainView "wrapped/internal/domain/view"
)

// ViewStore interface for view log queries.
type ViewStore interface {
	List(ctx context.Context) ([]domainView.Entry, error)
}

// ResponseStore interface for feedback response queries.
type ResponseStore interface {
	List(ctx context.Context) ([]domainResponse.Entry, error)
}
