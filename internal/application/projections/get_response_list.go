package projections

import (
	"context"
	"sort"

	domain "wrapped/internal/domain/response"
)

// GetResponseListResult carries the query result.
type GetResponseListResult struct {
	Entries []domain.Entry
}

// GetResponseListDeps holds dependencies for GetResponseList.
type GetResponseListDeps struct {
	ResponseStore ResponseStore
}

// QueryGetResponseList retrieves all feedback responses, most recent first.
// POST: Entries sorted by timestamp descending; ties broken by member id
func QueryGetResponseList(ctx context.Context, deps GetResponseListDeps) (GetResponseListResult, error) {
	entries, err := deps.ResponseStore.List(ctx)
	if err != nil {
		return GetResponseListResult{}, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].MemberID < entries[j].MemberID
	})
	return GetResponseListResult{Entries: entries}, nil
}
