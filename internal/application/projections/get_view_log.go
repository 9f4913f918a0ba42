package projections

import (
	"context"
	"sort"

	domain "wrapped/internal/domain/view"
)

// GetViewLogResult carries the query result.
type GetViewLogResult struct {
	Entries    []domain.Entry
	TotalViews int
}

// GetViewLogDeps holds dependencies for GetViewLog.
type GetViewLogDeps struct {
	ViewStore ViewStore
}

// QueryGetViewLog retrieves the full view log, most recent first, plus the
// summed view count for the admin header.
// POST: Entries sorted by timestamp descending; ties broken by code
func QueryGetViewLog(ctx context.Context, deps GetViewLogDeps) (GetViewLogResult, error) {
	entries, err := deps.ViewStore.List(ctx)
	if err != nil {
		return GetViewLogResult{}, err
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].Code < entries[j].Code
	})
	total := 0
	for _, e := range entries {
		total += e.ViewCount
	}
	return GetViewLogResult{Entries: entries, TotalViews: total}, nil
}
