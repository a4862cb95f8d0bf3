package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/domain/entity"
)

// SummaryCacheKey identifies one memoized summary.
// Basis names the month-count basis the summary was computed with.
type SummaryCacheKey struct {
	UserID      uuid.UUID
	Basis       string
	Fingerprint string
	Income      string
}

// SummaryCache memoizes derived summaries per user.
// Invalidate must make every previously stored entry for the user unreachable.
type SummaryCache interface {
	// Get returns the cached summary, or nil on a miss.
	Get(ctx context.Context, key SummaryCacheKey) (*entity.DerivedSummary, error)

	// Set stores a summary.
	Set(ctx context.Context, key SummaryCacheKey, summary *entity.DerivedSummary) error

	// Invalidate drops all cached summaries of a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
