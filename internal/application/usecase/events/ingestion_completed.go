// Package events contains handlers for messages published by other services.
package events

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
)

// IngestionCompletedInput identifies the user whose stored data changed.
type IngestionCompletedInput struct {
	UserID uuid.UUID
	Kind   string
	Count  int
}

// IngestionCompletedHandler drops cached summaries once the ingestion
// service has written new rows for a user.
type IngestionCompletedHandler struct {
	summaryCache adapter.SummaryCache
}

// NewIngestionCompletedHandler creates a new IngestionCompletedHandler instance.
func NewIngestionCompletedHandler(summaryCache adapter.SummaryCache) *IngestionCompletedHandler {
	return &IngestionCompletedHandler{
		summaryCache: summaryCache,
	}
}

// Execute invalidates the user's summaries. An error asks the consumer to redeliver.
func (h *IngestionCompletedHandler) Execute(ctx context.Context, input IngestionCompletedInput) error {
	if input.UserID == uuid.Nil {
		return fmt.Errorf("ingestion event without user id")
	}
	if h.summaryCache == nil {
		return nil
	}
	if err := h.summaryCache.Invalidate(ctx, input.UserID); err != nil {
		return fmt.Errorf("failed to invalidate summaries: %w", err)
	}

	slog.InfoContext(ctx, "Invalidated summaries after ingestion",
		"user_id", input.UserID,
		"kind", input.Kind,
		"count", input.Count,
	)
	return nil
}
