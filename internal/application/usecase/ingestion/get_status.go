package ingestion

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
)

// GetStatusInput represents the input for getting ingestion status.
type GetStatusInput struct {
	UserID uuid.UUID
}

// GetStatusOutput represents the ingestion status of a user.
type GetStatusOutput struct {
	TransactionCount int64
	IsProcessing     bool
	Job              *Job
	LastOutcome      *Outcome
	HasError         bool
	Error            *ProcessingError
}

// GetStatusUseCase reports the running job and the last result of a user.
type GetStatusUseCase struct {
	transactionRepo adapter.TransactionRepository
	tracker         ProcessingTracker
}

// NewGetStatusUseCase creates a new GetStatusUseCase instance.
func NewGetStatusUseCase(transactionRepo adapter.TransactionRepository, tracker ProcessingTracker) *GetStatusUseCase {
	return &GetStatusUseCase{
		transactionRepo: transactionRepo,
		tracker:         tracker,
	}
}

// Execute retrieves the ingestion status for a user.
func (uc *GetStatusUseCase) Execute(ctx context.Context, input GetStatusInput) (*GetStatusOutput, error) {
	count, err := uc.transactionRepo.CountByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count transactions: %w", err)
	}

	job := uc.tracker.Current(input.UserID)
	lastErr := uc.tracker.LastError(input.UserID)

	return &GetStatusOutput{
		TransactionCount: count,
		IsProcessing:     job != nil,
		Job:              job,
		LastOutcome:      uc.tracker.LastOutcome(input.UserID),
		HasError:         lastErr != nil,
		Error:            lastErr,
	}, nil
}
