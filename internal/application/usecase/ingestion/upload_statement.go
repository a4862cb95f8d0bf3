package ingestion

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// DefaultMaxStatementBytes is the upload limit used when none is configured.
const DefaultMaxStatementBytes int64 = 10 << 20

var allowedStatementExtensions = map[string]bool{
	".pdf": true,
	".csv": true,
}

// UploadStatementInput represents the input for uploading a bank statement.
type UploadStatementInput struct {
	UserID   uuid.UUID
	Filename string
	Size     int64
	Content  io.Reader
}

// UploadStatementOutput represents the output of a statement upload.
type UploadStatementOutput struct {
	JobID string
	Count int
}

// UploadStatementUseCase forwards a statement to the ingestion service.
type UploadStatementUseCase struct {
	ingestionService adapter.IngestionService
	summaryCache     adapter.SummaryCache
	tracker          ProcessingTracker
	maxBytes         int64
}

// NewUploadStatementUseCase creates a new UploadStatementUseCase instance.
// summaryCache may be nil when caching is disabled.
func NewUploadStatementUseCase(
	ingestionService adapter.IngestionService,
	summaryCache adapter.SummaryCache,
	tracker ProcessingTracker,
	maxBytes int64,
) *UploadStatementUseCase {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxStatementBytes
	}
	return &UploadStatementUseCase{
		ingestionService: ingestionService,
		summaryCache:     summaryCache,
		tracker:          tracker,
		maxBytes:         maxBytes,
	}
}

// Execute validates the file and forwards it.
func (uc *UploadStatementUseCase) Execute(ctx context.Context, input UploadStatementInput) (*UploadStatementOutput, error) {
	if input.Content == nil || strings.TrimSpace(input.Filename) == "" {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeMissingStatementFile,
			"statement file is required",
			domainerror.ErrMissingStatementFile,
		)
	}

	if !allowedStatementExtensions[strings.ToLower(filepath.Ext(input.Filename))] {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeUnsupportedStatementType,
			"statement must be a .pdf or .csv file",
			domainerror.ErrUnsupportedStatementType,
		)
	}

	if input.Size > uc.maxBytes {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeStatementTooLarge,
			"statement file exceeds the upload limit",
			domainerror.ErrStatementTooLarge,
		)
	}

	job, ok := uc.tracker.Start(input.UserID, JobKindStatement)
	if !ok {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeIngestionInProgress,
			"an ingestion job is already running",
			domainerror.ErrIngestionInProgress,
		)
	}

	result, err := uc.ingestionService.UploadStatement(ctx, &adapter.StatementUpload{
		UserID:   input.UserID,
		Filename: filepath.Base(input.Filename),
		Content:  io.LimitReader(input.Content, uc.maxBytes+1),
	})
	if err != nil {
		uc.tracker.Fail(input.UserID, classifyError(err))
		slog.Error("Statement upload failed",
			"user_id", input.UserID,
			"job_id", job.ID,
			"error", err,
		)
		return nil, upstreamError(err)
	}

	uc.tracker.Finish(input.UserID, &Outcome{
		Kind:       JobKindStatement,
		Count:      result.Count,
		FinishedAt: time.Now().UTC(),
	})
	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	slog.Info("Statement ingested",
		"user_id", input.UserID,
		"job_id", job.ID,
		"count", result.Count,
	)

	return &UploadStatementOutput{
		JobID: job.ID,
		Count: result.Count,
	}, nil
}

// upstreamError maps an ingestion service failure to a coded error.
func upstreamError(err error) error {
	if errors.Is(err, domainerror.ErrIngestionRejected) {
		return domainerror.NewIngestionError(
			domainerror.ErrCodeIngestionRejected,
			"ingestion service rejected the request",
			err,
		)
	}
	return domainerror.NewIngestionError(
		domainerror.ErrCodeIngestionUnavailable,
		"ingestion service unavailable",
		err,
	)
}

// invalidateSummaries drops the user's cached summaries; failures only log.
func invalidateSummaries(ctx context.Context, cache adapter.SummaryCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate cached summaries",
			"user_id", userID,
			"error", err,
		)
	}
}
