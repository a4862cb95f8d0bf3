package ingestion

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/entity"
)

type fakeIngestionService struct {
	mu          sync.Mutex
	uploads     []*adapter.StatementUpload
	uploadBody  []byte
	forecasts   []*adapter.ForecastRequest
	uploadErr   error
	forecastErr error
	count       int
	forecast    *adapter.ForecastResult
}

func (f *fakeIngestionService) UploadStatement(_ context.Context, upload *adapter.StatementUpload) (*adapter.UploadResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.uploads = append(f.uploads, upload)
	if upload.Content != nil {
		f.uploadBody, _ = io.ReadAll(upload.Content)
	}
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return &adapter.UploadResult{Count: f.count}, nil
}

func (f *fakeIngestionService) RequestForecast(_ context.Context, request *adapter.ForecastRequest) (*adapter.ForecastResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.forecasts = append(f.forecasts, request)
	if f.forecastErr != nil {
		return nil, f.forecastErr
	}
	if f.forecast != nil {
		return f.forecast, nil
	}
	return &adapter.ForecastResult{}, nil
}

type fakeSummaryCache struct {
	mu          sync.Mutex
	invalidated []uuid.UUID
	err         error
}

func (f *fakeSummaryCache) Get(context.Context, adapter.SummaryCacheKey) (*entity.DerivedSummary, error) {
	return nil, nil
}

func (f *fakeSummaryCache) Set(context.Context, adapter.SummaryCacheKey, *entity.DerivedSummary) error {
	return nil
}

func (f *fakeSummaryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.invalidated = append(f.invalidated, userID)
	return f.err
}

type fakeTransactionRepository struct {
	count int64
	err   error
}

func (f *fakeTransactionRepository) FindByUser(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	return nil, f.err
}

func (f *fakeTransactionRepository) CountByUser(context.Context, uuid.UUID) (int64, error) {
	return f.count, f.err
}
