package summary

import (
	"context"

	"github.com/google/uuid"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/entity"
)

type fakeTransactionRepository struct {
	transactions []*entity.Transaction
	err          error
	calls        int
}

func (f *fakeTransactionRepository) FindByUser(context.Context, uuid.UUID) ([]*entity.Transaction, error) {
	f.calls++
	return f.transactions, f.err
}

func (f *fakeTransactionRepository) CountByUser(context.Context, uuid.UUID) (int64, error) {
	return int64(len(f.transactions)), f.err
}

type fakeProfileRepository struct {
	profile *entity.Profile
	err     error
	calls   int
}

func (f *fakeProfileRepository) FindLatestByUser(context.Context, uuid.UUID) (*entity.Profile, error) {
	f.calls++
	return f.profile, f.err
}

type fakeSummaryCache struct {
	entries map[adapter.SummaryCacheKey]*entity.DerivedSummary
	getErr  error
	sets    int
}

func newFakeSummaryCache() *fakeSummaryCache {
	return &fakeSummaryCache{entries: make(map[adapter.SummaryCacheKey]*entity.DerivedSummary)}
}

func (f *fakeSummaryCache) Get(_ context.Context, key adapter.SummaryCacheKey) (*entity.DerivedSummary, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.entries[key], nil
}

func (f *fakeSummaryCache) Set(_ context.Context, key adapter.SummaryCacheKey, summary *entity.DerivedSummary) error {
	f.sets++
	f.entries[key] = summary
	return nil
}

func (f *fakeSummaryCache) Invalidate(_ context.Context, userID uuid.UUID) error {
	for key := range f.entries {
		if key.UserID == userID {
			delete(f.entries, key)
		}
	}
	return nil
}

func storedBatch(userID uuid.UUID, raws ...entity.RawTransaction) []*entity.Transaction {
	out := make([]*entity.Transaction, len(raws))
	for i, raw := range raws {
		out[i] = entity.NewTransaction(userID, raw)
	}
	return out
}
