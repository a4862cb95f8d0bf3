// Package dependency provides dependency injection for the application.
package dependency

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"gorm.io/gorm"

	"github.com/finflow/backend/config"
	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/application/usecase/events"
	"github.com/finflow/backend/internal/application/usecase/ingestion"
	"github.com/finflow/backend/internal/application/usecase/insight"
	"github.com/finflow/backend/internal/application/usecase/profile"
	"github.com/finflow/backend/internal/application/usecase/summary"
	"github.com/finflow/backend/internal/application/usecase/transaction"
	"github.com/finflow/backend/internal/domain/aggregation"
	infradb "github.com/finflow/backend/internal/infra/db"
	"github.com/finflow/backend/internal/infra/server/router"
	"github.com/finflow/backend/internal/integration/adapters"
	"github.com/finflow/backend/internal/integration/cache"
	"github.com/finflow/backend/internal/integration/entrypoint/controller"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
	ingestionclient "github.com/finflow/backend/internal/integration/ingestion"
	"github.com/finflow/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config                    *config.Config
	DB                        *gorm.DB
	Router                    *router.Router
	RateLimiter               *middleware.RateLimiter
	IngestionCompletedHandler *events.IngestionCompletedHandler
}

// NewInjector creates a new dependency injector with all dependencies wired.
// redisClient may be nil, which disables the summary cache.
func NewInjector(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*Injector, error) {
	c := dig.New()

	providers := []any{
		func() *config.Config { return cfg },
		func() *gorm.DB { return db },
		func() *redis.Client { return redisClient },
		summaryOptions,

		// Repositories and adapters
		persistence.NewTransactionRepository,
		persistence.NewProfileRepository,
		newSummaryCache,
		func(cfg *config.Config) adapter.SessionVerifier {
			return adapters.NewSessionVerifier(cfg.Auth.JWTSecret, cfg.Auth.Audience, cfg.Auth.Issuer)
		},
		func(cfg *config.Config) adapter.IngestionService {
			return ingestionclient.NewClient(cfg.Ingestion.URL, cfg.Ingestion.Timeout)
		},
		func(cfg *config.Config) adapter.InsightGenerator {
			return adapters.NewGeminiService(cfg.Gemini.APIKey, cfg.Gemini.Model)
		},
		func() ingestion.ProcessingTracker { return ingestion.NewInMemoryProcessingTracker() },

		// Use cases
		func(txRepo adapter.TransactionRepository, profileRepo adapter.ProfileRepository, summaryCache adapter.SummaryCache, opts []aggregation.Option) *summary.GetSummaryUseCase {
			return summary.NewGetSummaryUseCase(txRepo, profileRepo, summaryCache, opts...)
		},
		func(cfg *config.Config, opts []aggregation.Option) *summary.ComputeSummaryUseCase {
			return summary.NewComputeSummaryUseCase(cfg.Summary.MaxBatchSize, opts...)
		},
		transaction.NewListTransactionsUseCase,
		profile.NewGetProfileUseCase,
		func(txRepo adapter.TransactionRepository, profileRepo adapter.ProfileRepository, generator adapter.InsightGenerator, opts []aggregation.Option) *insight.GenerateInsightsUseCase {
			return insight.NewGenerateInsightsUseCase(txRepo, profileRepo, generator, opts...)
		},
		func(cfg *config.Config, service adapter.IngestionService, summaryCache adapter.SummaryCache, tracker ingestion.ProcessingTracker) *ingestion.UploadStatementUseCase {
			return ingestion.NewUploadStatementUseCase(service, summaryCache, tracker, cfg.Ingestion.MaxStatementBytes)
		},
		ingestion.NewRequestForecastUseCase,
		ingestion.NewGetStatusUseCase,
		events.NewIngestionCompletedHandler,

		// Controllers and middleware
		newHealthController,
		controller.NewSummaryController,
		controller.NewTransactionController,
		controller.NewProfileController,
		controller.NewInsightController,
		controller.NewIngestionController,
		func(cfg *config.Config) *middleware.RateLimiter {
			return middleware.NewRateLimiter(cfg.Ingestion.RateLimit, cfg.Ingestion.RateLimitWindow)
		},
		middleware.NewAuthMiddleware,
		router.NewRouter,
	}

	for _, p := range providers {
		if err := c.Provide(p); err != nil {
			return nil, fmt.Errorf("failed to register provider: %w", err)
		}
	}

	var injector *Injector
	err := c.Invoke(func(
		r *router.Router,
		limiter *middleware.RateLimiter,
		handler *events.IngestionCompletedHandler,
	) {
		injector = &Injector{
			Config:                    cfg,
			DB:                        db,
			Router:                    r,
			RateLimiter:               limiter,
			IngestionCompletedHandler: handler,
		}
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build dependency graph: %w", err)
	}

	return injector, nil
}

// summaryOptions turns the summary configuration into engine options.
// Zero shard size and worker count keep the engine defaults.
func summaryOptions(cfg *config.Config) ([]aggregation.Option, error) {
	basis, err := aggregation.ParseSpanBasis(cfg.Summary.SpanBasis)
	if err != nil {
		return nil, err
	}

	opts := []aggregation.Option{aggregation.WithSpanBasis(basis)}
	if cfg.Summary.ShardSize > 0 {
		opts = append(opts, aggregation.WithShardSize(cfg.Summary.ShardSize))
	}
	if cfg.Summary.MaxWorkers > 0 {
		opts = append(opts, aggregation.WithMaxWorkers(cfg.Summary.MaxWorkers))
	}
	return opts, nil
}

func newSummaryCache(cfg *config.Config, client *redis.Client) adapter.SummaryCache {
	if client == nil {
		return nil
	}
	return cache.NewSummaryCache(client, cfg.Redis.TTL)
}

func newHealthController(db *gorm.DB, client *redis.Client) *controller.HealthController {
	var redisHealthChecker controller.HealthChecker
	if client != nil {
		redisHealthChecker = infradb.RedisHealthCheck(client)
	}
	return controller.NewHealthController(infradb.DatabaseHealthCheck(db), redisHealthChecker)
}
