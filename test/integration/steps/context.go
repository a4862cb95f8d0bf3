// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finflow/backend/config"
	"github.com/finflow/backend/internal/infra/dependency"
	"github.com/finflow/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

// Suite-wide fakes, reset before each scenario.
var (
	testDB        *mock.Db
	testRedis     *mock.Redis
	testIngestion *mock.IngestionApi
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	userID      uuid.UUID
	accessToken string

	cfg *config.Config
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
		_ = os.Setenv("ENV", "test")

		testDB = mock.NewDb()
		testRedis = mock.NewRedis()
		testIngestion = mock.NewIngestionApi()
	})

	ctx.AfterSuite(func() {
		testIngestion.Close()
		testRedis.Close()
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := testDB.ClearDB(); err != nil {
			return ctx, err
		}
		if err := testRedis.Clear(); err != nil {
			return ctx, err
		}
		testIngestion.Reset()

		cfg := config.Load()
		cfg.Server.Environment = "test"
		cfg.Auth.JWTSecret = testJWTSecret
		cfg.Ingestion.URL = testIngestion.URL()
		cfg.Gemini.APIKey = ""

		injector, err := dependency.NewInjector(cfg, testDB.DbConn, testRedis.Client)
		if err != nil {
			return ctx, fmt.Errorf("failed to wire dependencies: %w", err)
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			cfg:            cfg,
			server:         httptest.NewServer(injector.Router.Setup("test")),
		}

		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerResponseSteps(ctx)
	registerDataSteps(ctx)
	registerIngestionSteps(ctx)
}
