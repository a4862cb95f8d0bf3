package ingestion

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/adapter"
	"github.com/finflow/backend/internal/domain/aggregation"
	"github.com/finflow/backend/internal/domain/entity"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

// NoLoanType is sent as loan type when the user has no loans.
const NoLoanType = "None"

// RequestForecastInput represents the profile submitted for a spending forecast.
type RequestForecastInput struct {
	UserID           uuid.UUID
	MonthlyIncome    string
	JobTitle         string
	EducationLevel   string
	EmploymentStatus string
	CreditScore      int
	Loans            []entity.Loan
}

// RequestForecastOutput represents the forecast returned by the ingestion service.
type RequestForecastOutput struct {
	JobID       string
	Prediction  decimal.Decimal
	Actual      decimal.Decimal
	Suggestions []string
	Alerts      []adapter.ForecastAlert
}

// LoanSummary is the single-loan view the prediction endpoint accepts.
type LoanSummary struct {
	HasLoan         bool
	Type            string
	TermMonths      int
	MonthlyEMI      decimal.Decimal
	InterestRatePct decimal.Decimal
}

// SummarizeLoans collapses a loan list: EMIs are summed, interest rates
// averaged, the longest term kept and the first loan's type reported.
func SummarizeLoans(loans []entity.Loan) LoanSummary {
	if len(loans) == 0 {
		return LoanSummary{
			Type:            NoLoanType,
			MonthlyEMI:      decimal.Zero,
			InterestRatePct: decimal.Zero,
		}
	}

	summary := LoanSummary{
		HasLoan:    true,
		Type:       loans[0].Type,
		MonthlyEMI: decimal.Zero,
	}
	totalInterest := decimal.Zero
	for _, l := range loans {
		summary.MonthlyEMI = summary.MonthlyEMI.Add(l.MonthlyEMI)
		totalInterest = totalInterest.Add(l.InterestRatePct)
		summary.TermMonths = max(summary.TermMonths, l.DurationMonths)
	}
	summary.InterestRatePct = totalInterest.Div(decimal.NewFromInt(int64(len(loans))))
	if summary.Type == "" {
		summary.Type = NoLoanType
	}
	return summary
}

// RequestForecastUseCase submits the user's profile to the prediction endpoint.
type RequestForecastUseCase struct {
	ingestionService adapter.IngestionService
	summaryCache     adapter.SummaryCache
	tracker          ProcessingTracker
}

// NewRequestForecastUseCase creates a new RequestForecastUseCase instance.
func NewRequestForecastUseCase(
	ingestionService adapter.IngestionService,
	summaryCache adapter.SummaryCache,
	tracker ProcessingTracker,
) *RequestForecastUseCase {
	return &RequestForecastUseCase{
		ingestionService: ingestionService,
		summaryCache:     summaryCache,
		tracker:          tracker,
	}
}

// Execute validates the profile, aggregates loans and requests the forecast.
func (uc *RequestForecastUseCase) Execute(ctx context.Context, input RequestForecastInput) (*RequestForecastOutput, error) {
	income, ok := aggregation.ParseIncome(input.MonthlyIncome)
	if !ok || income.IsNegative() {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeInvalidMonthlyIncome,
			"monthly income must be a non-negative number",
			domainerror.ErrInvalidMonthlyIncome,
		)
	}

	job, started := uc.tracker.Start(input.UserID, JobKindForecast)
	if !started {
		return nil, domainerror.NewIngestionError(
			domainerror.ErrCodeIngestionInProgress,
			"an ingestion job is already running",
			domainerror.ErrIngestionInProgress,
		)
	}

	loans := SummarizeLoans(input.Loans)
	result, err := uc.ingestionService.RequestForecast(ctx, &adapter.ForecastRequest{
		UserID:              input.UserID,
		MonthlyIncome:       income,
		JobTitle:            input.JobTitle,
		EducationLevel:      input.EducationLevel,
		EmploymentStatus:    input.EmploymentStatus,
		HasLoan:             loans.HasLoan,
		LoanType:            loans.Type,
		LoanTermMonths:      loans.TermMonths,
		MonthlyEMI:          loans.MonthlyEMI,
		LoanInterestRatePct: loans.InterestRatePct,
		CreditScore:         input.CreditScore,
	})
	if err != nil {
		uc.tracker.Fail(input.UserID, classifyError(err))
		slog.Error("Forecast request failed",
			"user_id", input.UserID,
			"job_id", job.ID,
			"error", err,
		)
		return nil, upstreamError(err)
	}

	uc.tracker.Finish(input.UserID, &Outcome{
		Kind:       JobKindForecast,
		FinishedAt: time.Now().UTC(),
	})
	invalidateSummaries(ctx, uc.summaryCache, input.UserID)

	return &RequestForecastOutput{
		JobID:       job.ID,
		Prediction:  result.Prediction,
		Actual:      result.Actual,
		Suggestions: result.Suggestions,
		Alerts:      result.Alerts,
	}, nil
}
