package dto

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/usecase/ingestion"
	"github.com/finflow/backend/internal/domain/entity"
)

// LoanRequest represents one loan entered before a forecast.
type LoanRequest struct {
	Type            string         `json:"type"`
	MonthlyEMI      FlexibleString `json:"monthly_emi"`
	InterestRatePct FlexibleString `json:"interest_rate_pct"`
	DurationMonths  int            `json:"duration_months" binding:"gte=0"`
}

// ForecastRequest represents the request body for a spending forecast.
type ForecastRequest struct {
	MonthlyIncome    FlexibleString `json:"monthly_income" binding:"required"`
	JobTitle         string         `json:"job_title"`
	EducationLevel   string         `json:"education_level"`
	EmploymentStatus string         `json:"employment_status"`
	CreditScore      int            `json:"credit_score" binding:"gte=0,lte=900"`
	Loans            []LoanRequest  `json:"loans" binding:"dive"`
}

// ToInput converts the request to use case input.
func (r *ForecastRequest) ToInput() (ingestion.RequestForecastInput, error) {
	loans := make([]entity.Loan, len(r.Loans))
	for i, l := range r.Loans {
		emi, err := decimalOrZero(l.MonthlyEMI)
		if err != nil {
			return ingestion.RequestForecastInput{}, fmt.Errorf("loans[%d].monthly_emi: %w", i, err)
		}
		rate, err := decimalOrZero(l.InterestRatePct)
		if err != nil {
			return ingestion.RequestForecastInput{}, fmt.Errorf("loans[%d].interest_rate_pct: %w", i, err)
		}
		loans[i] = entity.Loan{
			Type:            l.Type,
			MonthlyEMI:      emi,
			InterestRatePct: rate,
			DurationMonths:  l.DurationMonths,
		}
	}

	return ingestion.RequestForecastInput{
		MonthlyIncome:    string(r.MonthlyIncome),
		JobTitle:         r.JobTitle,
		EducationLevel:   r.EducationLevel,
		EmploymentStatus: r.EmploymentStatus,
		CreditScore:      r.CreditScore,
		Loans:            loans,
	}, nil
}

func decimalOrZero(s FlexibleString) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(string(s))
}

// StatementUploadResponse represents the response for a statement upload.
type StatementUploadResponse struct {
	JobID   string `json:"job_id"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

// ToStatementUploadResponse converts an UploadStatementOutput to its response DTO.
func ToStatementUploadResponse(output *ingestion.UploadStatementOutput) StatementUploadResponse {
	return StatementUploadResponse{
		JobID:   output.JobID,
		Count:   output.Count,
		Message: fmt.Sprintf("Imported %d transactions", output.Count),
	}
}

// ForecastAlertResponse represents an alert raised by the forecast model.
type ForecastAlertResponse struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

// ForecastResponse represents the response for a forecast request.
type ForecastResponse struct {
	JobID       string                  `json:"job_id"`
	Prediction  string                  `json:"prediction"`
	Actual      string                  `json:"actual"`
	Suggestions []string                `json:"suggestions"`
	Alerts      []ForecastAlertResponse `json:"alerts"`
}

// ToForecastResponse converts a RequestForecastOutput to its response DTO.
func ToForecastResponse(output *ingestion.RequestForecastOutput) ForecastResponse {
	alerts := make([]ForecastAlertResponse, len(output.Alerts))
	for i, a := range output.Alerts {
		alerts[i] = ForecastAlertResponse{
			Date:        a.Date,
			Description: a.Description,
			Reason:      a.Reason,
		}
	}

	suggestions := output.Suggestions
	if suggestions == nil {
		suggestions = []string{}
	}

	return ForecastResponse{
		JobID:       output.JobID,
		Prediction:  output.Prediction.StringFixed(2),
		Actual:      output.Actual.StringFixed(2),
		Suggestions: suggestions,
		Alerts:      alerts,
	}
}

// IngestionJobResponse represents a running ingestion job.
type IngestionJobResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	StartedAt string `json:"started_at"`
}

// IngestionOutcomeResponse represents the last successful ingestion job.
type IngestionOutcomeResponse struct {
	Kind       string `json:"kind"`
	Count      int    `json:"count"`
	FinishedAt string `json:"finished_at"`
}

// ProcessingErrorResponse represents an ingestion failure in the response.
type ProcessingErrorResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
	Timestamp string `json:"timestamp"`
}

// IngestionStatusResponse represents the response for the ingestion status.
type IngestionStatusResponse struct {
	TransactionCount int64                     `json:"transaction_count"`
	IsProcessing     bool                      `json:"is_processing"`
	Job              *IngestionJobResponse     `json:"job,omitempty"`
	LastOutcome      *IngestionOutcomeResponse `json:"last_outcome,omitempty"`
	HasError         bool                      `json:"has_error"`
	Error            *ProcessingErrorResponse  `json:"error,omitempty"`
}

// ToIngestionStatusResponse converts a GetStatusOutput to its response DTO.
func ToIngestionStatusResponse(output *ingestion.GetStatusOutput) IngestionStatusResponse {
	response := IngestionStatusResponse{
		TransactionCount: output.TransactionCount,
		IsProcessing:     output.IsProcessing,
		HasError:         output.HasError,
	}

	if output.Job != nil {
		response.Job = &IngestionJobResponse{
			ID:        output.Job.ID,
			Kind:      string(output.Job.Kind),
			StartedAt: formatTimestamp(output.Job.StartedAt),
		}
	}

	if output.LastOutcome != nil {
		response.LastOutcome = &IngestionOutcomeResponse{
			Kind:       string(output.LastOutcome.Kind),
			Count:      output.LastOutcome.Count,
			FinishedAt: formatTimestamp(output.LastOutcome.FinishedAt),
		}
	}

	if output.Error != nil {
		response.Error = &ProcessingErrorResponse{
			Code:      output.Error.Code,
			Message:   output.Error.Message,
			Retryable: output.Error.Retryable,
			Timestamp: formatTimestamp(output.Error.Timestamp),
		}
	}

	return response
}
