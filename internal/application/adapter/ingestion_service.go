package adapter

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatementUpload is a bank statement file forwarded to the ingestion service.
type StatementUpload struct {
	UserID   uuid.UUID
	Filename string
	Content  io.Reader
}

// UploadResult is the ingestion service's answer to a statement upload.
type UploadResult struct {
	Count int
}

// ForecastRequest carries the financial profile the prediction endpoint expects.
type ForecastRequest struct {
	UserID              uuid.UUID
	MonthlyIncome       decimal.Decimal
	JobTitle            string
	EducationLevel      string
	EmploymentStatus    string
	HasLoan             bool
	LoanType            string
	LoanTermMonths      int
	MonthlyEMI          decimal.Decimal
	LoanInterestRatePct decimal.Decimal
	CreditScore         int
}

// ForecastAlert is an unusual expense flagged by the prediction endpoint.
type ForecastAlert struct {
	Date        string
	Description string
	Reason      string
}

// ForecastResult is the prediction returned by the ingestion service.
type ForecastResult struct {
	Prediction  decimal.Decimal
	Actual      decimal.Decimal
	Suggestions []string
	Alerts      []ForecastAlert
}

// IngestionService defines the interface to the external statement/prediction service.
type IngestionService interface {
	// UploadStatement sends a statement file for parsing; the service writes the rows.
	UploadStatement(ctx context.Context, upload *StatementUpload) (*UploadResult, error)

	// RequestForecast asks for a next-month spending prediction; the service writes the profile row.
	RequestForecast(ctx context.Context, request *ForecastRequest) (*ForecastResult, error)
}
