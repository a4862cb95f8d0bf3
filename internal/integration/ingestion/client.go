// Package ingestion implements the HTTP client of the statement/prediction service.
package ingestion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finflow/backend/internal/application/adapter"
	domainerror "github.com/finflow/backend/internal/domain/error"
)

const (
	uploadPath  = "/upload"
	predictPath = "/predict"

	statusSuccess = "success"
	statusError   = "error"
)

// Client implements adapter.IngestionService over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new ingestion service client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

type uploadResponse struct {
	Status  string `json:"status"`
	Count   int    `json:"count"`
	Message string `json:"message"`
}

type forecastAlert struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Reason      string `json:"reason"`
}

type forecastResponse struct {
	Status      string          `json:"status"`
	Prediction  decimal.Decimal `json:"prediction"`
	Actual      decimal.Decimal `json:"actual"`
	Suggestions []string        `json:"suggestions"`
	Alerts      []forecastAlert `json:"alerts"`
	Message     string          `json:"message"`
}

// UploadStatement sends the statement as multipart form data.
func (c *Client) UploadStatement(ctx context.Context, upload *adapter.StatementUpload) (*adapter.UploadResult, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("user_id", upload.UserID.String()); err != nil {
		return nil, fmt.Errorf("failed to write form field: %w", err)
	}
	part, err := writer.CreateFormFile("file", upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, fmt.Errorf("failed to read statement: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finish form: %w", err)
	}

	var resp uploadResponse
	if err := c.post(ctx, uploadPath, writer.FormDataContentType(), &body, &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		return nil, rejected(resp.Status, resp.Message)
	}

	return &adapter.UploadResult{Count: resp.Count}, nil
}

// RequestForecast submits the profile as a url-encoded form.
func (c *Client) RequestForecast(ctx context.Context, request *adapter.ForecastRequest) (*adapter.ForecastResult, error) {
	hasLoan := "no"
	if request.HasLoan {
		hasLoan = "yes"
	}

	form := url.Values{}
	form.Set("user_id", request.UserID.String())
	form.Set("monthly_income", request.MonthlyIncome.String())
	form.Set("job_title", request.JobTitle)
	form.Set("education", request.EducationLevel)
	form.Set("employment", request.EmploymentStatus)
	form.Set("has_loan", hasLoan)
	form.Set("loan_type", request.LoanType)
	form.Set("loan_term_months", strconv.Itoa(request.LoanTermMonths))
	form.Set("monthly_emi_usd", request.MonthlyEMI.String())
	form.Set("loan_interest_rate_pct", request.LoanInterestRatePct.String())
	form.Set("credit_score", strconv.Itoa(request.CreditScore))

	var resp forecastResponse
	if err := c.post(ctx, predictPath, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()), &resp); err != nil {
		return nil, err
	}
	if resp.Status != statusSuccess {
		return nil, rejected(resp.Status, resp.Message)
	}

	alerts := make([]adapter.ForecastAlert, len(resp.Alerts))
	for i, a := range resp.Alerts {
		alerts[i] = adapter.ForecastAlert{
			Date:        a.Date,
			Description: a.Description,
			Reason:      a.Reason,
		}
	}

	return &adapter.ForecastResult{
		Prediction:  resp.Prediction,
		Actual:      resp.Actual,
		Suggestions: resp.Suggestions,
		Alerts:      alerts,
	}, nil
}

// post sends a request and decodes the JSON answer into out.
// Transport failures and 5xx map to ErrIngestionUnavailable, 4xx to ErrIngestionRejected.
func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return fmt.Errorf("%w: %v", domainerror.ErrIngestionUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%w: status %d", domainerror.ErrIngestionUnavailable, resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		return fmt.Errorf("%w: status %d", domainerror.ErrIngestionRejected, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: undecodable response: %v", domainerror.ErrIngestionUnavailable, err)
	}
	return nil
}

func rejected(status, message string) error {
	if message == "" {
		message = "unexpected status " + strconv.Quote(status)
	}
	return fmt.Errorf("%w: %s", domainerror.ErrIngestionRejected, message)
}
