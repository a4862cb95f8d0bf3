package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finflow/backend/internal/application/usecase/summary"
	domainerror "github.com/finflow/backend/internal/domain/error"
	"github.com/finflow/backend/internal/integration/entrypoint/dto"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
)

// SummaryController handles summary endpoints.
type SummaryController struct {
	getSummaryUseCase     *summary.GetSummaryUseCase
	computeSummaryUseCase *summary.ComputeSummaryUseCase
}

// NewSummaryController creates a new summary controller instance.
func NewSummaryController(
	getSummaryUseCase *summary.GetSummaryUseCase,
	computeSummaryUseCase *summary.ComputeSummaryUseCase,
) *SummaryController {
	return &SummaryController{
		getSummaryUseCase:     getSummaryUseCase,
		computeSummaryUseCase: computeSummaryUseCase,
	}
}

// Get handles GET /summary requests.
// The optional monthly_income query parameter overrides the stored profile income.
func (c *SummaryController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := summary.GetSummaryInput{UserID: userID}
	if income, ok := ctx.GetQuery("monthly_income"); ok {
		input.MonthlyIncome = &income
	}

	output, err := c.getSummaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGetSummaryResponse(output))
}

// Compute handles POST /summary/compute requests.
func (c *SummaryController) Compute(ctx *gin.Context) {
	var req dto.ComputeSummaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidSummaryRequest),
			Details: err.Error(),
		})
		return
	}

	result, err := c.computeSummaryUseCase.Execute(ctx.Request.Context(), summary.ComputeSummaryInput{
		Transactions:  req.ToRawTransactions(),
		MonthlyIncome: string(req.MonthlyIncome),
	})
	if err != nil {
		c.handleSummaryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSummaryResponse(result))
}

// handleSummaryError maps summary and profile errors to HTTP responses.
func (c *SummaryController) handleSummaryError(ctx *gin.Context, err error) {
	var sumErr *domainerror.SummaryError
	if errors.As(err, &sumErr) {
		ctx.JSON(c.getStatusCodeForSummaryError(sumErr.Code), dto.ErrorResponse{
			Error: sumErr.Message,
			Code:  string(sumErr.Code),
		})
		return
	}

	var profErr *domainerror.ProfileError
	if errors.As(err, &profErr) {
		ctx.JSON(getStatusCodeForProfileError(profErr.Code), dto.ErrorResponse{
			Error: profErr.Message,
			Code:  string(profErr.Code),
		})
		return
	}

	slog.Error("Unhandled summary error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
		Code:  string(domainerror.ErrCodeSummaryInternalError),
	})
}

// getStatusCodeForSummaryError maps summary error codes to HTTP status codes.
func (c *SummaryController) getStatusCodeForSummaryError(code domainerror.SummaryErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidSummaryRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeBatchTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeTransactionStore:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
