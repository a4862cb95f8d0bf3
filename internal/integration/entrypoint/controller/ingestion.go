package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finflow/backend/internal/application/usecase/ingestion"
	domainerror "github.com/finflow/backend/internal/domain/error"
	"github.com/finflow/backend/internal/integration/entrypoint/dto"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
)

// IngestionController handles statement upload and forecast endpoints.
type IngestionController struct {
	uploadStatementUseCase *ingestion.UploadStatementUseCase
	requestForecastUseCase *ingestion.RequestForecastUseCase
	getStatusUseCase       *ingestion.GetStatusUseCase
}

// NewIngestionController creates a new ingestion controller instance.
func NewIngestionController(
	uploadStatementUseCase *ingestion.UploadStatementUseCase,
	requestForecastUseCase *ingestion.RequestForecastUseCase,
	getStatusUseCase *ingestion.GetStatusUseCase,
) *IngestionController {
	return &IngestionController{
		uploadStatementUseCase: uploadStatementUseCase,
		requestForecastUseCase: requestForecastUseCase,
		getStatusUseCase:       getStatusUseCase,
	}
}

// UploadStatement handles POST /ingestion/statements requests.
func (c *IngestionController) UploadStatement(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "A statement file is required",
			Code:  string(domainerror.ErrCodeMissingStatementFile),
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Failed to read uploaded file",
			Code:    string(domainerror.ErrCodeMissingStatementFile),
			Details: err.Error(),
		})
		return
	}
	defer file.Close()

	output, err := c.uploadStatementUseCase.Execute(ctx.Request.Context(), ingestion.UploadStatementInput{
		UserID:   userID,
		Filename: fileHeader.Filename,
		Size:     fileHeader.Size,
		Content:  file,
	})
	if err != nil {
		c.handleIngestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToStatementUploadResponse(output))
}

// RequestForecast handles POST /ingestion/forecast requests.
func (c *IngestionController) RequestForecast(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ForecastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Code:    string(domainerror.ErrCodeInvalidForecastRequest),
			Details: err.Error(),
		})
		return
	}

	input, err := req.ToInput()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid loan amount",
			Code:    string(domainerror.ErrCodeInvalidForecastRequest),
			Details: err.Error(),
		})
		return
	}
	input.UserID = userID

	output, err := c.requestForecastUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleIngestionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToForecastResponse(output))
}

// GetStatus handles GET /ingestion/status requests.
func (c *IngestionController) GetStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getStatusUseCase.Execute(ctx.Request.Context(), ingestion.GetStatusInput{UserID: userID})
	if err != nil {
		slog.Error("Failed to get ingestion status", "user_id", userID, "error", err)
		ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
			Error: "Ingestion status is temporarily unavailable",
			Code:  string(domainerror.ErrCodeTransactionStore),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToIngestionStatusResponse(output))
}

// handleIngestionError maps ingestion errors to HTTP responses.
func (c *IngestionController) handleIngestionError(ctx *gin.Context, err error) {
	var ingErr *domainerror.IngestionError
	if errors.As(err, &ingErr) {
		ctx.JSON(c.getStatusCodeForIngestionError(ingErr.Code), dto.ErrorResponse{
			Error: ingErr.Message,
			Code:  string(ingErr.Code),
		})
		return
	}

	slog.Error("Unhandled ingestion error", "error", err)
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForIngestionError maps ingestion error codes to HTTP status codes.
func (c *IngestionController) getStatusCodeForIngestionError(code domainerror.IngestionErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingStatementFile,
		domainerror.ErrCodeUnsupportedStatementType,
		domainerror.ErrCodeInvalidMonthlyIncome,
		domainerror.ErrCodeInvalidForecastRequest:
		return http.StatusBadRequest
	case domainerror.ErrCodeStatementTooLarge:
		return http.StatusRequestEntityTooLarge
	case domainerror.ErrCodeIngestionRejected:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeIngestionUnavailable:
		return http.StatusBadGateway
	case domainerror.ErrCodeIngestionInProgress:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
