package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finflow/backend/internal/application/usecase/insight"
	domainerror "github.com/finflow/backend/internal/domain/error"
	"github.com/finflow/backend/internal/integration/entrypoint/dto"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
)

// InsightController handles savings insight endpoints.
type InsightController struct {
	generateUseCase *insight.GenerateInsightsUseCase
}

// NewInsightController creates a new insight controller instance.
func NewInsightController(generateUseCase *insight.GenerateInsightsUseCase) *InsightController {
	return &InsightController{
		generateUseCase: generateUseCase,
	}
}

// Get handles GET /insights requests.
func (c *InsightController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := insight.GenerateInsightsInput{UserID: userID}
	if income, ok := ctx.GetQuery("monthly_income"); ok {
		input.MonthlyIncome = &income
	}

	output, err := c.generateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		var sumErr *domainerror.SummaryError
		var profErr *domainerror.ProfileError
		switch {
		case errors.As(err, &sumErr):
			ctx.JSON(http.StatusServiceUnavailable, dto.ErrorResponse{
				Error: sumErr.Message,
				Code:  string(sumErr.Code),
			})
		case errors.As(err, &profErr):
			ctx.JSON(getStatusCodeForProfileError(profErr.Code), dto.ErrorResponse{
				Error: profErr.Message,
				Code:  string(profErr.Code),
			})
		default:
			ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
				Error: "An internal error occurred",
				Code:  string(domainerror.ErrCodeSummaryInternalError),
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}
