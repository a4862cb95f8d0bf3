package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finflow/backend/internal/application/usecase/profile"
	domainerror "github.com/finflow/backend/internal/domain/error"
	"github.com/finflow/backend/internal/integration/entrypoint/dto"
	"github.com/finflow/backend/internal/integration/entrypoint/middleware"
)

// ProfileController handles profile endpoints.
type ProfileController struct {
	getProfileUseCase *profile.GetProfileUseCase
}

// NewProfileController creates a new profile controller instance.
func NewProfileController(getProfileUseCase *profile.GetProfileUseCase) *ProfileController {
	return &ProfileController{
		getProfileUseCase: getProfileUseCase,
	}
}

// Get handles GET /profile requests.
func (c *ProfileController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	result, err := c.getProfileUseCase.Execute(ctx.Request.Context(), profile.GetProfileInput{UserID: userID})
	if err != nil {
		var profErr *domainerror.ProfileError
		if errors.As(err, &profErr) {
			ctx.JSON(getStatusCodeForProfileError(profErr.Code), dto.ErrorResponse{
				Error: profErr.Message,
				Code:  string(profErr.Code),
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
			Code:  string(domainerror.ErrCodeProfileInternalError),
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProfileResponse(result))
}

// getStatusCodeForProfileError maps profile error codes to HTTP status codes.
func getStatusCodeForProfileError(code domainerror.ProfileErrorCode) int {
	switch code {
	case domainerror.ErrCodeProfileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
