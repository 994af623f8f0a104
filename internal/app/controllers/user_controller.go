package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/services"
	"github.com/Epik-Whale463/CollegeConnect/internal/middleware"
)

// UserController handles profile operations for the authenticated user
type UserController struct {
	userService services.UserService
	logger      zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService, logger zerolog.Logger) *UserController {
	return &UserController{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile retrieves the authenticated user's profile
// @Summary Get own profile
// @Description Returns the authenticated user's record without the password field
// @Tags user
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.User} "Profile retrieved"
// @Failure 401 {object} dto.ErrorResponse "Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	user, err := c.userService.GetProfile(ctx.Request.Context(), userID)
	if err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Failed to load profile")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(user))
}

// UpdateProfile applies a partial update of whitelisted profile fields
// @Summary Update own profile
// @Description Applies a partial update; fields outside the whitelist are silently ignored
// @Tags user
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Fields to update"
// @Success 200 {object} dto.SuccessResponse "Profile updated"
// @Failure 400 {object} dto.ErrorResponse "No updatable fields in request"
// @Failure 401 {object} dto.ErrorResponse "Invalid or missing token"
// @Failure 404 {object} dto.ErrorResponse "User not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /user/profile/update [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid profile update payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	if err := c.userService.UpdateProfile(ctx.Request.Context(), userID, req); err != nil {
		c.logger.Warn().Err(err).Int64("userID", userID).Msg("Profile update failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Profile updated successfully"})
}
