// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/services"
	"github.com/Epik-Whale463/CollegeConnect/internal/middleware"
)

// CollegeController handles college registration and the approval workflow
type CollegeController struct {
	collegeService services.CollegeService
	logger         zerolog.Logger
}

// NewCollegeController creates a new CollegeController
func NewCollegeController(collegeService services.CollegeService, logger zerolog.Logger) *CollegeController {
	return &CollegeController{
		collegeService: collegeService,
		logger:         logger,
	}
}

// Register handles college registration
// @Summary Register a college
// @Description Registers a new college in the Pending state, awaiting admin approval
// @Tags college
// @Accept json
// @Produce json
// @Param request body dto.RegisterCollegeRequest true "College registration information"
// @Success 201 {object} dto.RegisterCollegeResponse "College registered"
// @Failure 400 {object} dto.ErrorResponse "Missing fields, invalid URL or invalid email domain"
// @Failure 409 {object} dto.ErrorResponse "College with this name or website already registered"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college/register [post]
func (c *CollegeController) Register(ctx *gin.Context) {
	var req dto.RegisterCollegeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn().Err(err).Msg("Invalid college registration payload")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	collegeID, err := c.collegeService.RegisterCollege(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("collegeName", req.CollegeName).Msg("College registration failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.RegisterCollegeResponse{
		Message:   "College registered successfully",
		CollegeID: collegeID,
	})
}

// List handles listing all colleges
// @Summary List colleges
// @Description Returns all registered colleges with their approval state
// @Tags college
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.College} "Colleges retrieved"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college/list [get]
func (c *CollegeController) List(ctx *gin.Context) {
	colleges, err := c.collegeService.ListColleges(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list colleges")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(colleges))
}

// Approve handles college approval
// @Summary Approve a college
// @Description Sets a college to Approved, clearing any prior rejection
// @Tags college
// @Produce json
// @Param id path int true "College ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "College approved"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college/approve/{id} [put]
func (c *CollegeController) Approve(ctx *gin.Context) {
	collegeID, ok := c.collegeIDParam(ctx)
	if !ok {
		return
	}

	if err := c.collegeService.ApproveCollege(ctx.Request.Context(), collegeID); err != nil {
		c.logger.Warn().Err(err).Int64("collegeID", collegeID).Msg("College approval failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "College approved successfully"})
}

// Reject handles college rejection
// @Summary Reject a college
// @Description Sets a college to Rejected, clearing any prior approval
// @Tags college
// @Produce json
// @Param id path int true "College ID" Format(int64) minimum(1)
// @Success 200 {object} dto.SuccessResponse "College rejected"
// @Failure 400 {object} dto.ErrorResponse "Invalid college ID"
// @Failure 404 {object} dto.ErrorResponse "College not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /college/reject/{id} [put]
func (c *CollegeController) Reject(ctx *gin.Context) {
	collegeID, ok := c.collegeIDParam(ctx)
	if !ok {
		return
	}

	if err := c.collegeService.RejectCollege(ctx.Request.Context(), collegeID); err != nil {
		c.logger.Warn().Err(err).Int64("collegeID", collegeID).Msg("College rejection failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "College rejected successfully"})
}

// collegeIDParam parses the id path parameter, writing the error response itself
func (c *CollegeController) collegeIDParam(ctx *gin.Context) (int64, bool) {
	idParam := ctx.Param("id")
	collegeID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil || collegeID <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid college ID")
		errorDetail = errorDetail.WithDetails("ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return collegeID, true
}
