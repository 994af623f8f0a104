package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/services"
	"github.com/Epik-Whale463/CollegeConnect/internal/middleware"
)

// AdminController handles reporting endpoints for the admin dashboard
type AdminController struct {
	collegeService services.CollegeService
	logger         zerolog.Logger
}

// NewAdminController creates a new AdminController
func NewAdminController(collegeService services.CollegeService, logger zerolog.Logger) *AdminController {
	return &AdminController{
		collegeService: collegeService,
		logger:         logger,
	}
}

// ExportColleges handles the CSV export of all colleges
// @Summary Export colleges as CSV
// @Description Downloads a CSV report of all colleges with their approval status
// @Tags admin
// @Produce text/csv
// @Success 200 {string} string "CSV file"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/export/colleges [get]
func (c *AdminController) ExportColleges(ctx *gin.Context) {
	report, err := c.collegeService.ExportCollegesCSV(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to export colleges report")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="colleges_report.csv"`)
	ctx.Data(http.StatusOK, "text/csv", report)
}

// DashboardStats handles the dashboard counters
// @Summary College dashboard statistics
// @Description Returns college counts by approval status
// @Tags admin
// @Produce json
// @Success 200 {object} dto.CollegeStatsResponse "Counts by status"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/dashboard/stats [get]
func (c *AdminController) DashboardStats(ctx *gin.Context) {
	stats, err := c.collegeService.GetDashboardStats(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to compute dashboard stats")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, stats)
}
