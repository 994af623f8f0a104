package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Epik-Whale463/CollegeConnect/internal/app/controllers"
	"github.com/Epik-Whale463/CollegeConnect/internal/app/models/dto"
	"github.com/Epik-Whale463/CollegeConnect/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	collegeController *controllers.CollegeController,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	adminController *controllers.AdminController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public college routes ---
	college := api.Group("/college")
	{
		college.POST("/register", collegeController.Register)
		college.GET("/list", collegeController.List)
		// Admin actions; no authentication is enforced on these
		college.PUT("/approve/:id", collegeController.Approve)
		college.PUT("/reject/:id", collegeController.Reject)
	}

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Authenticated user routes ---
	user := api.Group("/user")
	user.Use(authMiddleware.RequireAuth())
	{
		user.GET("/profile", userController.GetProfile)
		user.PUT("/profile/update", userController.UpdateProfile)
	}

	// Liveness check of the auth middleware itself
	api.GET("/protected", authMiddleware.RequireAuth(), func(c *gin.Context) {
		userID, _ := middleware.CurrentUserID(c)
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{
			"message": "Access granted",
			"userId":  userID,
		}))
	})

	// --- Admin reporting routes ---
	admin := router.Group("/admin")
	{
		admin.GET("/export/colleges", adminController.ExportColleges)
		admin.GET("/dashboard/stats", adminController.DashboardStats)
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse(gin.H{"status": "ok"}))
	})
}
