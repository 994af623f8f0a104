package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/Epik-Whale463/CollegeConnect/docs" // generated swagger docs
	appControllers "github.com/Epik-Whale463/CollegeConnect/internal/app/controllers"
	appMigrations "github.com/Epik-Whale463/CollegeConnect/internal/app/migrations"
	appRepos "github.com/Epik-Whale463/CollegeConnect/internal/app/repositories"
	appRoutes "github.com/Epik-Whale463/CollegeConnect/internal/app/routes"
	appServices "github.com/Epik-Whale463/CollegeConnect/internal/app/services"
	"github.com/Epik-Whale463/CollegeConnect/internal/config"
	"github.com/Epik-Whale463/CollegeConnect/internal/db"
	appMiddleware "github.com/Epik-Whale463/CollegeConnect/internal/middleware"
	pkgAuth "github.com/Epik-Whale463/CollegeConnect/internal/pkg/auth"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/helpers"
	"github.com/Epik-Whale463/CollegeConnect/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	CollegeService    appServices.CollegeService
	AuthService       appServices.AuthService
	UserService       appServices.UserService
	CollegeController *appControllers.CollegeController
	AuthController    *appControllers.AuthController
	UserController    *appControllers.UserController
	AdminController   *appControllers.AdminController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// .env is optional; real deployments configure the environment directly
	_ = godotenv.Load()

	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	secret := cfg.JWT.Secret
	if secret == "" {
		// A per-process secret reproduces the original deployment's
		// behavior; every restart invalidates outstanding tokens.
		generated, err := generateSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to generate signing secret: %w", err)
		}
		secret = generated
		lgr.Warn().Msg("JWT secret not configured; generated a process-lifetime secret, tokens will not survive a restart")
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.CollegeService = appServices.NewCollegeService(deps.Repos.CollegeRepository, lgr)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.CollegeRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.CollegeController = appControllers.NewCollegeController(deps.CollegeService, lgr)
	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.UserController = appControllers.NewUserController(deps.UserService, lgr)
	deps.AdminController = appControllers.NewAdminController(deps.CollegeService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	appRoutes.SetupRouter(router,
		deps.CollegeController,
		deps.AuthController,
		deps.UserController,
		deps.AdminController,
		deps.AuthMiddleware,
	)

	return router
}

// generateSecret produces a random hex-encoded 32-byte signing secret
func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
