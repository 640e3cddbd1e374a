package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/cy-rus404/sms-backend/docs" // Import generated swagger docs
	appControllers "github.com/cy-rus404/sms-backend/internal/app/controllers"
	appMigrations "github.com/cy-rus404/sms-backend/internal/app/migrations"
	appRepos "github.com/cy-rus404/sms-backend/internal/app/repositories"
	appRoutes "github.com/cy-rus404/sms-backend/internal/app/routes"
	appServices "github.com/cy-rus404/sms-backend/internal/app/services"
	"github.com/cy-rus404/sms-backend/internal/config"
	"github.com/cy-rus404/sms-backend/internal/db"
	appMiddleware "github.com/cy-rus404/sms-backend/internal/middleware"
	pkgAuth "github.com/cy-rus404/sms-backend/internal/pkg/auth"
	"github.com/cy-rus404/sms-backend/internal/pkg/helpers"
	"github.com/cy-rus404/sms-backend/internal/pkg/logger"
	"github.com/cy-rus404/sms-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	UserService       appServices.UserService
	CourseService     appServices.CourseService
	EnrollmentService appServices.EnrollmentService
	AttendanceService appServices.AttendanceService
	TimetableService  appServices.TimetableService
	ReportService     appServices.ReportService

	AuthController       *appControllers.AuthController
	UserController       *appControllers.UserController
	CourseController     *appControllers.CourseController
	EnrollmentController *appControllers.EnrollmentController
	AttendanceController *appControllers.AttendanceController
	TimetableController  *appControllers.TimetableController
	ReportController     *appControllers.ReportController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
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

	lgr := log.Logger // Get the configured global logger
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

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	// Run migrations
	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed the default admin account (after migrations)
	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Initialize services
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.EnrollmentService = appServices.NewEnrollmentService(
		deps.Repos.EnrollmentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
	)
	deps.AttendanceService = appServices.NewAttendanceService(
		deps.Repos.AttendanceRepository,
		deps.Repos.CourseRepository,
		deps.Repos.UserRepository,
	)
	deps.TimetableService = appServices.NewTimetableService(
		deps.Repos.TimetableRepository,
		deps.Repos.CourseRepository,
	)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		deps.Repos.EnrollmentRepository,
		deps.Repos.AttendanceRepository,
		deps.Repos.TimetableRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.EnrollmentController = appControllers.NewEnrollmentController(deps.EnrollmentService)
	deps.AttendanceController = appControllers.NewAttendanceController(deps.AttendanceService)
	deps.TimetableController = appControllers.NewTimetableController(deps.TimetableService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

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

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.CourseController,
		deps.EnrollmentController,
		deps.AttendanceController,
		deps.TimetableController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
