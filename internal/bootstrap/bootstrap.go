package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/gmps/schooladmin/internal/app/controllers"
	appRepos "github.com/gmps/schooladmin/internal/app/repositories"
	appRoutes "github.com/gmps/schooladmin/internal/app/routes"
	appServices "github.com/gmps/schooladmin/internal/app/services"
	"github.com/gmps/schooladmin/internal/config"
	"github.com/gmps/schooladmin/internal/db"
	appMiddleware "github.com/gmps/schooladmin/internal/middleware"
	pkgAuth "github.com/gmps/schooladmin/internal/pkg/auth"
	"github.com/gmps/schooladmin/internal/pkg/filestorage"
	"github.com/gmps/schooladmin/internal/pkg/helpers"
	"github.com/gmps/schooladmin/internal/pkg/logger"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage

	AuthController        *appControllers.AuthController
	StudentController     *appControllers.StudentController
	DocumentController    *appControllers.DocumentController
	CertificateController *appControllers.TransferCertificateController
	AdminController       *appControllers.AdminController
	DiagnosticController  *appControllers.DiagnosticController
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection pool.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	logger.Info().Msg("Database connection successfully established.")

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// Detect the optional documents columns once so request handling never
	// has to retry inserts.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := deps.Repos.DocumentRepository.DetectSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to detect documents schema: %w", err)
	}

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(
		cfg.Storage.UploadDir,
		cfg.Server.BaseURL+"/uploads",
		cfg.Storage.AllowedExtensions,
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		TokenExpiration: helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		Issuer:          cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, deps.FileStorage)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.DocumentController = appControllers.NewDocumentController(deps.Services.DocumentService)
	deps.CertificateController = appControllers.NewTransferCertificateController(deps.Services.TransferCertificateService)
	deps.AdminController = appControllers.NewAdminController(deps.Services.StudentService)
	deps.DiagnosticController = appControllers.NewDiagnosticController(deps.Services.DiagnosticService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
	}

	router := gin.Default()
	router.Use(appMiddleware.CORS())
	router.Use(appMiddleware.RequestID())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.DocumentController,
		deps.CertificateController,
		deps.AdminController,
		deps.DiagnosticController,
	)

	return router
}
