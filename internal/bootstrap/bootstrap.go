package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/coursesearch/internal/app/controllers"
	appRepos "github.com/yigit/coursesearch/internal/app/repositories"
	appRoutes "github.com/yigit/coursesearch/internal/app/routes"
	"github.com/yigit/coursesearch/internal/config"
	"github.com/yigit/coursesearch/internal/db"
	appMiddleware "github.com/yigit/coursesearch/internal/middleware"
	"github.com/yigit/coursesearch/internal/pkg/logger"
)

// Options are the command-line inputs to startup
type Options struct {
	ConfigPath string
	EnvFile    string
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	Connector        db.Connector
	CourseRepository *appRepos.CourseRepository
	SearchController *appControllers.SearchController
	Logger           zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(opts Options) (*config.Config, zerolog.Logger, error) {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		logger.Error().Err(err).Msg("Failed to load env file")
		return nil, zerolog.Logger{}, err
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.ConfigFrom(cfg.Logging.Level, cfg.Logging.Format))
	lgr.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Str("dbDriver", cfg.DatabaseDriver()).
		Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies wires the store connector, repository and controller.
// No connection is opened here; every search dials its own.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	connector, err := db.NewConnector(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to configure course store")
		return nil, fmt.Errorf("failed to configure course store: %w", err)
	}

	deps := &Dependencies{
		Connector: connector,
		Logger:    lgr,
	}
	deps.CourseRepository = appRepos.NewCourseRepository(connector)
	deps.SearchController = appControllers.NewSearchController(deps.CourseRepository, lgr)

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
	router.Use(
		gin.Recovery(),
		appMiddleware.RequestID(),
		appMiddleware.RequestLogger(lgr),
	)

	appRoutes.SetupRouter(router, deps.SearchController)

	return router
}
