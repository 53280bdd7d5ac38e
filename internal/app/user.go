package app

import (
	"log"

	"go.uber.org/zap"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/authclient"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/config"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/controller"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/middleware"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/database"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/logger"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/monitoring"
)

// NewUserApp wires the user service, which owns profile state and the
// atomic score adjustment path.
func NewUserApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Name, cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, &model.Profile{})
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	resolver := authclient.NewHTTPResolver(cfg.Auth.BaseURL, cfg.Auth.ResolveTimeout)

	profiles := repository.NewProfileRepository(db)
	profileService := service.NewProfileService(profiles)
	profileController := controller.NewProfileController(profileService)
	healthController := controller.NewHealthController(db)

	monitoring.Init()

	app := &App{Config: cfg, DB: db}
	app.initTracing()

	router := newRouter(cfg)
	app.Router = router

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", healthController.HealthCheck)

		api.GET("/users", middleware.Identity(resolver), middleware.StaffOnly(), profileController.List)
		api.GET("/users/:username", profileController.Get)
		api.POST("/users/:username/score", middleware.Identity(resolver), profileController.AdjustScore)
	}

	return app
}
