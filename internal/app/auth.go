package app

import (
	"log"

	"go.uber.org/zap"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/config"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/controller"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/database"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/logger"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/monitoring"
)

// NewAuthApp wires the auth service: the system of record for accounts
// and tokens. Every other service defers authorization decisions here.
func NewAuthApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Name, cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database, &model.User{}, &model.AuthToken{})
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)
	authService := service.NewAuthService(users, tokens)
	authController := controller.NewAuthController(authService)
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

		auth := api.Group("/auth")
		{
			auth.POST("/register", authController.Register)
			auth.POST("/login", authController.Login)
			auth.GET("/validate", authController.Validate)
			auth.GET("/me", authController.Me)
		}
	}

	return app
}
