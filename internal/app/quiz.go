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

// NewQuizApp wires the quiz service: question bank, grading, and
// submission history.
func NewQuizApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Name, cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database,
		&model.Question{},
		&model.Submission{},
		&model.SubmissionAnswer{},
	)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	if err := database.SeedQuestions(db); err != nil {
		logger.Log.Error("Failed to seed questions", zap.Error(err))
	}

	resolver := authclient.NewHTTPResolver(cfg.Auth.BaseURL, cfg.Auth.ResolveTimeout)

	questions := repository.NewQuestionRepository(db)
	submissions := repository.NewSubmissionRepository(db)
	quizService := service.NewQuizService(questions, submissions)
	quizController := controller.NewQuizController(quizService)
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

		api.GET("/questions", quizController.ListQuestions)
		api.POST("/questions", middleware.Identity(resolver), middleware.StaffOnly(), quizController.CreateQuestion)
		api.POST("/submit", middleware.Identity(resolver), quizController.Submit)
		api.GET("/submissions", middleware.Identity(resolver), quizController.History)
	}

	return app
}
