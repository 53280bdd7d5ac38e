package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/config"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/middleware"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/logger"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/monitoring"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/security"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/tracing"
)

// App is one running service: its config, router and database handle.
// Everything is constructed explicitly and injected; there is no
// ambient global state beyond the process-wide logger.
type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB

	tracerProvider *sdktrace.TracerProvider
}

func newRouter(cfg *config.Config) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	windowMinutes := cfg.RateLimit.WindowMinutes
	if windowMinutes <= 0 {
		windowMinutes = 1
	}
	router.Use(security.RateLimiter(maxRequests, time.Duration(windowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware(cfg.Server.Name))

	return router
}

func (a *App) initTracing() {
	if !a.Config.Tracing.Enabled {
		return
	}

	tp, err := tracing.InitTracer(a.Config.Server.Name, a.Config.Tracing.CollectorEndpoint)
	if err != nil {
		logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	a.tracerProvider = tp
}

// Run serves until SIGINT/SIGTERM, then shuts down gracefully.
func (a *App) Run() {
	srv := &http.Server{
		Addr:         ":" + a.Config.Server.Port,
		Handler:      a.Router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("%s running on port %s", a.Config.Server.Name, a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracerProvider != nil {
		if err := a.tracerProvider.Shutdown(context.Background()); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
