package main

import (
	"flag"
	"log"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/app"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/config"
	"github.com/iqbal-fadhil/thesis-try-out-app/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "directory holding auth.yaml")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath, "auth")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewAuthApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
