package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bengkel_service/internal/adapter/http/routes"
	"bengkel_service/internal/infrastructure/config"
	"bengkel_service/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Bengkel Service API
// @version         1.0
// @description     Workshop job lifecycle and financial reconciliation backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("text", "error").Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Error("failed to startup the application", "err", err)
		os.Exit(1)
	}
}
