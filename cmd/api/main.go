package main

import (
	"log"

	_ "preventa/docs"
	"preventa/internal/adapter/http/routes"
	"preventa/internal/config"
	"preventa/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Preventa API
// @version         1.0
// @description     Offline-first order capture and sync for field sales.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := logger.Init(cfg.Log); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	routes.Run(cfg)
}
