package main

import (
	"context"
	"log"

	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/bootstrap"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/config"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/server"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/internal/tracer"
	"github.com/PriyadarshiniSathishKumar/Viyara-StudyBot/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database (optional; in-memory stores otherwise)
	var gormDB *gorm.DB
	if cfg.Database.Connection != "" {
		var err error
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
		if err != nil {
			log.Panicf("Unable to connect to GORM DB: %v", err)
		}
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Consumer Service...")
		if err := container.ConsumerService.Consume(context.Background()); err != nil {
			log.Printf("Background Consumer Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
