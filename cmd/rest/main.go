package main

import (
	"log"

	"todo-ai-be/internal/bootstrap"
	"todo-ai-be/internal/config"
	"todo-ai-be/internal/server"
	"todo-ai-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database
	var (
		gormDB *gorm.DB
		err    error
	)
	if cfg.Database.Driver == "sqlite" {
		gormDB, err = database.NewSQLiteDB(cfg.Database.SqlitePath)
	} else {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Create tables at startup
	if err := database.Migrate(gormDB); err != nil {
		log.Panicf("Unable to migrate schema: %v", err)
	}

	// 4. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 5. Initialize and Run Server
	srv := server.New(cfg, container)
	log.Fatal(srv.Run())
}
