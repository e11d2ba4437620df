package main

import (
	"log"

	"todo-ai-be/internal/config"
	"todo-ai-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()

	var (
		db  *gorm.DB
		err error
	)
	if cfg.Database.Driver == "sqlite" {
		db, err = database.NewSQLiteDB(cfg.Database.SqlitePath)
	} else {
		db, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	if err != nil {
		log.Fatalf("Error: Failed to connect to database: %v", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}
	log.Println("Migration complete.")
}
