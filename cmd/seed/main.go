package main

import (
	"fmt"
	"log"

	"todo-ai-be/internal/config"
	"todo-ai-be/internal/model"
	"todo-ai-be/internal/pkg/serverutils"
	"todo-ai-be/pkg/database"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeds a demo user with a handful of tasks and prints a bearer token so the
// API can be exercised immediately with curl.
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

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}

	userId := "demo-" + uuid.NewString()[:8]
	SeedTasks(db, userId)

	token, err := serverutils.CreateAccessToken(userId)
	if err != nil {
		log.Fatalf("Error: Failed to issue token: %v", err)
	}

	fmt.Println("Seeded user:", userId)
	fmt.Println("Bearer token:", token)
	fmt.Printf("Try: curl -H 'Authorization: Bearer %s' -H 'Content-Type: application/json' -d '{\"message\":\"list my tasks\"}' http://localhost:%s/api/%s/chat\n", token, cfg.App.Port, userId)
}

// SeedTasks inserts a small mixed set of completed and pending tasks.
func SeedTasks(db *gorm.DB, userId string) {
	desc := func(s string) *string { return &s }

	tasks := []model.Task{
		{UserId: userId, Title: "Buy groceries", Description: desc("Milk, eggs, bread")},
		{UserId: userId, Title: "Call the dentist"},
		{UserId: userId, Title: "Finish quarterly report", Description: desc("Due Friday"), Completed: true},
		{UserId: userId, Title: "Water the plants", Completed: true},
	}

	for i := range tasks {
		if err := db.Create(&tasks[i]).Error; err != nil {
			log.Printf("Warn: Failed to seed task %q: %v. Continuing...", tasks[i].Title, err)
		}
	}
	log.Printf("Seeded %d tasks for user %s", len(tasks), userId)
}
