package main

import (
	"flag"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/todo-list/internal/config"
	"github.com/yukikurage/todo-list/internal/database"
	"github.com/yukikurage/todo-list/internal/handlers"
	"github.com/yukikurage/todo-list/internal/repository"
	"github.com/yukikurage/todo-list/internal/services"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "server configuration file")
	flag.Parse()

	// Load configuration
	cfg := config.MustLoad(configPath)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// Create the todos table if needed
	if err := database.EnsureSchema(db); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	todoService := services.NewTodoService(repository.NewTodoRepository(db))

	isProduction := cfg.GinMode == gin.ReleaseMode
	r := handlers.NewRouter(todoService, cfg.SessionSecret, isProduction)

	// Start server
	log.Printf("Server starting on %s", cfg.Address)
	if err := r.Run(cfg.Address); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
