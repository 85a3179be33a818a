package main

import (
	"log"

	_ "tasktracker/docs"
	"tasktracker/internal/config"
	"tasktracker/internal/server"
)

// @title           Task Tracker API
// @version         1.0
// @description     API for managing personal tasks.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	cfg := config.Load()

	s, err := server.Init(cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
