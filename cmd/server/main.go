package main

import (
	"log"

	"awei/internal/config"
	"awei/internal/server"

	"github.com/joho/godotenv"
)

func main() {
	// Local development reads a .env file; deployed environments set the
	// variables directly and have no file to load.
	_ = godotenv.Load()

	cfg := config.New()
	if cfg.Auth.TokenSecret == "" {
		log.Fatal("ACCESS_TOKEN_SECRET must be set")
	}

	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
