package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/vlatan/transcript-api/internal/app"
)

func main() {

	// Load a local .env file if present, the real environment wins
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded; %v", err)
	}

	if err := app.New().RegisterRoutes().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
