package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/glamai/server/internal/auth"
)

// prints a signed JWT for local API testing:
//
//	go run ./scripts <user-id> [email]
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	if len(os.Args) < 2 {
		fmt.Println("Usage: go run ./scripts <user-id> [email]")
		os.Exit(1)
	}

	userID := os.Args[1]
	email := "test@example.com"

	if len(os.Args) > 2 {
		email = os.Args[2]
	}

	token, err := auth.GenerateToken(userID, email, 24*time.Hour)
	if err != nil {
		log.Fatalf("Failed to generate token: %v", err)
	}

	fmt.Println(token)
}
