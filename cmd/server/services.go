package main

import (
	"github.com/glamai/server/internal/config"
	"github.com/glamai/server/internal/gemini"
)

// holds all external service clients
type Services struct {
	Gemini *gemini.Client
}

// creates the external service clients from configuration
func InitializeServices(cfg *config.Config) *Services {
	return &Services{
		Gemini: gemini.NewClient(gemini.Config{
			APIKey: cfg.GeminiAPIKey,
		}),
	}
}
