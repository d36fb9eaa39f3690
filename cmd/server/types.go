package main

import (
	"io"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glamai/server/glamai/looks"
	"github.com/glamai/server/internal/config"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/pipeline"
	"github.com/glamai/server/internal/usage"
)

// holds all dependencies and state for the API server
type Server struct {
	db          *pgxpool.Pool
	config      *config.Config
	router      *gin.Engine
	lookRepo    *looks.Repository
	usageStore  usage.Store
	storeCloser io.Closer // set when the usage store owns a connection
	governor    *usage.Governor
	tracker     *cooldown.Tracker
	pipeline    *pipeline.Pipeline
	services    *Services
}
