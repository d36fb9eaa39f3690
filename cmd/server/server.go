package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/glamai/server/glamai/looks"
	"github.com/glamai/server/internal/config"
	"github.com/glamai/server/internal/cooldown"
	"github.com/glamai/server/internal/logger"
	"github.com/glamai/server/internal/pipeline"
	"github.com/glamai/server/internal/usage"
	"github.com/glamai/server/internal/wellbeing"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	ctx := context.Background()

	poolConfig, err := pgxpool.ParseConfig(cfg.SupabaseConnString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	// configure connection pool for supabase free tier pooler compatibility
	// free tier has ~10-15 pooler connections, so keep our pool small
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = 30 * time.Minute
	poolConfig.MaxConnIdleTime = 5 * time.Minute
	poolConfig.HealthCheckPeriod = 1 * time.Minute

	// use simple protocol for supabase pooler (PgBouncer) compatibility;
	// transaction mode doesn't support prepared statements
	poolConfig.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol

	db, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create database pool: %w", err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	server := &Server{
		db:       db,
		config:   cfg,
		lookRepo: looks.NewRepository(db),
		services: InitializeServices(cfg),
	}

	// usage records live in Redis when available so limits survive restarts
	// and are shared across instances; otherwise fall back to process memory
	if cfg.RedisURL != "" {
		redisStore, err := usage.NewRedisStore(cfg.RedisURL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to connect usage store to redis: %w", err)
		}

		server.usageStore = redisStore
		server.storeCloser = redisStore
	} else {
		logger.Warn("REDIS_URL not set, usage records are kept in memory and reset on restart")
		server.usageStore = usage.NewMemoryStore()
	}

	governor, err := usage.NewGovernor(nil, wellbeing.Affirmation)
	if err != nil {
		server.closeStores()
		return nil, fmt.Errorf("failed to build usage governor: %w", err)
	}

	server.governor = governor
	server.tracker = cooldown.NewTracker()
	server.pipeline = pipeline.NewPipeline(server.services.Gemini, server.usageStore, pipeline.Config{
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	server.router = gin.Default()
	RegisterRoutes(server.router, server)

	return server, nil
}

func (s *Server) closeStores() {
	if s.storeCloser != nil {
		s.storeCloser.Close() //nolint:errcheck,gosec // best-effort cleanup
	}

	s.db.Close()
}
