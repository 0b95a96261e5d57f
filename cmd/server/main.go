package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
	"github.com/redis/go-redis/v9"

	"github.com/ignite/professional-directory/internal/api"
	"github.com/ignite/professional-directory/internal/config"
	"github.com/ignite/professional-directory/internal/repository/memory"
	"github.com/ignite/professional-directory/internal/repository/postgres"
	"github.com/ignite/professional-directory/internal/service/professional"
)

func extractHost(dsn string) string {
	at := strings.Index(dsn, "@")
	if at < 0 {
		return "(unknown)"
	}
	rest := dsn[at+1:]
	if slash := strings.Index(rest, "/"); slash >= 0 {
		rest = rest[:slash]
	}
	return rest
}

func main() {
	cfg, err := config.LoadFromEnv("config/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	var (
		repo professional.Repository
		db   *sql.DB
	)

	switch {
	case cfg.Server.DevMode:
		log.Println("DEV_MODE enabled — using in-memory store, no Postgres required")
		repo = memory.NewProfessionalRepo()

	case cfg.Database.URL != "":
		dbURL := cfg.Database.URL
		if !strings.Contains(dbURL, "connect_timeout") {
			sep := "?"
			if strings.Contains(dbURL, "?") {
				sep = "&"
			}
			dbURL += sep + "connect_timeout=5"
		}
		log.Printf("DB URL host portion: ...@%s/...", extractHost(dbURL))

		db, err = sql.Open("postgres", dbURL)
		if err != nil {
			log.Fatalf("Failed to open database: %v", err)
		}
		db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
		db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
		db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Minute)

		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := db.PingContext(pingCtx); err != nil {
			log.Printf("Warning: database ping failed: %v — continuing, health checks will report it", err)
		} else {
			log.Println("Database connected successfully")
		}
		pingCancel()

		repo = postgres.NewProfessionalRepo(db)

	default:
		log.Fatal("DATABASE_URL not set (or enable DEV_MODE for the in-memory store)")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opts, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.URL})
		} else {
			redisClient = redis.NewClient(opts)
		}
		pingCtx, pingCancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("Warning: Redis connection failed (%s): %v — list caching disabled", cfg.Redis.URL, err)
			redisClient.Close()
			redisClient = nil
		} else {
			log.Printf("Redis connected: %s (list caching enabled)", cfg.Redis.URL)
		}
		pingCancel()
	} else {
		log.Println("Redis not configured (REDIS_URL not set) — list caching disabled")
	}

	svc := professional.NewService(repo)
	server := api.NewServer(svc, db, redisClient, time.Duration(cfg.Redis.CacheTTLSec)*time.Second)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Printf("Starting server on %s", addr)
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-done
	log.Println("Shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
	if db != nil {
		db.Close()
	}
	if redisClient != nil {
		redisClient.Close()
	}

	log.Println("Server stopped")
}
