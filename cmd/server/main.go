package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/stitts-dev/franchise-sim/internal/api"
	"github.com/stitts-dev/franchise-sim/internal/api/middleware"
	"github.com/stitts-dev/franchise-sim/internal/random"
	"github.com/stitts-dev/franchise-sim/internal/services"
	"github.com/stitts-dev/franchise-sim/internal/store"
	"github.com/stitts-dev/franchise-sim/internal/websocket"
	"github.com/stitts-dev/franchise-sim/pkg/config"
	"github.com/stitts-dev/franchise-sim/pkg/database"
	"github.com/stitts-dev/franchise-sim/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.InitLogger(cfg.LogLevel, cfg.IsDevelopment())
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewConnection(cfg.DatabaseURL, cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	st := store.New(db)
	if err := st.Migrate(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional: without it snapshots are simply not cached.
	var cache *services.CacheService
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warnf("Invalid Redis URL, running without cache: %v", err)
	} else {
		redisClient := redis.NewClient(opt)
		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warnf("Redis unavailable, running without cache: %v", err)
			redisClient.Close()
		} else {
			defer redisClient.Close()
			cache = services.NewCacheService(redisClient, cfg.CircuitBreakerThreshold, logger.WithService("cache"))
		}
		cancel()
	}

	source, err := random.SourceFor(cfg.RNGSource)
	if err != nil {
		log.Fatalf("Invalid RNG source: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	hub := websocket.NewHub(logger.WithService("websocket"))
	go hub.Run(ctx)

	svc := services.New(services.Dependencies{
		Store:    st,
		Cache:    cache,
		Hub:      hub,
		Random:   random.NewGenerator(source),
		CacheTTL: cfg.LineupCacheTTL,
		Logger:   logger.WithService("franchise-sim"),
	})

	if cfg.AutoAdvanceInterval != "" {
		interval, _ := time.ParseDuration(cfg.AutoAdvanceInterval)
		scheduler := services.NewWeekScheduler(svc.Clubs, interval, logger.WithService("week-scheduler"))
		if err := scheduler.Start(); err != nil {
			log.Errorf("Failed to start week scheduler: %v", err)
		}
		defer scheduler.Stop()
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimitPerSecond, cfg.RateLimitBurst)
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				limiter.Cleanup(10 * time.Minute)
			}
		}
	}()

	router := api.NewRouter(api.RouterDeps{
		Config:      cfg,
		DB:          db,
		Cache:       cache,
		Services:    svc,
		Hub:         hub,
		RateLimiter: limiter,
	})

	for _, route := range router.Routes() {
		log.Debugf("%s %s", route.Method, route.Path)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// websocket connections are hijacked, so Shutdown does not close them
	stop()
	select {
	case <-hub.Done():
	case <-shutdownCtx.Done():
	}

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	log.Info("Server exited")
}
