package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userhub/user-service/handlers"
	"github.com/userhub/user-service/internal/config"
	"github.com/userhub/user-service/internal/database"
	"github.com/userhub/user-service/internal/users/handler"
	"github.com/userhub/user-service/internal/users/repository"
	"github.com/userhub/user-service/internal/users/service"
	"github.com/userhub/user-service/pkg/logger"
	"github.com/userhub/user-service/pkg/metrics"
	"github.com/userhub/user-service/pkg/middleware"
)

var startTime = time.Now()

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Init(os.Getenv("LOG_LEVEL"), cfg.Server.Environment)
	defer logger.Sync()
	logger.Debugf("startup: LOG_LEVEL=%s", logger.LevelString())

	if !cfg.Server.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.Server.ClientOrigin))
	r.Use(middleware.MaxBodyBytes(cfg.Server.MaxBodyBytes))
	r.Use(middleware.Metrics())

	// Optional per-IP rate limiter; Redis-backed when configured so limits
	// hold across instances.
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Host + ":" + cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimit(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	handlers.RegisterSystemRoutes(r, cfg.Server.Environment, startTime)
	handlers.RegisterSwagger(r)

	// MongoDB is a hard dependency: retry briefly to tolerate startup races,
	// then exit instead of serving degraded.
	ctx := context.Background()
	client, err := connectMongoWithRetry(ctx, cfg)
	if err != nil {
		logger.Fatalf("could not connect to MongoDB: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()
	logger.Infof("Connected to MongoDB: database=%s", cfg.MongoDB.Database)

	usersCol := client.Database(cfg.MongoDB.Database).Collection("users")
	repo := repository.NewMongoRepository(usersCol)
	svc := service.NewService(repo)
	h := handler.NewHandler(svc, cfg.Server.IsDevelopment())
	h.Register(r.Group("/api"))

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		logger.Infof("Starting user service on %s (environment=%s)", addr, cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	// Graceful shutdown: stop accepting, drain in-flight requests, then exit.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Infof("%s received, shutting down gracefully", sig)

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("graceful shutdown failed: %v", err)
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	logger.Info("server stopped")
}

func connectMongoWithRetry(ctx context.Context, cfg *config.Config) (client *mongo.Client, err error) {
	const maxAttempts = 5
	backoff := time.Second
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
		if err == nil {
			return client, nil
		}
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, err)
		if attempt < maxAttempts {
			time.Sleep(backoff)
			backoff *= 2
		}
	}
	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, err)
}
