package main

import (
	"context"
	"time"

	"anoa.com/coursecms/internal/bootstrap"
	"anoa.com/coursecms/internal/config"
	"anoa.com/coursecms/internal/server"
	"anoa.com/coursecms/pkg/database"
	"anoa.com/coursecms/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to load config")
	}

	logger.Configure(logger.Config{
		Level:  cfg.LogLevel,
		Pretty: cfg.IsDevelopment(),
	})
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(database.Options{
		DSN:  cfg.DatabaseURL,
		Echo: cfg.IsDevelopment(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := bootstrap.Migrate(db); err != nil {
		logger.Fatal().Err(err).Msg("migration failed")
	}

	redisClient := connectRedis(cfg.RedisURL)

	var meiliClient meilisearch.ServiceManager
	if cfg.MeiliSearchHost != "" {
		meiliClient = meilisearch.New(cfg.MeiliSearchHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	} else {
		logger.Info().Msg("MEILISEARCH_HOST not set, course search disabled")
	}

	srv := server.NewServer(cfg, db, redisClient, meiliClient)
	if err := srv.Run(cfg.Addr(), cfg.ShutdownTimeout); err != nil {
		logger.Fatal().Err(err).Msg("server exited with error")
	}
}

// connectRedis returns nil when url is empty or the server cannot be reached;
// the API keeps working without activity events.
func connectRedis(url string) *redis.Client {
	if url == "" {
		logger.Info().Msg("REDIS_URL not set, activity events disabled")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		logger.Warn().Err(err).Msg("invalid REDIS_URL, activity events disabled")
		return nil
	}

	client := redis.NewClient(opt)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, activity events disabled")
		_ = client.Close()
		return nil
	}

	return client
}
