package main

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	server "backend/insurance-platform/app/api"
	"backend/insurance-platform/app/internal/config"
	"backend/insurance-platform/app/internal/runtime"
	"backend/insurance-platform/app/pkg/cloudinary"
	"backend/insurance-platform/app/pkg/db"
	"backend/insurance-platform/app/pkg/logging"
	"backend/insurance-platform/app/pkg/redis"
	ctxutil "backend/insurance-platform/app/pkg/util/context"
	httpClientUtil "backend/insurance-platform/app/pkg/util/httpclient"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	env := ctxutil.GetAppModeFromEnv()
	ctx := ctxutil.SetAppMode(context.Background(), env)

	logger := setupLogging(env)
	defer func() {
		_ = logger.Sync()
	}()

	cfg := loadConfiguration(env, logger)
	database := setupDatabase(cfg, logger)
	defer closeDatabase(database, logger)

	redisClient := setupRedis(cfg, logger)
	defer closeRedis(redisClient, logger)

	httpClient := httpClientUtil.NewRestyClient(30*time.Second, logger)
	uploader := cloudinary.NewClient(httpClient, cfg.CloudinaryConfig, logger)

	httpServer := createServer(cfg, logger, database, redisClient, httpClient, uploader)
	httpServer.Start(ctx)
}

func setupLogging(env ctxutil.AppMode) *zap.Logger {
	logConfig := logging.NewLogConfig("[insurance-platform]", env)
	logger, err := logConfig.NewLogging()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
	return logger
}

func loadConfiguration(env ctxutil.AppMode, logger *zap.Logger) config.ApplicationConfig {
	cfg, err := config.ReadApplicationConfig(env, logger)
	if err != nil {
		panic(err)
	}
	return cfg
}

func setupDatabase(cfg config.ApplicationConfig, logger *zap.Logger) *db.DB {
	database, err := db.NewDB(cfg, logger)
	if err != nil {
		panic(err)
	}
	return database
}

func closeDatabase(database *db.DB, logger *zap.Logger) {
	if err := database.Close(); err != nil {
		logger.Error("error closing database", zap.Error(err))
	} else {
		logger.Info("closed database connection")
	}
}

func setupRedis(cfg config.ApplicationConfig, logger *zap.Logger) redis.Redis {
	redisClient, err := redis.NewUniversalRedisClient(cfg.RedisConfig, logger)
	if err != nil {
		panic(err)
	}
	return redisClient
}

func closeRedis(redisClient redis.Redis, logger *zap.Logger) {
	if err := redisClient.Close(); err != nil {
		logger.Error("error closing redis connection", zap.Error(err))
	} else {
		logger.Info("closed redis connection")
	}
}

func createServer(
	cfg config.ApplicationConfig,
	logger *zap.Logger,
	database *db.DB,
	redisClient redis.Redis,
	httpClient *resty.Client,
	uploader cloudinary.Uploader,
) server.Server {
	return server.Server{
		Config:     cfg,
		Logger:     logger,
		DB:         database,
		Redis:      redisClient,
		HttpClient: httpClient,
		Clients: runtime.Clients{
			Uploader: uploader,
		},
	}
}
