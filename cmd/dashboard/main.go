package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"youtube_stats_dashboard/internal/dashboard/api/handlers"
	"youtube_stats_dashboard/internal/dashboard/api/router"
	"youtube_stats_dashboard/internal/dashboard/app"
	"youtube_stats_dashboard/internal/dashboard/domain"
	"youtube_stats_dashboard/internal/dashboard/repository"
	"youtube_stats_dashboard/pkg/config"
	"youtube_stats_dashboard/pkg/database"
	"youtube_stats_dashboard/pkg/logger"
	testtool "youtube_stats_dashboard/pkg/test_tool"

	"go.uber.org/zap"
)

func main() {
	logger.Log = logger.Initialize(config.EnvConfig.Dashboard, config.EnvConfig.DashboardLogPath)
	defer logger.Log.Sync()
	if config.IsLocal() {
		logger.Log.SetDebugMode(true)
	}

	cfg := config.LoadConfig[config.Dashboard](config.EnvConfig.Dashboard, config.EnvConfig.DashboardYAMLPath)
	if config.EnvConfig.DashboardPort != "" {
		cfg.Port = config.EnvConfig.DashboardPort
	}

	apiKey, err := config.LoadAPIKey(cfg.YouTube.KeyFile)
	if err != nil {
		logger.Log.Fatal("Unable to load the YouTube API key", zap.String("key_file", cfg.YouTube.KeyFile), zap.Error(err))
	}

	ctx := context.Background()
	youtubeRepo, err := repository.NewYouTubeRepo(ctx, repository.YouTubeOptions{
		APIKey:   apiKey,
		Endpoint: cfg.YouTube.Endpoint,
		Timeout:  cfg.YouTube.Timeout,
	})
	if err != nil {
		logger.Log.Fatal("Unable to create the YouTube client", zap.Error(err))
	}

	var l2 database.RedisRepository[domain.ResultTable]
	if cfg.Redis.Enabled {
		masterName, sentinels := cfg.Redis.MasterName, cfg.Redis.SentinelAddrs
		if len(sentinels) == 0 {
			masterName, sentinels = config.GetRedisSetting()
		}
		l2, err = database.NewRedisRepository[domain.ResultTable](database.RedisConnection{
			Addr:          cfg.Redis.Addr,
			Password:      cfg.Redis.Password,
			DB:            cfg.Redis.RedisDB,
			MasterName:    masterName,
			SentinelAddrs: sentinels,
			RetryCount:    3,
			RetryInterval: time.Second,
		})
		if err != nil {
			// the in-process cache still works without redis
			logger.Log.Warn("redis unavailable, shared cache disabled", zap.Error(err))
			l2 = nil
		} else {
			defer l2.Close()
		}
	}
	cache := app.NewQueryCache(cfg.Cache.TTL, l2, cfg.Cache.RedisTTL)

	defaultOrder, err := domain.ParseSearchOrder(cfg.Search.DefaultOrder, domain.OrderViewCount)
	if err != nil {
		logger.Log.Fatal("Invalid default search order", zap.Error(err))
	}
	defaults := domain.SearchQuery{
		Query:      cfg.Search.DefaultQuery,
		MaxResults: cfg.Search.MaxResults,
		Order:      defaultOrder,
	}
	if err := defaults.Validate(); err != nil {
		logger.Log.Fatal("Invalid search defaults", zap.Error(err))
	}

	usecase := app.NewDashboardUseCase(youtubeRepo, cache, defaults)
	server := router.NewApp(config.EnvConfig.Dashboard, handlers.NewDashboardHandler(usecase))

	testtool.StartPprof(cfg.PprofAddr)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		logger.Log.Info("Shutting down dashboard")
		if err := server.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Log.Error("shutdown failed", zap.Error(err))
		}
	}()

	addr := fmt.Sprintf("%s:%s", cfg.IP, cfg.Port)
	logger.Log.Info(fmt.Sprintf("Dashboard listening on : %s", addr))
	if err := server.Listen(addr); err != nil {
		logger.Log.Fatal("Failed to start dashboard server", zap.Error(err))
	}

	hits, misses := cache.Stats()
	logger.Log.Info("cache stats", zap.Int64("hits", hits), zap.Int64("misses", misses))
}
