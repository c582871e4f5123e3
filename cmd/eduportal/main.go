package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"

	"eduportal/internal/config"
	"eduportal/internal/content/cache"
	contenthttp "eduportal/internal/content/delivery/http"
	contentsql "eduportal/internal/content/repository/sqldb"
	contentuc "eduportal/internal/content/usecase"
	"eduportal/internal/database"
	"eduportal/internal/server"
	trackinghttp "eduportal/internal/tracking/delivery/http"
	trackingsql "eduportal/internal/tracking/repository/sqldb"
	trackinguc "eduportal/internal/tracking/usecase"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg := config.Load()

	db, err := database.Open(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db, cfg.DBDriver); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database ready", zap.String("driver", cfg.DBDriver))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer rdb.Close()
		logger.Info("content cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}
	store := cache.NewStore(rdb, logger)

	// Tracking wiring.
	limiter := trackinguc.NewRateLimiter(trackinguc.RateLimitConfig{
		Window:        cfg.RateLimitWindow,
		MaxRequests:   cfg.RateLimitMax,
		BlockDuration: cfg.RateLimitBlockFor,
	})
	eventRepo := trackingsql.NewEventRepository(db, cfg.DBDriver)
	trackingHandler := trackinghttp.NewHandler(
		trackinguc.NewTrackingService(eventRepo, limiter, logger),
		trackinguc.NewSimpleLogService(eventRepo, logger),
		logger,
	)

	// Content wiring.
	contentHandler := contenthttp.NewHandler(contenthttp.Services{
		Research:    contentuc.NewResearchService(contentsql.NewResearchRepository(db), logger),
		Notices:     contentuc.NewNoticeService(contentsql.NewNoticeRepository(db), logger),
		Dynamics:    contentuc.NewDynamicService(contentsql.NewDynamicRepository(db), logger),
		Instruments: contentuc.NewInstrumentService(contentsql.NewInstrumentRepository(db), logger),
		Recruit:     contentuc.NewRecruitService(contentsql.NewRecruitRepository(db), logger),
		Tools:       contentuc.NewToolService(contentsql.NewToolRepository(db), logger),
		Dict:        contentuc.NewDictService(cache.NewCachedDictRepository(contentsql.NewDictRepository(db), store), logger),
		Users:       contentuc.NewUserService(contentsql.NewUserRepository(db), logger),
		Profiles:    contentuc.NewProfileService(cache.NewCachedProfileRepository(contentsql.NewProfileRepository(db), store), logger),
	}, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	limiter.StartSweep(ctx, time.Minute)

	router := server.NewRouter(trackingHandler, contentHandler, logger)
	srv := server.New(cfg.HTTPAddr, router, logger)
	if err := srv.Run(ctx); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
	logger.Info("server stopped")
}
