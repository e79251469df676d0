package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/atypikhouse/atypikhouse-api/internal/api"
	"github.com/atypikhouse/atypikhouse-api/internal/core/service"
	"github.com/atypikhouse/atypikhouse-api/internal/infrastructure/config"
	mongodb "github.com/atypikhouse/atypikhouse-api/internal/infrastructure/db/mongo"
	redisdb "github.com/atypikhouse/atypikhouse-api/internal/infrastructure/db/redis"
	"github.com/atypikhouse/atypikhouse-api/internal/infrastructure/queue"
	"github.com/atypikhouse/atypikhouse-api/internal/infrastructure/storage"
	"github.com/atypikhouse/atypikhouse-api/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// No logger yet: config carries the log level.
		println("fatal:", err.Error())
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	// --- MongoDB ---
	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	userRepo := mongodb.NewUserRepository(db)
	propertyRepo := mongodb.NewPropertyRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	favoriteRepo := mongodb.NewFavoriteRepository(db)
	messageRepo := mongodb.NewMessageRepository(db)

	for name, ensure := range map[string]func(context.Context) error{
		"users":      userRepo.EnsureIndexes,
		"properties": propertyRepo.EnsureIndexes,
		"bookings":   bookingRepo.EnsureIndexes,
		"favorites":  favoriteRepo.EnsureIndexes,
		"messages":   messageRepo.EnsureIndexes,
	} {
		if err := ensure(ctx); err != nil {
			log.Fatal().Err(err).Str("collection", name).Msg("index bootstrap failed")
		}
	}

	// --- Redis ---
	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Object storage ---
	uploader, err := storage.NewLocalUploader(cfg.Uploads.Dir, cfg.Uploads.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("upload storage init failed")
	}

	// --- Notification pipeline ---
	notificationService := service.NewNotificationService(messageRepo, log)
	dispatcher := queue.NewDispatcher(0, notificationService, log)
	dispatcher.Start(ctx)

	// --- Core services ---
	tokens := service.NewTokenService(cfg.JWTSecret, service.DefaultTokenTTL)
	featuredCache := redisdb.NewFeaturedCache(rdb, log)

	svc := api.Services{
		Tokens:     tokens,
		Auth:       service.NewAuthService(userRepo, tokens, log),
		Admin:      service.NewAdminService(userRepo, propertyRepo, bookingRepo, dispatcher, log),
		Properties: service.NewPropertyService(propertyRepo, userRepo, uploader, featuredCache, log),
		Bookings:   service.NewBookingService(bookingRepo, propertyRepo, dispatcher, log),
		Favorites:  service.NewFavoriteService(favoriteRepo, propertyRepo),
		Messages:   messageRepo,
	}

	e := api.NewRouter(svc, db, rdb, log, cfg.IsProduction())
	e.Static("/uploads", cfg.Uploads.Dir)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		_ = e.Shutdown(context.Background())
	}()

	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
	if err := e.Start(":" + cfg.Port); err != nil {
		log.Info().Err(err).Msg("server stopped")
	}
}
