package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/pantryplate/backend/config"
	"github.com/pantryplate/backend/internal/api"
	"github.com/pantryplate/backend/internal/database"
	"github.com/pantryplate/backend/internal/middleware"
	"github.com/pantryplate/backend/internal/server"
	"github.com/pantryplate/backend/internal/service"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	healthDB, err := database.NewHealthDB(cfg)
	if err != nil {
		log.WithError(err).Warn("liveness connection unavailable")
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.WithError(err).Warn("redis unavailable, extraction rate limiting disabled")
		redisClient = nil
	}

	storage, err := config.NewS3Config(context.Background(), cfg)
	if err != nil {
		log.WithError(err).Warn("S3 unavailable, image uploads disabled")
		storage = nil
	}

	recipeService := service.NewRecipeService(db)
	captionService := service.NewCaptionService(cfg.CaptionAPIURL, cfg.CaptionAPIKey, log)
	imageService := service.NewImageService(storage, log)

	srv := server.New(cfg, server.Handlers{
		Recipes:     api.NewRecipeHandler(recipeService, log),
		Ingredients: api.NewIngredientHandler(captionService, log),
		Images:      api.NewImageHandler(imageService, log),
		Health:      api.NewHealthHandler(healthDB),
		RateLimiter: middleware.NewExtractionRateLimiter(redisClient),
	}, log)

	// Channel to listen for errors coming from the server
	errChan := make(chan error, 1)

	go func() {
		errChan <- srv.Start()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("server error: %v", err)
		}
	case sig := <-quit:
		log.WithField("signal", sig.String()).Info("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server shutdown error: %v", err)
	}
	log.Info("server stopped")
}
