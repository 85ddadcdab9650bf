package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/radianceacademy/radiance-backend/internal/config"
	"github.com/radianceacademy/radiance-backend/internal/database"
	"github.com/radianceacademy/radiance-backend/internal/handler"
	"github.com/radianceacademy/radiance-backend/internal/logger"
	"github.com/radianceacademy/radiance-backend/internal/repository"
	"github.com/radianceacademy/radiance-backend/internal/router"
	"github.com/radianceacademy/radiance-backend/internal/service"
	"github.com/radianceacademy/radiance-backend/internal/validator"
)

func main() {
	cfg := config.Load()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting Radiance Academy Backend")

	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, db, err := database.Connect(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create indexes")
	}

	media, err := service.NewCloudinaryStore(cfg.CloudinaryURL, cfg.MediaFolder)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Cloudinary")
	}

	adminRepo := repository.NewAdminRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	topperRepo := repository.NewTopperRepository(db)
	achievementRepo := repository.NewAchievementRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	homeRepo := repository.NewHomeRepository(db)
	contactRepo := repository.NewContactRepository(db)

	authService := service.NewAuthService(cfg, adminRepo, log)
	courseService := service.NewCourseService(courseRepo, media, cfg, log)
	topperService := service.NewTopperService(topperRepo, media, cfg, log)
	achievementService := service.NewAchievementService(achievementRepo, media, cfg, log)
	galleryService := service.NewGalleryService(galleryRepo, media, cfg, log)
	homeService := service.NewHomeService(homeRepo, media, cfg, log)
	contactService := service.NewContactService(contactRepo, log)

	handlers := &router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Course:      handler.NewCourseHandler(courseService),
		Topper:      handler.NewTopperHandler(topperService),
		Achievement: handler.NewAchievementHandler(achievementService),
		Gallery:     handler.NewGalleryHandler(galleryService),
		Home:        handler.NewHomeHandler(homeService),
		Contact:     handler.NewContactHandler(contactService),
	}

	r := router.SetupRouter(authService, handlers, cfg)

	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
