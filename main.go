package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-gateway/config"
	"hotel-gateway/controllers"
	"hotel-gateway/routes"
	"hotel-gateway/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	setupLogging(cfg)

	api := services.NewClient(cfg.UpstreamURL)
	tokens := services.NewTokenService(cfg.SessionSecret, cfg.SessionTTL)
	store := services.NewSearchStore(cfg.SearchTTL)

	roomService := services.NewRoomService(api)
	userService := services.NewUserService(api)
	authService := services.NewAuthService(api, tokens)
	reservationService := services.NewReservationService(api, userService, roomService)
	eventService := services.NewEventService(api)
	statsService := services.NewStatsService(api)
	galleryService := services.NewGalleryService(api)
	bookingService := services.NewBookingService(roomService, store)

	ctrl := routes.Controllers{
		Auth:         controllers.NewAuthController(authService),
		Home:         controllers.NewHomeController(roomService, galleryService),
		Booking:      controllers.NewBookingController(bookingService),
		Gallery:      controllers.NewGalleryController(galleryService),
		Rooms:        controllers.NewRoomController(roomService),
		Reservations: controllers.NewReservationController(reservationService),
		Events:       controllers.NewEventController(eventService),
		Users:        controllers.NewUserController(userService),
		Stats:        controllers.NewStatsController(statsService),
	}

	router := routes.SetupRouter(ctrl, tokens, cfg.CORSOrigins)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("upstream", cfg.UpstreamURL).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}

	log.Info().Msg("server stopped")
}

func setupLogging(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
