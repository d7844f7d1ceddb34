package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Ferhan0/Movie-Recommendation-System/docs" // swagger docs

	"github.com/Ferhan0/Movie-Recommendation-System/internal/cache"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/config"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/db"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/handler"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/identity"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/logging"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/mlclient"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/repository"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/service"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/tmdb"
	"github.com/Ferhan0/Movie-Recommendation-System/internal/upstream"

	"github.com/rs/zerolog/log"
)

// @title Movie Recommendation API
// @version 1.0
// @description Catálogo, ratings y proxy de recomendaciones (TMDB + servicio ML)
// @host localhost:5001
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// sin los índices únicos el get-or-create no es seguro entre procesos
	idxCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := db.EnsureIndexes(idxCtx, db.DB()); err != nil {
		log.Fatal().Err(err).Msg("no se pudieron crear los índices (ver `migrate duplicates`)")
	}
	cancel()

	// repos
	database := db.DB()
	userRepo := repository.NewUserRepository(database)
	movieRepo := repository.NewMovieRepository(database)
	ratingRepo := repository.NewRatingRepository(database)
	recRepo := repository.NewRecommendationRepository(database)

	// clientes externos
	tmdbClient := tmdb.NewClient(cfg.TMDBBaseURL, cfg.TMDBAPIKey,
		upstream.New(upstream.Config{Name: "tmdb", Timeout: cfg.UpstreamTimeout}))
	mlClient := mlclient.NewClient(cfg.MLServiceURL,
		upstream.New(upstream.Config{Name: "ml", Timeout: cfg.UpstreamTimeout}))
	reconciler := identity.NewReconciler(cfg.MLUserSpace)

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo, tmdbClient, cfg.TMDBCacheTTL)
	ratingSvc := service.NewRatingService(ratingRepo, movieSvc)
	recSvc := service.NewRecommendService(mlClient, recRepo, reconciler, cfg.RecCacheTTL)
	analyticsSvc := service.NewAnalyticsService(mlClient, reconciler, cfg.SnapshotDir, cfg.SnapshotMaxAge)

	// handlers
	router := handler.NewRouter(handler.Handlers{
		Auth:      handler.NewAuthHandler(authSvc),
		Movie:     handler.NewMovieHandler(movieSvc, reconciler),
		Rating:    handler.NewRatingHandler(ratingSvc),
		Recommend: handler.NewRecommendHandler(recSvc),
		Analytics: handler.NewAnalyticsHandler(analyticsSvc),
	}, handler.RouterOptions{
		JWTSecret:    cfg.JWTSecret,
		CORSOrigins:  cfg.CORSOrigins,
		RateLimitRPM: cfg.RateLimitRPM,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP escuchando")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	log.Info().Msg("apagando")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown HTTP")
	}
	if err := cache.Close(); err != nil {
		log.Warn().Err(err).Msg("cerrando Redis")
	}
	if err := db.Disconnect(ctx); err != nil {
		log.Warn().Err(err).Msg("cerrando Mongo")
	}
}
