package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"animals-api/internal/adapters/storage/mongo"
	"animals-api/internal/config"
	"animals-api/internal/platform/logger"
	"animals-api/internal/router"

	"github.com/rs/zerolog"

	_ "github.com/joho/godotenv/autoload"

	_ "animals-api/docs"
)

// @title Animals API
// @version 1.0
// @description API CRUD del catálogo de animales sobre un document store (MongoDB). El ID de cada animal lo asigna el store (hex de 24 caracteres); create y update comparten el mismo esquema y update es reemplazo de documento completo.
// @host localhost:3000
// @BasePath /
func main() {
	cfg, err := config.Load()
	if err != nil {
		// todavía no hay config de logging; logger mínimo solo para abortar
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(cfg.LogLevel, cfg.LogFormat)

	// Sin store no hay servicio: conectar y hacer ping ANTES de abrir
	// el puerto. Si falla, el proceso termina con exit != 0.
	client, err := mongo.Open(context.Background(), cfg.MongoURI)
	if err != nil {
		log.Fatal().Err(err).Str("db", cfg.MongoDB).Msg("store connection failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	repo := mongo.NewAnimalRepo(client.Database(cfg.MongoDB))

	r := router.NewRouter(router.Options{
		Animals: repo,
		Logger:  log,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("db", cfg.MongoDB).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
	log.Info().Msg("server stopped")
}
