package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alimikegami/bdseller-service/config"
	"github.com/alimikegami/bdseller-service/internal/app"
	"github.com/alimikegami/bdseller-service/internal/infrastructure/database/mongodb"
	"github.com/alimikegami/bdseller-service/internal/infrastructure/tracing"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	config := config.CreateNewConfig()
	setupLogger(config)

	if config.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET (or ACCESS_TOKEN_SECRET) must be set")
	}

	traceProvider, err := tracing.InitTracing(config.TracingConfig.CollectorHost, config.TracingConfig.ServiceName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize tracing")
	}

	db, err := mongodb.ConnectToMongoDB(config.MongoDBConfig.URI, config.MongoDBConfig.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := mongodb.EnsureIndexes(indexCtx, db); err != nil {
		log.Fatal().Err(err).Msg("Failed to create MongoDB indexes")
	}
	cancelIndex()

	server := app.App{
		DB:     db,
		Config: config,
	}
	server.Setup()

	go func() {
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.StopServer(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to stop server")
	}
	if err := db.Client().Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}
	if traceProvider != nil {
		if err := traceProvider.Shutdown(ctx); err != nil {
			log.Error().Err(err).Msg("Failed to shutdown tracing")
		}
	}

	log.Info().Msg("Server stopped")
}

func setupLogger(config *config.Config) {
	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil || config.LogLevel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if config.IsProduction() {
		log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
		return
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
