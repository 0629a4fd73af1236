package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/engine"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/market"
	"github.com/Sathwick-Reddy-M/FinanceBot-Backend/server"
)

func main() {
	_ = godotenv.Load()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("ANTHROPIC_API_KEY") == "" {
		logger.Fatal().Msg("ANTHROPIC_API_KEY environment variable is required")
	}
	googleKey := os.Getenv("GOOGLE_API_KEY")
	if googleKey == "" {
		logger.Fatal().Msg("GOOGLE_API_KEY environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var marketOpts []market.Option
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		marketOpts = append(marketOpts, market.WithModel(model))
	}
	marketOpts = append(marketOpts, market.WithLogger(logger))
	advisor, err := market.NewClient(ctx, googleKey, marketOpts...)
	if err != nil {
		logger.Fatal().Err(err).Msg("create market client")
	}

	client := anthropic.NewClient()
	var engineOpts []engine.Option
	if model := os.Getenv("MODEL"); model != "" {
		engineOpts = append(engineOpts, engine.WithModel(anthropic.Model(model)))
	}
	engineOpts = append(engineOpts, engine.WithLogger(logger))
	eng := engine.NewEngine(&client, engineOpts...)

	srv, err := server.New(server.Config{
		Advisor: advisor,
		Engine:  eng,
		Logger:  logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("create server")
	}
	defer srv.Close()

	if err := srv.Run(ctx, ":"+port); err != nil {
		logger.Fatal().Err(err).Msg("server failed")
	}
}
