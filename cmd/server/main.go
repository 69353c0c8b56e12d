package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"fantasy-gm-service/internal/config"
	"fantasy-gm-service/internal/logging"
	"fantasy-gm-service/internal/server"
)

const serviceName = "fantasy-gm-service"

func main() {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	bootstrap := logging.NewLogger(logging.Config{Service: serviceName})
	cfg := config.Load(bootstrap)

	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: serviceName,
	})

	if len(cfg.Leagues) == 0 {
		logger.Warn("no leagues configured, league endpoints will return 404",
			slog.String("hint", "set LEAGUE_1_NAME, LEAGUE_1_ID, LEAGUE_1_YEAR and credentials"))
	}

	logger.Info("starting",
		slog.String("port", cfg.Port),
		slog.String("provider", cfg.Provider),
		slog.Int("leagues", len(cfg.Leagues)))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server.New(cfg, logger).Run(ctx, stop)
}
