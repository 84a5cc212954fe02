package main

import (
	"log/slog"
	"os"

	"github.com/anantdinesh/selfreferral/config"
	"github.com/anantdinesh/selfreferral/routes"
)

func main() {
	config.Init()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: config.Cfg.LogLevel,
	}))
	slog.SetDefault(logger)

	r := routes.SetupRouter(logger)
	if err := r.Run(":" + config.Cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
