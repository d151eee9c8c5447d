package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/alexanderramin/homedash/internal/cli"
	"github.com/alexanderramin/homedash/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	app := &cli.App{
		Config: cfg,
		Logger: logger,
	}

	return cli.NewRootCmd(app).Execute()
}
