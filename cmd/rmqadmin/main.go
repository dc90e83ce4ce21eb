package main

import (
	"os"

	"github.com/andrelcunha/rmqadmin/config"
	"github.com/andrelcunha/rmqadmin/pkg/logger"
	"github.com/rs/zerolog/log"
)

var (
	VERSION = ""
)

func main() {
	// Load configuration from .env file, environment variables, or defaults
	cfg := config.LoadConfig(VERSION)

	// Initialize logger with configured log level
	logger.Init(cfg.LogLevel)

	a := &app{cfg: cfg, out: os.Stdout}
	if err := newRootCmd(a).Execute(); err != nil {
		log.Error().Err(err).Msg("Command failed")
		os.Exit(1)
	}
}
