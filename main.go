package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"loan-schedule/chart"
	"loan-schedule/cli"
	"loan-schedule/config"
	"loan-schedule/console"
	"loan-schedule/service"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	configureLogger(logger, cfg)

	loanService := service.NewLoanService(logger)

	prompter := console.NewPrompter(os.Stdin, os.Stdout)
	table := console.NewTableRenderer(os.Stdout)

	var renderer cli.ScheduleRenderer
	if cfg.ChartEnabled {
		renderer = chart.NewRenderer(cfg.ChartFile, cfg.ChartWidth, cfg.ChartHeight, logger)
	}

	runner := cli.NewRunner(prompter, loanService, table, renderer, logger)

	if _, err := runner.Run(); err != nil {
		logger.Fatalf("Failed to build amortization schedule: %v", err)
	}
}

func configureLogger(logger *logrus.Logger, cfg *config.Config) {
	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Unknown log level %q, using info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}
