package app

import (
	"fmt"
	"io"

	"github.com/hance08/txengine/internal/config"
	"github.com/hance08/txengine/internal/obs"
	"github.com/hance08/txengine/internal/service"
	"github.com/pterm/pterm"
)

type App struct {
	Config  *config.Config
	Service *service.Service
	Logger  *pterm.Logger
	Metrics *obs.Metrics
}

// NewApp validates config, sets up logging and metrics, then returns the
// wired App. Logs go to logOut so stdout stays reserved for the report.
func NewApp(cfg *config.Config, logOut io.Writer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger := obs.NewLogger(cfg.Log.Level, logOut)
	metrics := obs.NewMetrics()

	svc := service.NewService(service.Config{
		BatchSize:   cfg.Engine.BatchSize,
		MetricsFile: cfg.Metrics.File,
	}, logger, metrics)

	return &App{
		Config:  cfg,
		Service: svc,
		Logger:  logger,
		Metrics: metrics,
	}, nil
}
