package service

import (
	"github.com/hance08/txengine/internal/obs"
	"github.com/pterm/pterm"
)

type Config struct {
	BatchSize   int
	MetricsFile string
}

type Service struct {
	Ledger *LedgerService
}

func NewService(cfg Config, logger *pterm.Logger, metrics *obs.Metrics) *Service {
	return &Service{
		Ledger: NewLedgerService(cfg, logger, metrics),
	}
}
