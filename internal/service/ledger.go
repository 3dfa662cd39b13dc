package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hance08/txengine/internal/ids"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/hance08/txengine/internal/obs"
	"github.com/hance08/txengine/internal/store"
	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

type LedgerService struct {
	config  Config
	logger  *pterm.Logger
	metrics *obs.Metrics
}

func NewLedgerService(cfg Config, logger *pterm.Logger, metrics *obs.Metrics) *LedgerService {
	return &LedgerService{config: cfg, logger: logger, metrics: metrics}
}

// RunResult is the state left behind by one ingestion run.
type RunResult struct {
	RunID    string
	Source   string
	Batches  int
	Duration time.Duration
	Stats    ledger.Stats
	Engine   *ledger.Engine
}

// ProcessFile opens path and runs every transaction in it through a fresh
// engine.
func (s *LedgerService) ProcessFile(ctx context.Context, path string) (*RunResult, error) {
	src, err := store.OpenCSV(path, s.config.BatchSize)
	if err != nil {
		return nil, err
	}
	defer src.Close()

	result, err := s.Run(ctx, src)
	if err != nil {
		return nil, err
	}
	result.Source = path

	return result, nil
}

// Run reads src on one goroutine and applies batches on another. The
// engine is only ever touched by the applying goroutine, in arrival order.
func (s *LedgerService) Run(ctx context.Context, src store.TransactionSource) (*RunResult, error) {
	result := &RunResult{
		RunID:  ids.New(),
		Engine: ledger.NewEngine(),
	}
	logger := s.logger
	start := time.Now()

	logger.Info("run started", logger.Args("run_id", result.RunID, "batch_size", s.config.BatchSize))

	g, gctx := errgroup.WithContext(ctx)
	batches := make(chan []ledger.Transaction, 1)

	g.Go(func() error {
		defer close(batches)

		for {
			if err := gctx.Err(); err != nil {
				return err
			}

			batch, err := src.Next()
			if errors.Is(err, io.EOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("read transactions: %w", err)
			}

			select {
			case batches <- batch:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
	})

	g.Go(func() error {
		for batch := range batches {
			stats := result.Engine.Process(batch)
			result.Batches++
			s.metrics.ObserveBatch(stats)

			logger.Debug("batch applied", logger.Args(
				"run_id", result.RunID,
				"records", len(batch),
				"applied", stats.Applied(),
				"ignored", stats.Skipped(),
				"cursor", result.Engine.Cursor(),
			))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result.Duration = time.Since(start)
	result.Stats = result.Engine.Stats()
	s.metrics.ObserveDuration(result.Duration)

	logger.Info("run finished", logger.Args(
		"run_id", result.RunID,
		"records", result.Stats.Records(),
		"batches", result.Batches,
		"accounts", result.Engine.Accounts().Len(),
		"duration", result.Duration,
	))

	return result, nil
}

// Report hands the accounts to w in client order and exports metrics if a
// metrics file is configured. A failed metrics export is only logged.
func (s *LedgerService) Report(result *RunResult, w store.AccountWriter) error {
	accounts := result.Engine.Accounts()

	if err := w.WriteAccounts(accounts.Sorted()); err != nil {
		return err
	}

	locked := result.Locked()
	s.metrics.ObserveAccounts(accounts.Len()-locked, locked)

	if s.config.MetricsFile != "" {
		if err := s.metrics.WriteTextfile(s.config.MetricsFile); err != nil {
			s.logger.Warn("metrics export failed", s.logger.Args("run_id", result.RunID, "path", s.config.MetricsFile, "error", err))
		}
	}

	return nil
}

// Locked counts locked accounts in a finished run.
func (r *RunResult) Locked() int {
	n := 0
	for acc := range r.Engine.Accounts().Sorted() {
		if acc.Locked {
			n++
		}
	}
	return n
}
