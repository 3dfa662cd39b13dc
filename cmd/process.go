package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/hance08/txengine/internal/app"
	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/store"
	"github.com/hance08/txengine/internal/ui/views"
)

type processRunner struct {
	app    *app.App
	out    io.Writer
	errOut io.Writer
}

func (r *processRunner) Run(ctx context.Context, path string) error {
	ledgerSvc := r.app.Service.Ledger

	result, err := ledgerSvc.ProcessFile(ctx, path)
	if err != nil {
		return fmt.Errorf("failed to process transactions: %w", err)
	}

	var writer store.AccountWriter = store.NewCSVWriter(r.out)
	if r.app.Config.Output.Format == constants.FormatTable {
		writer = views.NewAccountTableView(r.out)
	}

	if err := ledgerSvc.Report(result, writer); err != nil {
		return fmt.Errorf("failed to print accounts: %w", err)
	}

	if !r.app.Config.Output.Summary {
		return nil
	}

	return views.RenderRunSummary(r.errOut, views.RunSummaryItem{
		RunID:    result.RunID,
		Source:   result.Source,
		Batches:  result.Batches,
		Accounts: result.Engine.Accounts().Len(),
		Locked:   result.Locked(),
		Duration: result.Duration,
		Stats:    result.Stats,
	})
}
