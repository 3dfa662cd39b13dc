package views

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/hance08/txengine/internal/ledger"
	"github.com/hance08/txengine/internal/ui"
	"github.com/pterm/pterm"
)

type RunSummaryItem struct {
	RunID    string
	Source   string
	Batches  int
	Accounts int
	Locked   int
	Duration time.Duration
	Stats    ledger.Stats
}

// RenderRunSummary prints per-kind applied and ignored counts.
func RenderRunSummary(w io.Writer, item RunSummaryItem) error {
	fmt.Fprint(w, ui.L1Title("Run Summary"))

	info := pterm.TableData{
		{"Run ID", item.RunID},
		{"Source", item.Source},
		{"Batches", strconv.Itoa(item.Batches)},
		{"Accounts", fmt.Sprintf("%d (%d locked)", item.Accounts, item.Locked)},
		{"Duration", item.Duration.Round(time.Millisecond).String()},
	}

	table, err := pterm.DefaultTable.WithData(info).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	fmt.Fprint(w, ui.L2Title("Transactions"))

	tableData := pterm.TableData{{"Type", "Applied", "Ignored"}}
	for _, kind := range ledger.Kinds() {
		applied := item.Stats.Count(kind, ledger.Applied)
		ignored := 0
		for key, n := range item.Stats.Counts {
			if key.Kind == kind && key.Outcome != ledger.Applied {
				ignored += n
			}
		}

		ignoredStr := strconv.Itoa(ignored)
		if ignored > 0 {
			ignoredStr = pterm.Yellow(ignoredStr)
		}
		tableData = append(tableData, []string{kind.String(), pterm.Green(strconv.Itoa(applied)), ignoredStr})
	}

	table, err = pterm.DefaultTable.WithHasHeader().WithData(tableData).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, table)

	fmt.Fprint(w, pterm.Info.Sprintf("Total: %d records, %d applied, %d ignored\n",
		item.Stats.Records(), item.Stats.Applied(), item.Stats.Skipped()))

	return nil
}
