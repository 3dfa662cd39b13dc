package views

import (
	"fmt"
	"io"
	"iter"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/hance08/txengine/internal/store"
	"github.com/hance08/txengine/internal/ui"
	"github.com/pterm/pterm"
)

// AccountTableView renders accounts as a pterm table. It satisfies
// store.AccountWriter so it can replace the CSV writer.
type AccountTableView struct {
	out io.Writer
}

func NewAccountTableView(out io.Writer) *AccountTableView {
	return &AccountTableView{out: out}
}

func (v *AccountTableView) WriteAccounts(accounts iter.Seq[ledger.Account]) error {
	tableData := pterm.TableData{constants.AccountHeader}

	count, locked := 0, 0
	for acc := range accounts {
		row := store.AccountRow(acc)

		switch {
		case acc.Locked:
			locked++
			for i := range row {
				row[i] = ui.LockedStyle.Sprint(row[i])
			}
		case acc.Held.IsPositive(): // open dispute
			row[2] = ui.HeldStyle.Sprint(row[2])
		}

		tableData = append(tableData, row)
		count++
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithRightAlignment().WithData(tableData).Srender()
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrWriteAccounts, err)
	}

	if _, err := fmt.Fprintln(v.out, table); err != nil {
		return fmt.Errorf("%w: %w", store.ErrWriteAccounts, err)
	}

	if _, err := fmt.Fprint(v.out, pterm.Info.Sprintf("Total: %d accounts (%d locked)\n", count, locked)); err != nil {
		return fmt.Errorf("%w: %w", store.ErrWriteAccounts, err)
	}

	return nil
}
