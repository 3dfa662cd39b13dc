package store

import (
	"encoding/csv"
	"fmt"
	"io"
	"iter"
	"strconv"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/shopspring/decimal"
)

type CSVWriter struct {
	out io.Writer
}

func NewCSVWriter(out io.Writer) *CSVWriter {
	return &CSVWriter{out: out}
}

// WriteAccounts writes the header followed by one row per account in the
// order the sequence yields them.
func (w *CSVWriter) WriteAccounts(accounts iter.Seq[ledger.Account]) error {
	writer := csv.NewWriter(w.out)

	if err := writer.Write(constants.AccountHeader); err != nil {
		return fmt.Errorf("%w: header: %w", ErrWriteAccounts, err)
	}

	for acc := range accounts {
		if err := writer.Write(AccountRow(acc)); err != nil {
			return fmt.Errorf("%w: client %d: %w", ErrWriteAccounts, acc.Client, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("%w: flush: %w", ErrWriteAccounts, err)
	}

	return nil
}

// AccountRow renders an account in output column order.
func AccountRow(acc ledger.Account) []string {
	return []string{
		strconv.FormatUint(uint64(acc.Client), 10),
		FormatAmount(acc.Available),
		FormatAmount(acc.Held),
		FormatAmount(acc.Total),
		strconv.FormatBool(acc.Locked),
	}
}

// FormatAmount prints d with the scale it carries, so "2.0" stays "2.0" and
// "1.2500" stays "1.2500". Add and Sub keep the larger scale of their
// operands.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(max(0, -d.Exponent()))
}
