package store

import (
	"iter"

	"github.com/hance08/txengine/internal/ledger"
)

// TransactionSource yields the input stream in order, one batch at a time.
// Next returns io.EOF once the stream is exhausted.
type TransactionSource interface {
	Next() ([]ledger.Transaction, error)
	Close() error
}

// AccountWriter serializes the final account states.
type AccountWriter interface {
	WriteAccounts(accounts iter.Seq[ledger.Account]) error
}
