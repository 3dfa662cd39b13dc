package ledger

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func deposit(t *testing.T, client uint16, tx uint32, amount string) Transaction {
	t.Helper()

	trx, err := NewDeposit(client, tx, dec(amount))
	require.NoError(t, err)

	return trx
}

func withdrawal(t *testing.T, client uint16, tx uint32, amount string) Transaction {
	t.Helper()

	trx, err := NewWithdrawal(client, tx, dec(amount))
	require.NoError(t, err)

	return trx
}

func assertBalances(t *testing.T, acc Account, available, held, total string, locked bool) {
	t.Helper()

	assert.True(t, acc.Available.Equal(dec(available)), "available: want %s, got %s", available, acc.Available)
	assert.True(t, acc.Held.Equal(dec(held)), "held: want %s, got %s", held, acc.Held)
	assert.True(t, acc.Total.Equal(dec(total)), "total: want %s, got %s", total, acc.Total)
	assert.Equal(t, locked, acc.Locked, "locked")
}

func accountOf(t *testing.T, e *Engine, client uint16) Account {
	t.Helper()

	acc, ok := e.Accounts().Get(client)
	require.True(t, ok, "account %d should exist", client)

	return acc
}
