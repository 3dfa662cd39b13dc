package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{in: "deposit", want: Deposit, ok: true},
		{in: "withdrawal", want: Withdrawal, ok: true},
		{in: "dispute", want: Dispute, ok: true},
		{in: "resolve", want: Resolve, ok: true},
		{in: "chargeback", want: Chargeback, ok: true},
		{in: "Deposit", ok: false},
		{in: "DEPOSIT", ok: false},
		{in: "refund", ok: false},
		{in: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseKind(tt.in)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.Equal(t, tt.in, got.String())
			}
		})
	}
}

func TestNewDepositRejectsNegativeAmount(t *testing.T) {
	_, err := NewDeposit(1, 1, dec("-0.5"))
	require.ErrorIs(t, err, ErrNegativeAmount)

	_, err = NewWithdrawal(1, 2, dec("-1"))
	require.ErrorIs(t, err, ErrNegativeAmount)
}

func TestTransactionAmountByKind(t *testing.T) {
	d := deposit(t, 3, 7, "2.5")
	amount, ok := d.Amount()
	require.True(t, ok)
	assert.True(t, amount.Equal(dec("2.5")))
	assert.Equal(t, Deposit, d.Kind())
	assert.Equal(t, uint16(3), d.Client())
	assert.Equal(t, uint32(7), d.TxID())
	assert.False(t, d.Disputed())

	zero := deposit(t, 3, 8, "0")
	_, ok = zero.Amount()
	assert.True(t, ok, "zero is a valid amount")

	for _, trx := range []Transaction{NewDispute(3, 7), NewResolve(3, 7), NewChargeback(3, 7)} {
		_, ok := trx.Amount()
		assert.False(t, ok, "%s carries no amount", trx.Kind())
	}
}
