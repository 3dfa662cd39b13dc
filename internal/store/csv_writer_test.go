package store

import (
	"bytes"
	"errors"
	"testing"

	"github.com/hance08/txengine/internal/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriterWritesSortedAccounts(t *testing.T) {
	accounts := ledger.NewAccounts()

	two := accounts.GetOrCreate(2)
	two.Available = decimal.RequireFromString("2.0")
	two.Total = decimal.RequireFromString("2.0")

	one := accounts.GetOrCreate(1)
	one.Available = decimal.RequireFromString("1.5")
	one.Total = decimal.RequireFromString("1.5")
	one.Locked = true

	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(&buf).WriteAccounts(accounts.Sorted()))

	want := "client,available,held,total,locked\n" +
		"1,1.5,0,1.5,true\n" +
		"2,2.0,0,2.0,false\n"
	assert.Equal(t, want, buf.String())
}

func TestCSVWriterEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewCSVWriter(&buf).WriteAccounts(ledger.NewAccounts().Sorted()))

	assert.Equal(t, "client,available,held,total,locked\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCSVWriterReportsFailure(t *testing.T) {
	accounts := ledger.NewAccounts()
	accounts.GetOrCreate(1)

	err := NewCSVWriter(failingWriter{}).WriteAccounts(accounts.Sorted())
	assert.ErrorIs(t, err, ErrWriteAccounts)
}

func TestAccountRowKeepsPrecision(t *testing.T) {
	row := AccountRow(ledger.Account{
		Client:    7,
		Available: decimal.RequireFromString("0.0001"),
		Held:      decimal.RequireFromString("1234567.8912"),
		Total:     decimal.RequireFromString("1234567.8913"),
	})

	assert.Equal(t, []string{"7", "0.0001", "1234567.8912", "1234567.8913", "false"}, row)
}

func TestFormatAmountKeepsScale(t *testing.T) {
	tests := []struct {
		name string
		in   decimal.Decimal
		want string
	}{
		{name: "zero", in: decimal.Zero, want: "0"},
		{name: "integer", in: decimal.RequireFromString("12"), want: "12"},
		{name: "trailing zero", in: decimal.RequireFromString("2.0"), want: "2.0"},
		{name: "four places", in: decimal.RequireFromString("1.2500"), want: "1.2500"},
		{name: "sum takes larger scale", in: decimal.RequireFromString("3").Add(decimal.RequireFromString("0.10")), want: "3.10"},
		{name: "difference to zero", in: decimal.RequireFromString("2.0").Sub(decimal.RequireFromString("2.0")), want: "0.0"},
		{name: "positive exponent", in: decimal.New(5, 2), want: "500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(tt.in))
		})
	}
}
