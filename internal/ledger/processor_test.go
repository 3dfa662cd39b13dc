package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProcessor(t *testing.T, records ...Transaction) (*Processor, *Entries, *Accounts) {
	t.Helper()

	entries := NewEntries()
	entries.Append(records...)
	accounts := NewAccounts()

	return NewProcessor(entries, accounts), entries, accounts
}

func TestProcessorApply(t *testing.T) {
	tests := []struct {
		name     string
		records  func(t *testing.T) []Transaction
		outcomes []Outcome
		want     [3]string
		locked   bool
	}{
		{
			name: "deposit credits available and total",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "0.5")}
			},
			outcomes: []Outcome{Applied},
			want:     [3]string{"0.5", "0", "0.5"},
		},
		{
			name: "withdrawal without funds is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{withdrawal(t, 1, 1, "0.5")}
			},
			outcomes: []Outcome{SkippedInsufficientFunds},
			want:     [3]string{"0", "0", "0"},
		},
		{
			name: "withdrawal of exactly available",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "2"), withdrawal(t, 1, 2, "2")}
			},
			outcomes: []Outcome{Applied, Applied},
			want:     [3]string{"0", "0", "0"},
		},
		{
			name: "deposit then partial withdrawal",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "0.5"), withdrawal(t, 1, 2, "0.3")}
			},
			outcomes: []Outcome{Applied, Applied},
			want:     [3]string{"0.2", "0", "0.2"},
		},
		{
			name: "dispute moves funds to held",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewDispute(1, 1)}
			},
			outcomes: []Outcome{Applied, Applied},
			want:     [3]string{"0", "1.5", "1.5"},
		},
		{
			name: "double dispute is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewDispute(1, 1), NewDispute(1, 1)}
			},
			outcomes: []Outcome{Applied, Applied, SkippedAlreadyDisputed},
			want:     [3]string{"0", "1.5", "1.5"},
		},
		{
			name: "dispute of unknown tx is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1"), NewDispute(1, 99)}
			},
			outcomes: []Outcome{Applied, SkippedUnknownTarget},
			want:     [3]string{"1", "0", "1"},
		},
		{
			name: "dispute referencing a dispute record is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{NewDispute(1, 5), NewDispute(1, 5)}
			},
			outcomes: []Outcome{SkippedUnknownTarget, SkippedUnknownTarget},
			want:     [3]string{"0", "0", "0"},
		},
		{
			name: "resolve releases held funds",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewDispute(1, 1), NewResolve(1, 1)}
			},
			outcomes: []Outcome{Applied, Applied, Applied},
			want:     [3]string{"1.5", "0", "1.5"},
		},
		{
			name: "resolve without dispute is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewResolve(1, 1)}
			},
			outcomes: []Outcome{Applied, SkippedNotDisputed},
			want:     [3]string{"1.5", "0", "1.5"},
		},
		{
			name: "chargeback without dispute is ignored",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewChargeback(1, 1)}
			},
			outcomes: []Outcome{Applied, SkippedNotDisputed},
			want:     [3]string{"1.5", "0", "1.5"},
		},
		{
			name: "chargeback removes held funds and locks",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "1.5"), NewDispute(1, 1), NewChargeback(1, 1)}
			},
			outcomes: []Outcome{Applied, Applied, Applied},
			want:     [3]string{"0", "0", "0"},
			locked:   true,
		},
		{
			name: "re-dispute after resolve",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "2"), NewDispute(1, 1), NewResolve(1, 1), NewDispute(1, 1)}
			},
			outcomes: []Outcome{Applied, Applied, Applied, Applied},
			want:     [3]string{"0", "2", "2"},
		},
		{
			name: "dispute of withdrawal follows the mechanical rule",
			records: func(t *testing.T) []Transaction {
				return []Transaction{deposit(t, 1, 1, "5"), withdrawal(t, 1, 2, "3"), NewDispute(1, 2)}
			},
			outcomes: []Outcome{Applied, Applied, Applied},
			want:     [3]string{"-1", "3", "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := tt.records(t)
			p, _, accounts := newProcessor(t, records...)

			var got []Outcome
			for pos, record := range records {
				got = append(got, p.Apply(pos, record.Client()))
			}
			assert.Equal(t, tt.outcomes, got)

			acc, ok := accounts.Get(1)
			require.True(t, ok)
			assertBalances(t, acc, tt.want[0], tt.want[1], tt.want[2], tt.locked)
			assert.True(t, acc.Total.Equal(acc.Available.Add(acc.Held)))
		})
	}
}

func TestProcessorLockedAccountIgnoresEverything(t *testing.T) {
	records := []Transaction{
		deposit(t, 1, 1, "1"),
		deposit(t, 1, 2, "4"),
		NewDispute(1, 1),
		NewChargeback(1, 1),
		deposit(t, 1, 3, "10"),
		withdrawal(t, 1, 4, "0.01"),
		NewDispute(1, 2),
		NewResolve(1, 2),
	}
	p, entries, accounts := newProcessor(t, records...)

	for pos, record := range records[:4] {
		require.Equal(t, Applied, p.Apply(pos, record.Client()))
	}
	for pos := 4; pos < len(records); pos++ {
		assert.Equal(t, SkippedLocked, p.Apply(pos, 1))
	}

	acc, _ := accounts.Get(1)
	assertBalances(t, acc, "4", "0", "4", true)

	target, ok := entries.Target(2)
	require.True(t, ok)
	assert.False(t, target.Disputed(), "dispute on a locked account must not flag the target")
}

func TestProcessorMissingPositionCreatesAccountOnly(t *testing.T) {
	p, _, accounts := newProcessor(t)

	assert.Equal(t, SkippedMissing, p.Apply(3, 9))

	acc, ok := accounts.Get(9)
	require.True(t, ok)
	assertBalances(t, acc, "0", "0", "0", false)
}

func TestProcessorDisputedDepositIsNotReapplied(t *testing.T) {
	p, entries, accounts := newProcessor(t, deposit(t, 1, 1, "2"), NewDispute(1, 1))

	require.Equal(t, Applied, p.Apply(0, 1))
	require.Equal(t, Applied, p.Apply(1, 1))

	// reprocessing the deposit position while it is under dispute
	assert.Equal(t, SkippedDisputedRecord, p.Apply(0, 1))

	acc, _ := accounts.Get(1)
	assertBalances(t, acc, "0", "2", "2", false)

	target, _ := entries.Target(1)
	assert.True(t, target.Disputed())
}
