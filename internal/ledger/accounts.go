package ledger

import (
	"iter"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

type Account struct {
	Client    uint16
	Available decimal.Decimal
	Held      decimal.Decimal
	Total     decimal.Decimal
	Locked    bool
}

func NewAccount(client uint16) *Account {
	return &Account{
		Client:    client,
		Available: decimal.Zero,
		Held:      decimal.Zero,
		Total:     decimal.Zero,
	}
}

// Accounts maps client ids to their balances. Accounts are created on
// first reference and never removed.
type Accounts struct {
	byClient map[uint16]*Account
}

func NewAccounts() *Accounts {
	return &Accounts{byClient: make(map[uint16]*Account)}
}

func (a *Accounts) Get(client uint16) (Account, bool) {
	acc, ok := a.byClient[client]
	if !ok {
		return Account{}, false
	}
	return *acc, true
}

func (a *Accounts) GetOrCreate(client uint16) *Account {
	acc, ok := a.byClient[client]
	if !ok {
		acc = NewAccount(client)
		a.byClient[client] = acc
	}
	return acc
}

// Sorted yields copies of every account in ascending client id order.
// The sequence can be ranged over any number of times.
func (a *Accounts) Sorted() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, client := range slices.Sorted(maps.Keys(a.byClient)) {
			if !yield(*a.byClient[client]) {
				return
			}
		}
	}
}

func (a *Accounts) Len() int {
	return len(a.byClient)
}
