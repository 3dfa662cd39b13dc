package ledger

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var ErrNegativeAmount = errors.New("amount can't be negative")

type Kind uint8

const (
	Deposit Kind = iota + 1
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

var kindNames = map[Kind]string{
	Deposit:    "deposit",
	Withdrawal: "withdrawal",
	Dispute:    "dispute",
	Resolve:    "resolve",
	Chargeback: "chargeback",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Kinds lists every transaction kind in declaration order.
func Kinds() []Kind {
	return []Kind{Deposit, Withdrawal, Dispute, Resolve, Chargeback}
}

// ParseKind only accepts the exact lowercase names.
func ParseKind(s string) (Kind, bool) {
	for k, name := range kindNames {
		if name == s {
			return k, true
		}
	}
	return 0, false
}

// carriesAmount reports whether records of this kind own an amount and
// can therefore be the target of a dispute.
func (k Kind) carriesAmount() bool {
	return k == Deposit || k == Withdrawal
}

// Transaction is one record of the input stream. Deposits and withdrawals
// carry an amount, the dispute family only references an earlier record
// through its tx id.
type Transaction struct {
	kind      Kind
	client    uint16
	tx        uint32
	amount    decimal.Decimal
	hasAmount bool
	disputed  bool
}

func NewDeposit(client uint16, tx uint32, amount decimal.Decimal) (Transaction, error) {
	return newFunds(Deposit, client, tx, amount)
}

func NewWithdrawal(client uint16, tx uint32, amount decimal.Decimal) (Transaction, error) {
	return newFunds(Withdrawal, client, tx, amount)
}

func NewDispute(client uint16, tx uint32) Transaction {
	return Transaction{kind: Dispute, client: client, tx: tx}
}

func NewResolve(client uint16, tx uint32) Transaction {
	return Transaction{kind: Resolve, client: client, tx: tx}
}

func NewChargeback(client uint16, tx uint32) Transaction {
	return Transaction{kind: Chargeback, client: client, tx: tx}
}

func newFunds(kind Kind, client uint16, tx uint32, amount decimal.Decimal) (Transaction, error) {
	if amount.IsNegative() {
		return Transaction{}, fmt.Errorf("%s tx %d: %w", kind, tx, ErrNegativeAmount)
	}

	return Transaction{
		kind:      kind,
		client:    client,
		tx:        tx,
		amount:    amount,
		hasAmount: true,
	}, nil
}

func (t Transaction) Kind() Kind { return t.kind }
func (t Transaction) Client() uint16 { return t.client }
func (t Transaction) TxID() uint32 { return t.tx }
func (t Transaction) Disputed() bool { return t.disputed }

// Amount returns false for the dispute family.
func (t Transaction) Amount() (decimal.Decimal, bool) {
	return t.amount, t.hasAmount
}
