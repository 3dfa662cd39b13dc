package ledger

// Outcome describes what applying one record did. Skips are the defined
// no-op results for unmet preconditions, not errors.
type Outcome uint8

const (
	Applied Outcome = iota
	SkippedLocked
	SkippedMissing
	SkippedUnknownTarget
	SkippedInsufficientFunds
	SkippedAlreadyDisputed
	SkippedNotDisputed
	SkippedDisputedRecord
)

var outcomeNames = [...]string{
	Applied:                  "applied",
	SkippedLocked:            "locked",
	SkippedMissing:           "missing",
	SkippedUnknownTarget:     "unknown_target",
	SkippedInsufficientFunds: "insufficient_funds",
	SkippedAlreadyDisputed:   "already_disputed",
	SkippedNotDisputed:       "not_disputed",
	SkippedDisputedRecord:    "disputed_record",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

// Processor applies single records from the entry store to the account
// table.
type Processor struct {
	entries  *Entries
	accounts *Accounts
}

func NewProcessor(entries *Entries, accounts *Accounts) *Processor {
	return &Processor{entries: entries, accounts: accounts}
}

// Apply runs the record at pos for client. It never fails: a record whose
// preconditions don't hold leaves every balance and flag untouched.
func (p *Processor) Apply(pos int, client uint16) Outcome {
	account := p.accounts.GetOrCreate(client)
	if account.Locked {
		return SkippedLocked
	}

	record, ok := p.entries.Get(pos)
	if !ok {
		return SkippedMissing
	}

	switch record.kind {
	case Deposit:
		if record.disputed || !record.hasAmount {
			return SkippedDisputedRecord
		}
		account.Available = account.Available.Add(record.amount)
		account.Total = account.Total.Add(record.amount)

	case Withdrawal:
		if record.disputed || !record.hasAmount {
			return SkippedDisputedRecord
		}
		if account.Available.LessThan(record.amount) {
			return SkippedInsufficientFunds
		}
		account.Available = account.Available.Sub(record.amount)
		account.Total = account.Total.Sub(record.amount)

	case Dispute:
		target, ok := p.entries.Target(record.tx)
		if !ok || !target.hasAmount {
			return SkippedUnknownTarget
		}
		if target.disputed {
			return SkippedAlreadyDisputed
		}
		account.Available = account.Available.Sub(target.amount)
		account.Held = account.Held.Add(target.amount)
		target.disputed = true

	case Resolve:
		target, ok := p.entries.Target(record.tx)
		if !ok || !target.hasAmount {
			return SkippedUnknownTarget
		}
		if !target.disputed {
			return SkippedNotDisputed
		}
		account.Available = account.Available.Add(target.amount)
		account.Held = account.Held.Sub(target.amount)
		target.disputed = false

	case Chargeback:
		target, ok := p.entries.Target(record.tx)
		if !ok || !target.hasAmount {
			return SkippedUnknownTarget
		}
		if !target.disputed {
			return SkippedNotDisputed
		}
		account.Held = account.Held.Sub(target.amount)
		account.Total = account.Total.Sub(target.amount)
		// one-way, no record kind unlocks an account
		account.Locked = true

	default:
		return SkippedMissing
	}

	return Applied
}
