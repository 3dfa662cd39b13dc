package ledger

// Engine owns the entry store and the account table for one ingestion
// stream. It remembers how far the store has been applied so successive
// batches only process what they appended. Not safe for concurrent use.
type Engine struct {
	accounts  *Accounts
	entries   *Entries
	processor *Processor
	cursor    int
	stats     Stats
}

func NewEngine() *Engine {
	accounts := NewAccounts()
	entries := NewEntries()

	return &Engine{
		accounts:  accounts,
		entries:   entries,
		processor: NewProcessor(entries, accounts),
		stats:     NewStats(),
	}
}

// Process appends batch and applies every record from the cursor to the
// new end in order. Re-submitting an already processed batch appends it
// again; duplicates are not detected.
func (e *Engine) Process(batch []Transaction) Stats {
	e.entries.Append(batch...)

	delta := NewStats()
	for pos := e.cursor; pos < e.entries.Len(); pos++ {
		record, ok := e.entries.Get(pos)
		if !ok {
			continue
		}

		outcome := e.processor.Apply(pos, record.client)
		delta.add(record.kind, outcome)
	}

	e.cursor = e.entries.Len()
	e.stats.merge(delta)

	return delta
}

func (e *Engine) Accounts() *Accounts {
	return e.accounts
}

// Cursor is the position of the first record not yet applied.
func (e *Engine) Cursor() int {
	return e.cursor
}

func (e *Engine) Stats() Stats {
	return e.stats.clone()
}
