package ledger

// Entries is the append-only record sequence plus the tx id index used to
// find dispute targets. Only deposits and withdrawals are indexed.
type Entries struct {
	records []Transaction
	index   map[uint32]int
	indexed int
}

func NewEntries() *Entries {
	return &Entries{index: make(map[uint32]int)}
}

// Append keeps arrival order and extends the index over the new suffix.
// For a repeated tx id the last occurrence wins, same as a full Reindex.
func (e *Entries) Append(batch ...Transaction) {
	e.records = append(e.records, batch...)
	e.indexFrom(e.indexed)
}

// Reindex rebuilds the tx id index from scratch.
func (e *Entries) Reindex() {
	clear(e.index)
	e.indexFrom(0)
}

func (e *Entries) indexFrom(start int) {
	for pos := start; pos < len(e.records); pos++ {
		if e.records[pos].kind.carriesAmount() {
			e.index[e.records[pos].tx] = pos
		}
	}
	e.indexed = len(e.records)
}

func (e *Entries) Get(pos int) (Transaction, bool) {
	if pos < 0 || pos >= len(e.records) {
		return Transaction{}, false
	}
	return e.records[pos], true
}

// Target returns the indexed deposit or withdrawal for tx. The pointer
// addresses the stored record and is only valid until the next Append.
func (e *Entries) Target(tx uint32) (*Transaction, bool) {
	pos, ok := e.index[tx]
	if !ok {
		return nil, false
	}
	return &e.records[pos], true
}

func (e *Entries) Len() int {
	return len(e.records)
}
