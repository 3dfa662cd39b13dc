package constants

// Input columns
const (
	ColumnType   = "type"
	ColumnClient = "client"
	ColumnTx     = "tx"
	ColumnAmount = "amount"
)

// Output columns
const (
	ColumnAvailable = "available"
	ColumnHeld      = "held"
	ColumnTotal     = "total"
	ColumnLocked    = "locked"
)

var AccountHeader = []string{ColumnClient, ColumnAvailable, ColumnHeld, ColumnTotal, ColumnLocked}

const (
	// MaxFractionDigits is the precision accepted for input amounts.
	MaxFractionDigits = 4
)
