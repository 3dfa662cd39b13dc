package constants

const (
	AppName   = "txengine"
	EnvPrefix = "TXENGINE"
)

const (
	DefaultBatchSize = 1024
	DefaultLogLevel  = "warn"
)

// Output formats
const (
	FormatCSV   = "csv"
	FormatTable = "table"
)
