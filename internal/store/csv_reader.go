package store

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/hance08/txengine/internal/validation"
)

type columns struct {
	kind, client, tx, amount int
}

// CSVReader streams transactions from a CSV source in fixed-size batches.
type CSVReader struct {
	closer    io.Closer
	reader    *csv.Reader
	cols      columns
	batchSize int
}

// OpenCSV opens the file at path and reads its header row.
func OpenCSV(path string, batchSize int) (*CSVReader, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: '%s'", ErrSourceNotFound, path)
		}
		return nil, fmt.Errorf("failed to open transactions file '%s': %w", path, err)
	}

	r, err := NewCSVReader(file, batchSize)
	if err != nil {
		file.Close()
		return nil, err
	}
	r.closer = file

	return r, nil
}

func NewCSVReader(src io.Reader, batchSize int) (*CSVReader, error) {
	if err := validation.ValidateBatchSize(batchSize); err != nil {
		return nil, err
	}

	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: missing header row", ErrMalformedRecord)
		}
		return nil, fmt.Errorf("%w: header: %w", ErrMalformedRecord, err)
	}

	cols, err := mapColumns(header)
	if err != nil {
		return nil, err
	}

	return &CSVReader{reader: reader, cols: cols, batchSize: batchSize}, nil
}

func mapColumns(header []string) (columns, error) {
	cols := columns{kind: -1, client: -1, tx: -1, amount: -1}

	for i, name := range header {
		switch strings.TrimSpace(name) {
		case constants.ColumnType:
			cols.kind = i
		case constants.ColumnClient:
			cols.client = i
		case constants.ColumnTx:
			cols.tx = i
		case constants.ColumnAmount:
			cols.amount = i
		}
	}

	var missing []string
	if cols.kind < 0 {
		missing = append(missing, constants.ColumnType)
	}
	if cols.client < 0 {
		missing = append(missing, constants.ColumnClient)
	}
	if cols.tx < 0 {
		missing = append(missing, constants.ColumnTx)
	}
	if len(missing) > 0 {
		return cols, fmt.Errorf("%w: header is missing column(s) %s", ErrMalformedRecord, strings.Join(missing, ", "))
	}

	return cols, nil
}

// Next returns up to batchSize transactions. A short batch is followed by
// io.EOF on the next call.
func (r *CSVReader) Next() ([]ledger.Transaction, error) {
	batch := make([]ledger.Transaction, 0, r.batchSize)

	for len(batch) < r.batchSize {
		row, err := r.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		line, _ := r.reader.FieldPos(0)

		trx, err := r.parseRow(row)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedRecord, line, err)
		}

		batch = append(batch, trx)
	}

	if len(batch) == 0 {
		return nil, io.EOF
	}

	return batch, nil
}

func (r *CSVReader) parseRow(row []string) (ledger.Transaction, error) {
	field := func(i int) string {
		if i < 0 || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	kind, err := validation.ParseType(field(r.cols.kind))
	if err != nil {
		return ledger.Transaction{}, err
	}

	client, err := validation.ParseClient(field(r.cols.client))
	if err != nil {
		return ledger.Transaction{}, err
	}

	tx, err := validation.ParseTx(field(r.cols.tx))
	if err != nil {
		return ledger.Transaction{}, err
	}

	switch kind {
	case ledger.Deposit, ledger.Withdrawal:
		amount, err := validation.ParseAmount(field(r.cols.amount))
		if err != nil {
			return ledger.Transaction{}, fmt.Errorf("%s tx %d: %w", kind, tx, err)
		}
		if kind == ledger.Deposit {
			return ledger.NewDeposit(client, tx, amount)
		}
		return ledger.NewWithdrawal(client, tx, amount)
	case ledger.Dispute:
		return ledger.NewDispute(client, tx), nil
	case ledger.Resolve:
		return ledger.NewResolve(client, tx), nil
	default:
		return ledger.NewChargeback(client, tx), nil
	}
}

func (r *CSVReader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

// ReadAll drains src into a single slice.
func ReadAll(src TransactionSource) ([]ledger.Transaction, error) {
	var all []ledger.Transaction
	for {
		batch, err := src.Next()
		if errors.Is(err, io.EOF) {
			return all, nil
		}
		if err != nil {
			return nil, err
		}
		all = append(all, batch...)
	}
}
