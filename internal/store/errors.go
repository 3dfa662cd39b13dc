package store

import "errors"

var (
	ErrSourceNotFound  = errors.New("transactions file not found")
	ErrMalformedRecord = errors.New("malformed transaction record")
	ErrWriteAccounts   = errors.New("failed to write accounts")
)
