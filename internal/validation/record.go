package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/hance08/txengine/internal/constants"
	"github.com/hance08/txengine/internal/ledger"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidClient   = errors.New("invalid client id")
	ErrInvalidTx       = errors.New("invalid transaction id")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrTooManyDecimals = errors.New("amount has too many decimal places")
	ErrMissingAmount   = errors.New("amount is required")
	ErrUnknownType     = errors.New("unknown transaction type")
	ErrNegativeAmount  = ledger.ErrNegativeAmount
)

// ParseClient accepts an unsigned 16-bit client id.
func ParseClient(raw string) (uint16, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 16)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidClient, raw)
	}
	return uint16(v), nil
}

// ParseTx accepts an unsigned 32-bit transaction id.
func ParseTx(raw string) (uint32, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w '%s'", ErrInvalidTx, raw)
	}
	return uint32(v), nil
}

// ParseAmount accepts a non-negative decimal with at most
// constants.MaxFractionDigits digits after the point.
func ParseAmount(raw string) (decimal.Decimal, error) {
	input := strings.TrimSpace(raw)
	if input == "" {
		return decimal.Decimal{}, ErrMissingAmount
	}

	if strings.ContainsAny(input, "eE") {
		return decimal.Decimal{}, fmt.Errorf("%w '%s'", ErrInvalidAmount, raw)
	}

	amount, err := decimal.NewFromString(input)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w '%s'", ErrInvalidAmount, raw)
	}

	if -amount.Exponent() > constants.MaxFractionDigits {
		return decimal.Decimal{}, fmt.Errorf("%w '%s' (max %d)", ErrTooManyDecimals, raw, constants.MaxFractionDigits)
	}

	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("%w '%s'", ErrNegativeAmount, raw)
	}

	return amount, nil
}

// ParseType only matches the exact lowercase names.
func ParseType(raw string) (ledger.Kind, error) {
	kind, ok := ledger.ParseKind(strings.TrimSpace(raw))
	if !ok {
		return 0, fmt.Errorf("%w '%s'", ErrUnknownType, raw)
	}
	return kind, nil
}
