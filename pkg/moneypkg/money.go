// Package moneypkg provides the fixed-point amount type used for every monetary value.
package moneypkg

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits an Amount carries.
const Scale = 6

// Unit is one whole unit of the primary asset.
const Unit Amount = 1_000_000

var (
	// ErrInvalidAmount indicates that the string is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrTooPrecise indicates more than Scale fractional digits.
	ErrTooPrecise = errors.New("amount has more than 6 fractional digits")
	// ErrOverflow indicates that the amount does not fit into 64 bits of micro-units.
	ErrOverflow = errors.New("amount overflows")
)

// Amount is a fixed-point monetary value stored as a count of micro-units.
type Amount int64

// Zero is the zero amount.
const Zero Amount = 0

var unitDecimal = decimal.New(1, Scale)

// Parse converts a decimal string such as "60.25" into an Amount.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	return FromDecimal(d)
}

// MustParse is like Parse but panics on error. It is meant for constants and tests.
func MustParse(s string) Amount {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("moneypkg.MustParse(%q): %v", s, err))
	}

	return a
}

// FromDecimal converts d into an Amount, rejecting values that need rounding.
func FromDecimal(d decimal.Decimal) (Amount, error) {
	micros := d.Mul(unitDecimal)
	if !micros.Equal(micros.Truncate(0)) {
		return 0, ErrTooPrecise
	}

	bi := micros.BigInt()
	if !bi.IsInt64() {
		return 0, ErrOverflow
	}

	return Amount(bi.Int64()), nil
}

// Units returns n whole units.
func Units(n int64) Amount {
	return Amount(n) * Unit
}

// Decimal returns the amount as a decimal number.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -Scale)
}

// String formats the amount without trailing zeros, e.g. "60" or "12.5".
func (a Amount) String() string {
	return a.Decimal().String()
}

// StringFixed formats the amount with exactly n fractional digits.
func (a Amount) StringFixed(n int32) string {
	return a.Decimal().StringFixed(n)
}

// IsPositive reports whether a > 0.
func (a Amount) IsPositive() bool {
	return a > 0
}

// Min returns the smallest of the given amounts.
func Min(first Amount, rest ...Amount) Amount {
	m := first
	for _, a := range rest {
		if a < m {
			m = a
		}
	}

	return m
}

// Max returns the largest of the given amounts.
func Max(first Amount, rest ...Amount) Amount {
	m := first
	for _, a := range rest {
		if a > m {
			m = a
		}
	}

	return m
}

// MulDiv returns floor(a * b / c) computed without intermediate overflow.
// It panics if c is zero.
func MulDiv(a, b, c int64) int64 {
	if c == 0 {
		panic("moneypkg.MulDiv: division by zero")
	}

	q, _ := decimal.NewFromInt(a).Mul(decimal.NewFromInt(b)).QuoRem(decimal.NewFromInt(c), 0)

	return q.IntPart()
}

// MulBps returns a * bps / 10000, truncated.
func (a Amount) MulBps(bps int64) Amount {
	return Amount(MulDiv(int64(a), bps, 10_000))
}

// MarshalJSON encodes the amount as a JSON string to keep full precision.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts both JSON strings and numbers.
func (a *Amount) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return ErrInvalidAmount
		}

		s = n.String()
	}

	parsed, err := Parse(s)
	if err != nil {
		return err
	}

	*a = parsed

	return nil
}

// Value implements driver.Valuer; amounts are stored as BIGINT micro-units.
func (a Amount) Value() (driver.Value, error) {
	return int64(a), nil
}

// Scan implements sql.Scanner.
func (a *Amount) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*a = Amount(v)
	case []byte:
		d, err := decimal.NewFromString(string(v))
		if err != nil {
			return fmt.Errorf("scan amount: %w", err)
		}

		*a = Amount(d.IntPart())
	case nil:
		*a = 0
	default:
		return fmt.Errorf("scan amount: unsupported type %T", src)
	}

	return nil
}
