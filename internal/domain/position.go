package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// Shares is an amount of pool share units.
type Shares int64

func (s Shares) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Value implements driver.Valuer.
func (s Shares) Value() (driver.Value, error) {
	return int64(s), nil
}

// Scan implements sql.Scanner.
func (s *Shares) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*s = Shares(v)
	case nil:
		*s = 0
	default:
		return fmt.Errorf("scan shares: unsupported type %T", src)
	}

	return nil
}

// Asset identifies one side of the two-asset pool.
type Asset string

const (
	// AssetPrimary is the asset the ledger custodies.
	AssetPrimary Asset = "primary"
	// AssetSecondary is the paired pool asset.
	AssetSecondary Asset = "secondary"
)

// PoolPosition holds the share units an owner has in the pooled position.
type PoolPosition struct {
	Owner      string `json:"owner"`
	ShareUnits Shares `json:"share_units"`
}

// MaxSlippageBps is the hard ceiling for the slippage tolerance (5%).
const MaxSlippageBps = 500
