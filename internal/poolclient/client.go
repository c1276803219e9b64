// Package poolclient talks to the external two-asset liquidity pool.
package poolclient

import (
	"context"
	"fmt"
	"time"

	"github.com/tidwall/gjson"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/rpcpkg"
)

// Client is the HTTP pool client.
type Client struct {
	rpc *rpcpkg.Client
}

// New returns a pool client for baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{rpc: rpcpkg.New(baseURL, timeout)}
}

type addLiquidityRequest struct {
	AmountA moneypkg.Amount `json:"amount_a"`
	AmountB moneypkg.Amount `json:"amount_b"`
	MinA    moneypkg.Amount `json:"min_a"`
	MinB    moneypkg.Amount `json:"min_b"`
}

type removeLiquidityRequest struct {
	Shares domain.Shares   `json:"shares"`
	MinA   moneypkg.Amount `json:"min_a"`
	MinB   moneypkg.Amount `json:"min_b"`
}

type swapRequest struct {
	AmountIn moneypkg.Amount `json:"amount_in"`
	MinOut   moneypkg.Amount `json:"min_out"`
	AssetIn  domain.Asset    `json:"asset_in"`
	AssetOut domain.Asset    `json:"asset_out"`
}

func failure(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", domain.ErrExternalFailure, op, err)
}

func amounts(res gjson.Result, paths ...string) ([]moneypkg.Amount, error) {
	out := make([]moneypkg.Amount, 0, len(paths))

	for _, p := range paths {
		v := res.Get(p)
		if !v.Exists() {
			return nil, fmt.Errorf("response has no %q", p)
		}

		a, err := moneypkg.Parse(v.String())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", p, err)
		}

		out = append(out, a)
	}

	return out, nil
}

func shares(res gjson.Result, path string) (domain.Shares, error) {
	v := res.Get(path)
	if !v.Exists() {
		return 0, fmt.Errorf("response has no %q", path)
	}

	return domain.Shares(v.Int()), nil
}

// AddLiquidity contributes both assets and returns the used amounts and minted share units.
func (c *Client) AddLiquidity(ctx context.Context, amountA, amountB, minA, minB moneypkg.Amount) (moneypkg.Amount, moneypkg.Amount, domain.Shares, error) {
	res, err := c.rpc.Post(ctx, "/v1/liquidity/add", addLiquidityRequest{AmountA: amountA, AmountB: amountB, MinA: minA, MinB: minB})
	if err != nil {
		return 0, 0, 0, failure("add liquidity", err)
	}

	used, err := amounts(res, "used_a", "used_b")
	if err != nil {
		return 0, 0, 0, failure("add liquidity", err)
	}

	minted, err := shares(res, "shares")
	if err != nil {
		return 0, 0, 0, failure("add liquidity", err)
	}

	return used[0], used[1], minted, nil
}

// RemoveLiquidity burns pool share units and returns the assets received.
func (c *Client) RemoveLiquidity(ctx context.Context, units domain.Shares, minA, minB moneypkg.Amount) (moneypkg.Amount, moneypkg.Amount, error) {
	res, err := c.rpc.Post(ctx, "/v1/liquidity/remove", removeLiquidityRequest{Shares: units, MinA: minA, MinB: minB})
	if err != nil {
		return 0, 0, failure("remove liquidity", err)
	}

	got, err := amounts(res, "amount_a", "amount_b")
	if err != nil {
		return 0, 0, failure("remove liquidity", err)
	}

	return got[0], got[1], nil
}

// Swap exchanges amountIn of asset in for at least minOut of asset out.
func (c *Client) Swap(ctx context.Context, amountIn, minOut moneypkg.Amount, in, out domain.Asset) (moneypkg.Amount, error) {
	res, err := c.rpc.Post(ctx, "/v1/swap", swapRequest{AmountIn: amountIn, MinOut: minOut, AssetIn: in, AssetOut: out})
	if err != nil {
		return 0, failure("swap", err)
	}

	got, err := amounts(res, "amount_out")
	if err != nil {
		return 0, failure("swap", err)
	}

	if got[0] < minOut {
		return 0, failure("swap", fmt.Errorf("output %s below minimum %s", got[0], minOut))
	}

	return got[0], nil
}

// Reserves returns the pool reserves of both assets.
func (c *Client) Reserves(ctx context.Context) (moneypkg.Amount, moneypkg.Amount, error) {
	res, err := c.rpc.Get(ctx, "/v1/reserves")
	if err != nil {
		return 0, 0, failure("reserves", err)
	}

	got, err := amounts(res, "reserve_a", "reserve_b")
	if err != nil {
		return 0, 0, failure("reserves", err)
	}

	return got[0], got[1], nil
}

// TotalSupply returns the pool share units in circulation.
func (c *Client) TotalSupply(ctx context.Context) (domain.Shares, error) {
	res, err := c.rpc.Get(ctx, "/v1/total-supply")
	if err != nil {
		return 0, failure("total supply", err)
	}

	supply, err := shares(res, "total_supply")
	if err != nil {
		return 0, failure("total supply", err)
	}

	return supply, nil
}
