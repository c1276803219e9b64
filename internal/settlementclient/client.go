// Package settlementclient talks to the settlement collaborator that moves funds
// between an owner's wallet and the ledger's custody.
package settlementclient

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/rpcpkg"
)

// Client is the HTTP settlement client.
type Client struct {
	rpc *rpcpkg.Client
}

// New returns a settlement client for baseURL.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{rpc: rpcpkg.New(baseURL, timeout)}
}

type pullRequest struct {
	Owner       string          `json:"owner"`
	Destination string          `json:"destination"`
	Amount      moneypkg.Amount `json:"amount"`
}

type releaseRequest struct {
	Owner  string          `json:"owner"`
	Amount moneypkg.Amount `json:"amount"`
}

// PullFunds moves amount from the owner's wallet to destination.
func (c *Client) PullFunds(ctx context.Context, owner, destination string, amount moneypkg.Amount) error {
	res, err := c.rpc.Post(ctx, "/v1/pull", pullRequest{Owner: owner, Destination: destination, Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: pull funds: %v", domain.ErrExternalFailure, err)
	}

	if status := res.Get("status").String(); status != "ok" {
		return fmt.Errorf("%w: pull funds: status %q", domain.ErrExternalFailure, status)
	}

	return nil
}

// ReleaseFunds moves amount from the ledger's custody back to the owner.
func (c *Client) ReleaseFunds(ctx context.Context, owner string, amount moneypkg.Amount) error {
	res, err := c.rpc.Post(ctx, "/v1/release", releaseRequest{Owner: owner, Amount: amount})
	if err != nil {
		return fmt.Errorf("%w: release funds: %v", domain.ErrExternalFailure, err)
	}

	if status := res.Get("status").String(); status != "ok" {
		return fmt.Errorf("%w: release funds: status %q", domain.ErrExternalFailure, status)
	}

	return nil
}

// WalletBalance returns the owner's balance outside the ledger.
func (c *Client) WalletBalance(ctx context.Context, owner string) (moneypkg.Amount, error) {
	res, err := c.rpc.Get(ctx, "/v1/wallets/"+url.PathEscape(owner)+"/balance")
	if err != nil {
		return 0, fmt.Errorf("%w: wallet balance: %v", domain.ErrExternalFailure, err)
	}

	balance, err := moneypkg.Parse(res.Get("balance").String())
	if err != nil {
		return 0, fmt.Errorf("%w: wallet balance: %v", domain.ErrExternalFailure, err)
	}

	return balance, nil
}

// Noop settles instantly and reports a fixed wallet balance. It is meant for development.
type Noop struct {
	Balance moneypkg.Amount
}

// PullFunds always succeeds.
func (Noop) PullFunds(context.Context, string, string, moneypkg.Amount) error { return nil }

// ReleaseFunds always succeeds.
func (Noop) ReleaseFunds(context.Context, string, moneypkg.Amount) error { return nil }

// WalletBalance returns the fixed balance.
func (n Noop) WalletBalance(context.Context, string) (moneypkg.Amount, error) { return n.Balance, nil }
