package memstore

import (
	"context"
	"sync/atomic"

	"github.com/go-petr/pet-savings/internal/domain"
)

// Positions is an in-memory pool position repository.
type Positions struct {
	shards *shards[domain.Shares]
	total  atomic.Int64
}

// NewPositions returns an empty position store.
func NewPositions() *Positions {
	return &Positions{shards: newShards[domain.Shares]()}
}

// Get returns the position of owner. Owners without shares get an empty position.
func (p *Positions) Get(_ context.Context, owner string) (domain.PoolPosition, error) {
	sh := p.shards.get(owner)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	return domain.PoolPosition{Owner: owner, ShareUnits: sh.items[owner]}, nil
}

// Mint credits shares to owner and to the total.
func (p *Positions) Mint(_ context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error) {
	if shares <= 0 {
		return domain.PoolPosition{}, domain.ErrZeroAmount
	}

	sh := p.shards.get(owner)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.items[owner] += shares
	p.total.Add(int64(shares))

	return domain.PoolPosition{Owner: owner, ShareUnits: sh.items[owner]}, nil
}

// Burn debits shares from owner and from the total.
func (p *Positions) Burn(_ context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error) {
	if shares <= 0 {
		return domain.PoolPosition{}, domain.ErrZeroAmount
	}

	sh := p.shards.get(owner)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	held := sh.items[owner]
	if held < shares {
		return domain.PoolPosition{}, domain.ErrInsufficientShares
	}

	held -= shares
	if held == 0 {
		delete(sh.items, owner)
	} else {
		sh.items[owner] = held
	}

	p.total.Add(-int64(shares))

	return domain.PoolPosition{Owner: owner, ShareUnits: held}, nil
}

// TotalShares returns the share units minted across all owners.
func (p *Positions) TotalShares(_ context.Context) (domain.Shares, error) {
	return domain.Shares(p.total.Load()), nil
}

// Sum adds up the per-owner balances. It is meant for consistency checks.
func (p *Positions) Sum() domain.Shares {
	var sum domain.Shares

	for _, sh := range p.shards {
		sh.mu.RLock()
		for _, s := range sh.items {
			sum += s
		}
		sh.mu.RUnlock()
	}

	return sum
}
