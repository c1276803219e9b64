package memstore

import (
	"context"
	"sort"
	"sync/atomic"
	"time"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// Accounts is an in-memory account repository.
type Accounts struct {
	shards *shards[domain.Account]
	tvl    atomic.Int64
}

// NewAccounts returns an empty account store.
func NewAccounts() *Accounts {
	return &Accounts{shards: newShards[domain.Account]()}
}

// Create stores a new account and then returns it.
func (a *Accounts) Create(_ context.Context, acc domain.Account) (domain.Account, error) {
	sh := a.shards.get(acc.Owner)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.items[acc.Owner]; ok {
		return domain.Account{}, domain.ErrAccountAlreadyExists
	}

	if acc.CreatedAt.IsZero() {
		acc.CreatedAt = time.Now().UTC()
	}

	sh.items[acc.Owner] = acc

	return acc, nil
}

// Get returns the account of owner.
func (a *Accounts) Get(_ context.Context, owner string) (domain.Account, error) {
	sh := a.shards.get(owner)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	acc, ok := sh.items[owner]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	return acc, nil
}

// Update replaces the stored account and adds tvlDelta to the total value locked.
// acc must carry the version it was read at.
func (a *Accounts) Update(_ context.Context, acc domain.Account, tvlDelta moneypkg.Amount) (domain.Account, error) {
	sh := a.shards.get(acc.Owner)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	stored, ok := sh.items[acc.Owner]
	if !ok {
		return domain.Account{}, domain.ErrAccountNotFound
	}

	if stored.Version != acc.Version {
		return domain.Account{}, domain.ErrConcurrentUpdate
	}

	acc.Version++
	sh.items[acc.Owner] = acc
	a.tvl.Add(int64(tvlDelta))

	return acc, nil
}

// TotalValueLocked returns the funds held directly across active accounts.
func (a *Accounts) TotalValueLocked(_ context.Context) (moneypkg.Amount, error) {
	return moneypkg.Amount(a.tvl.Load()), nil
}

// ListAutonomous returns active AUTONOMOUS accounts ordered by owner.
func (a *Accounts) ListAutonomous(_ context.Context, limit, offset int32) ([]domain.Account, error) {
	var all []domain.Account

	for _, sh := range a.shards {
		sh.mu.RLock()
		for _, acc := range sh.items {
			if acc.Active && acc.TrustMode == domain.TrustModeAutonomous {
				all = append(all, acc)
			}
		}
		sh.mu.RUnlock()
	}

	sort.Slice(all, func(i, j int) bool { return all[i].Owner < all[j].Owner })

	return page(all, limit, offset), nil
}

func page[T any](items []T, limit, offset int32) []T {
	result := []T{}

	if offset < 0 || int(offset) >= len(items) {
		return result
	}

	end := len(items)
	if limit >= 0 && int(offset)+int(limit) < end {
		end = int(offset) + int(limit)
	}

	return append(result, items[offset:end]...)
}
