package memstore

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/randompkg"
)

func TestAccounts(t *testing.T) {
	ctx := context.Background()
	store := NewAccounts()

	acc := domain.Account{
		Owner:      randompkg.Owner(),
		WeeklyGoal: moneypkg.Units(100),
		Active:     true,
		TrustMode:  domain.TrustModeAutonomous,
	}

	created, err := store.Create(ctx, acc)
	require.NoError(t, err)
	require.False(t, created.CreatedAt.IsZero())

	_, err = store.Create(ctx, acc)
	require.ErrorIs(t, err, domain.ErrAccountAlreadyExists)

	created.CurrentBalance = moneypkg.Units(5)
	created.TotalDeposited = moneypkg.Units(5)
	updated, err := store.Update(ctx, created, moneypkg.Units(5))
	require.NoError(t, err)
	require.Equal(t, created.Version+1, updated.Version)

	got, err := store.Get(ctx, acc.Owner)
	require.NoError(t, err)
	require.Equal(t, updated, got)

	// A write based on the state read before the last update is rejected.
	created.CurrentBalance = 0
	_, err = store.Update(ctx, created, moneypkg.Units(-5))
	require.ErrorIs(t, err, domain.ErrConcurrentUpdate)

	tvl, err := store.TotalValueLocked(ctx)
	require.NoError(t, err)
	require.Equal(t, moneypkg.Units(5), tvl)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	_, err = store.Update(ctx, domain.Account{Owner: "missing"}, 0)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestListAutonomous(t *testing.T) {
	ctx := context.Background()
	store := NewAccounts()

	for _, tc := range []struct {
		owner  string
		mode   domain.TrustMode
		active bool
	}{
		{"carol", domain.TrustModeAutonomous, true},
		{"alice", domain.TrustModeAutonomous, true},
		{"bob", domain.TrustModeManual, true},
		{"dave", domain.TrustModeAutonomous, false},
		{"erin", domain.TrustModeAutonomous, true},
	} {
		_, err := store.Create(ctx, domain.Account{Owner: tc.owner, TrustMode: tc.mode, Active: tc.active})
		require.NoError(t, err)
	}

	got, err := store.ListAutonomous(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, "alice", got[0].Owner)
	require.Equal(t, "carol", got[1].Owner)

	got, err = store.ListAutonomous(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "erin", got[0].Owner)

	got, err = store.ListAutonomous(ctx, 2, 10)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestPositionsShareSum(t *testing.T) {
	ctx := context.Background()
	store := NewPositions()

	owners := []string{"alice", "bob", "carol", "dave"}

	var wg sync.WaitGroup

	for i := 0; i < 200; i++ {
		owner := owners[i%len(owners)]

		wg.Add(1)

		go func(i int) {
			defer wg.Done()

			if _, err := store.Mint(ctx, owner, domain.Shares(10)); err != nil {
				t.Error(err)
			}

			if i%3 == 0 {
				// Burning may race with other mints for the same owner, but never below zero.
				_, _ = store.Burn(ctx, owner, domain.Shares(4))
			}
		}(i)
	}

	wg.Wait()

	total, err := store.TotalShares(ctx)
	require.NoError(t, err)
	require.Equal(t, store.Sum(), total)

	pos, err := store.Get(ctx, "alice")
	require.NoError(t, err)
	require.Positive(t, int64(pos.ShareUnits))

	_, err = store.Burn(ctx, "alice", pos.ShareUnits+1)
	require.ErrorIs(t, err, domain.ErrInsufficientShares)

	pos, err = store.Burn(ctx, "alice", pos.ShareUnits)
	require.NoError(t, err)
	require.Zero(t, pos.ShareUnits)

	_, err = store.Mint(ctx, "alice", 0)
	require.ErrorIs(t, err, domain.ErrZeroAmount)
}

func TestEvents(t *testing.T) {
	ctx := context.Background()
	store := NewEvents()

	for i := 0; i < 3; i++ {
		_, err := store.Append(ctx, domain.NewEvent("alice", domain.EventDeposited, moneypkg.Units(int64(i+1)), ""))
		require.NoError(t, err)
	}

	got, err := store.List(ctx, "alice", 2, 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, moneypkg.Units(2), got[0].Amount)

	got, err = store.List(ctx, "bob", 10, 0)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestUsers(t *testing.T) {
	ctx := context.Background()
	store := NewUsers()

	arg := domain.CreateUserParams{
		Username:       randompkg.Owner(),
		HashedPassword: "hash",
		FullName:       "Alice",
		Email:          randompkg.Email(),
	}

	_, err := store.Create(ctx, arg)
	require.NoError(t, err)

	_, err = store.Create(ctx, arg)
	require.ErrorIs(t, err, domain.ErrUsernameAlreadyExists)

	other := arg
	other.Username = arg.Username + "x"
	_, err = store.Create(ctx, other)
	require.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := store.Get(ctx, arg.Username)
	require.NoError(t, err)
	require.Equal(t, arg.Email, got.Email)

	_, err = store.Get(ctx, "missing")
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}
