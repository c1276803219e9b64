// Package poolservice manages business logic layer of the pool-share strategy.
//
// The strategy converts ledger funds into a position in an external two-asset pool
// and tracks every owner's proportional claim in share units. Pricing is delegated
// to the external pool; the two assets are valued 1:1.
package poolservice

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/metrics"
	"github.com/go-petr/pet-savings/pkg/lockpkg"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

const bpsDenominator = 10_000

// Repo provides data access layer interface needed by pool service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package poolservice
type Repo interface {
	Get(ctx context.Context, owner string) (domain.PoolPosition, error)
	Mint(ctx context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error)
	Burn(ctx context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error)
	TotalShares(ctx context.Context) (domain.Shares, error)
}

// Pool is the external two-asset liquidity pool.
type Pool interface {
	AddLiquidity(ctx context.Context, amountA, amountB, minA, minB moneypkg.Amount) (usedA, usedB moneypkg.Amount, shares domain.Shares, err error)
	RemoveLiquidity(ctx context.Context, shares domain.Shares, minA, minB moneypkg.Amount) (amountA, amountB moneypkg.Amount, err error)
	Swap(ctx context.Context, amountIn, minOut moneypkg.Amount, in, out domain.Asset) (moneypkg.Amount, error)
	Reserves(ctx context.Context) (reserveA, reserveB moneypkg.Amount, err error)
	TotalSupply(ctx context.Context) (domain.Shares, error)
}

// Controls exposes the administrative switches the strategy obeys.
type Controls interface {
	Paused() bool
	RequireAdmin(caller string) error
}

// Recorder appends audit events.
type Recorder interface {
	Append(ctx context.Context, e domain.Event) (domain.Event, error)
}

// Service facilitates pool service layer logic.
type Service struct {
	repo     Repo
	pool     Pool
	controls Controls
	events   Recorder

	ledgerIdentity string
	slippageBps    atomic.Int64

	locks *lockpkg.KeyedMutex
}

// New returns pool service struct to manage pooled positions.
// Only ledgerIdentity may deposit or withdraw.
func New(repo Repo, pool Pool, controls Controls, events Recorder, ledgerIdentity string, slippageBps int64) (*Service, error) {
	if slippageBps < 0 || slippageBps > domain.MaxSlippageBps {
		return nil, domain.ErrSlippageTooHigh
	}

	s := &Service{
		repo:           repo,
		pool:           pool,
		controls:       controls,
		events:         events,
		ledgerIdentity: ledgerIdentity,
		locks:          lockpkg.New(),
	}
	s.slippageBps.Store(slippageBps)

	return s, nil
}

// SlippageTolerance returns the current slippage tolerance in basis points.
func (s *Service) SlippageTolerance() int64 {
	return s.slippageBps.Load()
}

// SetSlippageTolerance replaces the slippage tolerance. Values above 500 bps are rejected.
func (s *Service) SetSlippageTolerance(ctx context.Context, caller string, bps int64) (err error) {
	defer func() { metrics.ObserveOperation("set_slippage", err) }()

	if err := s.controls.RequireAdmin(caller); err != nil {
		return err
	}

	if bps < 0 || bps > domain.MaxSlippageBps {
		return domain.ErrSlippageTooHigh
	}

	s.slippageBps.Store(bps)
	s.record(ctx, domain.NewEvent(caller, domain.EventSlippageUpdated, 0, fmt.Sprintf("bps=%d", bps)))

	return nil
}

func (s *Service) minOut(amount moneypkg.Amount) moneypkg.Amount {
	return amount.MulBps(bpsDenominator - s.slippageBps.Load())
}

func (s *Service) checkMutation(caller string) error {
	if s.controls.Paused() {
		return domain.ErrSystemPaused
	}

	if caller != s.ledgerIdentity {
		return domain.ErrUnauthorized
	}

	return nil
}

// Deposit converts amount of the primary asset into pool liquidity on behalf of owner
// and returns the minted share units.
//
// Half of the amount is swapped into the secondary asset, then both sides are added as
// liquidity. Shares are credited only after the pool reports success.
func (s *Service) Deposit(ctx context.Context, caller, owner string, amount moneypkg.Amount) (minted domain.Shares, err error) {
	defer func() { metrics.ObserveOperation("pool_deposit", err) }()

	if err := s.checkMutation(caller); err != nil {
		return 0, err
	}

	if amount <= 0 {
		return 0, domain.ErrZeroAmount
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	l := zerolog.Ctx(ctx)

	half := amount / 2
	rest := amount - half

	var secondary moneypkg.Amount
	if half > 0 {
		secondary, err = s.pool.Swap(ctx, half, s.minOut(half), domain.AssetPrimary, domain.AssetSecondary)
		if err != nil {
			l.Warn().Err(err).Str("owner", owner).Stringer("amount", half).Msg("swap into secondary asset failed")
			return 0, external(err)
		}
	}

	usedA, usedB, minted, err := s.pool.AddLiquidity(ctx, rest, secondary, s.minOut(rest), s.minOut(secondary))
	if err != nil {
		l.Warn().Err(err).Str("owner", owner).Msg("add liquidity failed")
		return 0, external(err)
	}

	if minted <= 0 {
		return 0, external(errors.New("pool minted no share units"))
	}

	if usedA < rest || usedB < secondary {
		l.Debug().
			Stringer("unused_primary", rest-usedA).
			Stringer("unused_secondary", secondary-usedB).
			Msg("liquidity added below offered amounts")
	}

	if _, err := s.repo.Mint(ctx, owner, minted); err != nil {
		l.Error().Err(err).Str("owner", owner).Stringer("shares", minted).Msg("cannot credit minted shares")
		return 0, err
	}

	s.publishTotal(ctx)
	s.record(ctx, domain.NewEvent(owner, domain.EventPoolDeposited, amount, "shares="+minted.String()))

	return minted, nil
}

// Withdraw redeems shares of owner and returns the proceeds in the primary asset.
//
// Liquidity is removed without minimum amounts, and the secondary asset received is
// swapped back under the slippage bound. Shares are burned only after both pool calls succeed.
func (s *Service) Withdraw(ctx context.Context, caller, owner string, shares domain.Shares) (proceeds moneypkg.Amount, err error) {
	defer func() { metrics.ObserveOperation("pool_withdraw", err) }()

	if err := s.checkMutation(caller); err != nil {
		return 0, err
	}

	if shares <= 0 {
		return 0, domain.ErrZeroAmount
	}

	unlock := s.locks.Lock(owner)
	defer unlock()

	pos, err := s.repo.Get(ctx, owner)
	if err != nil {
		return 0, err
	}

	if shares > pos.ShareUnits {
		return 0, domain.ErrInsufficientShares
	}

	l := zerolog.Ctx(ctx)

	amountA, amountB, err := s.pool.RemoveLiquidity(ctx, shares, 0, 0)
	if err != nil {
		l.Warn().Err(err).Str("owner", owner).Stringer("shares", shares).Msg("remove liquidity failed")
		return 0, external(err)
	}

	var swapped moneypkg.Amount
	if amountB > 0 {
		swapped, err = s.pool.Swap(ctx, amountB, s.minOut(amountB), domain.AssetSecondary, domain.AssetPrimary)
		if err != nil {
			l.Warn().Err(err).Str("owner", owner).Stringer("amount", amountB).Msg("swap into primary asset failed")
			s.restoreLiquidity(ctx, owner, shares, amountA, amountB)

			return 0, external(err)
		}
	}

	if _, err := s.repo.Burn(ctx, owner, shares); err != nil {
		l.Error().Err(err).Str("owner", owner).Stringer("shares", shares).Msg("cannot burn redeemed shares")
		return 0, err
	}

	proceeds = amountA + swapped

	s.publishTotal(ctx)
	s.record(ctx, domain.NewEvent(owner, domain.EventPoolWithdrawn, proceeds, "shares="+shares.String()))

	return proceeds, nil
}

// restoreLiquidity puts removed liquidity back after a failed swap so the owner's
// claim stays backed. If the pool mints a different number of units the position is adjusted.
func (s *Service) restoreLiquidity(ctx context.Context, owner string, shares domain.Shares, amountA, amountB moneypkg.Amount) {
	l := zerolog.Ctx(ctx)

	_, _, minted, err := s.pool.AddLiquidity(ctx, amountA, amountB, 0, 0)
	if err != nil {
		l.Error().Err(err).
			Str("owner", owner).
			Stringer("primary", amountA).
			Stringer("secondary", amountB).
			Msg("cannot restore removed liquidity")

		return
	}

	switch {
	case minted < shares:
		_, err = s.repo.Burn(ctx, owner, shares-minted)
	case minted > shares:
		_, err = s.repo.Mint(ctx, owner, minted-shares)
	}

	if err != nil {
		l.Error().Err(err).Str("owner", owner).Msg("cannot adjust position after restoring liquidity")
	}
}

// Position returns the share units held by owner.
func (s *Service) Position(ctx context.Context, owner string) (domain.PoolPosition, error) {
	return s.repo.Get(ctx, owner)
}

// TotalShares returns the share units minted across all owners.
func (s *Service) TotalShares(ctx context.Context) (domain.Shares, error) {
	return s.repo.TotalShares(ctx)
}

// UserValue returns the current value of owner's claim on the pool reserves,
// with both assets valued 1:1 in the primary asset.
func (s *Service) UserValue(ctx context.Context, owner string) (moneypkg.Amount, error) {
	pos, err := s.repo.Get(ctx, owner)
	if err != nil {
		return 0, err
	}

	if pos.ShareUnits == 0 {
		return 0, nil
	}

	reserveA, reserveB, err := s.pool.Reserves(ctx)
	if err != nil {
		return 0, external(err)
	}

	supply, err := s.pool.TotalSupply(ctx)
	if err != nil {
		return 0, external(err)
	}

	if supply <= 0 {
		return 0, nil
	}

	shareA := moneypkg.MulDiv(int64(reserveA), int64(pos.ShareUnits), int64(supply))
	shareB := moneypkg.MulDiv(int64(reserveB), int64(pos.ShareUnits), int64(supply))

	return moneypkg.Amount(shareA + shareB), nil
}

// CalculateYield returns how much owner's claim is worth above initialDeposit, never below zero.
func (s *Service) CalculateYield(ctx context.Context, owner string, initialDeposit moneypkg.Amount) (moneypkg.Amount, error) {
	value, err := s.UserValue(ctx, owner)
	if err != nil {
		return 0, err
	}

	return moneypkg.Max(0, value-initialDeposit), nil
}

func (s *Service) publishTotal(ctx context.Context) {
	total, err := s.repo.TotalShares(ctx)
	if err != nil {
		return
	}

	metrics.SetTotalShareUnits(int64(total))
}

func (s *Service) record(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}

	if _, err := s.events.Append(ctx, e); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("kind", string(e.Kind)).Msg("cannot append audit event")
	}
}

func external(err error) error {
	if errors.Is(err, domain.ErrExternal) {
		return err
	}

	return fmt.Errorf("%w: %v", domain.ErrExternalFailure, err)
}
