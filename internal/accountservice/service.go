// Package accountservice manages business logic layer of accounts: the savings ledger.
package accountservice

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/metrics"
	"github.com/go-petr/pet-savings/pkg/lockpkg"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// Repo provides data access layer interface needed by account service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountservice
type Repo interface {
	Create(ctx context.Context, acc domain.Account) (domain.Account, error)
	Get(ctx context.Context, owner string) (domain.Account, error)
	Update(ctx context.Context, acc domain.Account, tvlDelta moneypkg.Amount) (domain.Account, error)
	TotalValueLocked(ctx context.Context) (moneypkg.Amount, error)
	ListAutonomous(ctx context.Context, limit, offset int32) ([]domain.Account, error)
}

// Settlement moves funds between the owner's wallet and the ledger's custody.
type Settlement interface {
	PullFunds(ctx context.Context, owner, destination string, amount moneypkg.Amount) error
	ReleaseFunds(ctx context.Context, owner string, amount moneypkg.Amount) error
}

// PoolStrategy converts ledger funds into pool share units.
type PoolStrategy interface {
	Deposit(ctx context.Context, caller, owner string, amount moneypkg.Amount) (domain.Shares, error)
	Withdraw(ctx context.Context, caller, owner string, shares domain.Shares) (moneypkg.Amount, error)
	Position(ctx context.Context, owner string) (domain.PoolPosition, error)
}

// Recorder keeps the audit log.
type Recorder interface {
	Append(ctx context.Context, e domain.Event) (domain.Event, error)
	List(ctx context.Context, owner string, limit, offset int32) ([]domain.Event, error)
}

// Controls exposes the administrative switches the ledger obeys.
type Controls interface {
	Paused() bool
	Executor() string
	RequireAdmin(caller string) error
}

// Config holds the ledger limits.
type Config struct {
	LedgerIdentity     string
	MinDepositAmount   moneypkg.Amount
	MaxSaveAmount      moneypkg.Amount
	MinSaveInterval    time.Duration
	PoolRoutingEnabled bool
}

// Service facilitates account service layer logic.
type Service struct {
	repo       Repo
	settlement Settlement
	controls   Controls
	events     Recorder
	config     Config

	pool    PoolStrategy
	routing atomic.Bool

	locks *lockpkg.KeyedMutex
	now   func() time.Time
}

// New returns account service struct to manage the savings ledger.
func New(repo Repo, settlement Settlement, controls Controls, events Recorder, config Config) *Service {
	if config.MinSaveInterval <= 0 {
		config.MinSaveInterval = 24 * time.Hour
	}

	return &Service{
		repo:       repo,
		settlement: settlement,
		controls:   controls,
		events:     events,
		config:     config,
		locks:      lockpkg.New(),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// BindPool binds the pool strategy automated saves are routed into.
// Routing starts enabled when the configuration asks for it.
func (s *Service) BindPool(pool PoolStrategy) {
	s.pool = pool
	s.routing.Store(pool != nil && s.config.PoolRoutingEnabled)
}

// PoolRouting reports whether automated saves are currently routed into the pool.
func (s *Service) PoolRouting() bool {
	return s.routing.Load()
}

// SetPoolRouting enables or disables routing of automated saves into the pool.
func (s *Service) SetPoolRouting(ctx context.Context, caller string, enabled bool) (err error) {
	defer func() { metrics.ObserveOperation("set_pool_routing", err) }()

	if err := s.controls.RequireAdmin(caller); err != nil {
		return err
	}

	if enabled && s.pool == nil {
		return domain.ErrPoolNotConfigured
	}

	s.routing.Store(enabled)
	s.record(ctx, domain.NewEvent(caller, domain.EventPoolRoutingUpdated, 0, fmt.Sprintf("enabled=%t", enabled)))

	return nil
}

// Create creates and returns an active account for identity.
func (s *Service) Create(ctx context.Context, arg domain.CreateAccountParams) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation("create", err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	if arg.Owner == "" {
		return acc, domain.ErrInvalidIdentity
	}

	unlock := s.locks.Lock(arg.Owner)
	defer unlock()

	_, err = s.repo.Get(ctx, arg.Owner)
	switch {
	case err == nil:
		return acc, domain.ErrAccountAlreadyExists
	case !errors.Is(err, domain.ErrAccountNotFound):
		return acc, err
	}

	switch {
	case arg.WeeklyGoal <= 0:
		return acc, domain.ErrInvalidGoal
	case arg.SafetyBuffer < 0:
		return acc, domain.ErrInvalidSafetyBuffer
	case !arg.TrustMode.Valid():
		return acc, domain.ErrInvalidTrustMode
	}

	acc, err = s.repo.Create(ctx, domain.Account{
		Owner:        arg.Owner,
		WeeklyGoal:   arg.WeeklyGoal,
		SafetyBuffer: arg.SafetyBuffer,
		Active:       true,
		TrustMode:    arg.TrustMode,
	})
	if err != nil {
		return acc, err
	}

	s.record(ctx, domain.NewEvent(acc.Owner, domain.EventAccountCreated, 0, string(acc.TrustMode)))

	return acc, nil
}

// Get returns the account of identity.
func (s *Service) Get(ctx context.Context, identity string) (domain.Account, error) {
	return s.repo.Get(ctx, identity)
}

// CanAutoSave reports whether an automated save for identity would pass the activity and rate limit checks now.
func (s *Service) CanAutoSave(ctx context.Context, identity string) (bool, error) {
	acc, err := s.repo.Get(ctx, identity)
	if err != nil {
		return false, err
	}

	return acc.Active && acc.RateLimitSatisfied(s.now(), s.config.MinSaveInterval), nil
}

// MinSaveInterval returns the minimum interval between automated saves.
func (s *Service) MinSaveInterval() time.Duration {
	return s.config.MinSaveInterval
}

// MaxSaveAmount returns the largest amount a single automated save may move.
func (s *Service) MaxSaveAmount() moneypkg.Amount {
	return s.config.MaxSaveAmount
}

// TotalValueLocked returns the funds held directly by the ledger across active accounts.
func (s *Service) TotalValueLocked(ctx context.Context) (moneypkg.Amount, error) {
	tvl, err := s.repo.TotalValueLocked(ctx)
	if err != nil {
		return 0, err
	}

	metrics.SetTotalValueLocked(tvl.Decimal().InexactFloat64())

	return tvl, nil
}

// ListAutonomous returns a page of active AUTONOMOUS accounts.
func (s *Service) ListAutonomous(ctx context.Context, limit, offset int32) ([]domain.Account, error) {
	return s.repo.ListAutonomous(ctx, limit, offset)
}

// History returns the audit events of identity, oldest first.
func (s *Service) History(ctx context.Context, identity string, pageSize, pageID int32) ([]domain.Event, error) {
	limit := pageSize
	offset := (pageID - 1) * pageSize

	return s.events.List(ctx, identity, limit, offset)
}

// Deposit pulls amount from the owner's wallet and credits it to the account.
func (s *Service) Deposit(ctx context.Context, identity string, amount moneypkg.Amount) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation("deposit", err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	if amount <= 0 || amount < s.config.MinDepositAmount {
		return acc, domain.ErrInvalidAmount
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	acc, err = s.active(ctx, identity)
	if err != nil {
		return acc, err
	}

	if acc.TotalDeposited > math.MaxInt64-amount {
		return acc, domain.ErrInvalidAmount
	}

	if err := s.settlement.PullFunds(ctx, identity, s.config.LedgerIdentity, amount); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("owner", identity).Msg("pull funds failed")
		return acc, external(err)
	}

	acc.TotalDeposited += amount
	acc.CurrentBalance += amount

	updated, err := s.repo.Update(ctx, acc, amount)
	if err != nil {
		s.refund(ctx, identity, amount)
		return domain.Account{}, err
	}

	s.record(ctx, domain.NewEvent(identity, domain.EventDeposited, amount, ""))

	return updated, nil
}

// Withdraw debits amount from the directly held part of the balance and releases it to the owner.
func (s *Service) Withdraw(ctx context.Context, identity string, amount moneypkg.Amount) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation("withdraw", err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	if amount <= 0 {
		return acc, domain.ErrInvalidAmount
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	original, err := s.active(ctx, identity)
	if err != nil {
		return original, err
	}

	if amount > original.CurrentBalance || amount > original.HeldBalance() {
		return original, domain.ErrInsufficientBalance
	}

	acc = original
	acc.TotalWithdrawn += amount
	acc.CurrentBalance -= amount

	updated, err := s.repo.Update(ctx, acc, -amount)
	if err != nil {
		return original, err
	}

	if err := s.settlement.ReleaseFunds(ctx, identity, amount); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("owner", identity).Msg("release funds failed, rolling back withdrawal")

		s.rollback(ctx, original, updated, amount)

		return original, external(err)
	}

	s.record(ctx, domain.NewEvent(identity, domain.EventWithdrawn, amount, ""))

	return updated, nil
}

// UpdateGoal replaces the weekly goal.
func (s *Service) UpdateGoal(ctx context.Context, identity string, goal moneypkg.Amount) (domain.Account, error) {
	return s.updateField(ctx, "update_goal", identity, check(goal > 0, domain.ErrInvalidGoal), func(acc *domain.Account) domain.Event {
		acc.WeeklyGoal = goal
		return domain.NewEvent(identity, domain.EventGoalUpdated, goal, "")
	})
}

// UpdateTrustMode replaces the trust mode.
func (s *Service) UpdateTrustMode(ctx context.Context, identity string, mode domain.TrustMode) (domain.Account, error) {
	return s.updateField(ctx, "update_trust_mode", identity, check(mode.Valid(), domain.ErrInvalidTrustMode), func(acc *domain.Account) domain.Event {
		acc.TrustMode = mode
		return domain.NewEvent(identity, domain.EventTrustModeUpdated, 0, string(mode))
	})
}

// UpdateSafetyBuffer replaces the safety buffer.
func (s *Service) UpdateSafetyBuffer(ctx context.Context, identity string, buffer moneypkg.Amount) (domain.Account, error) {
	return s.updateField(ctx, "update_safety_buffer", identity, check(buffer >= 0, domain.ErrInvalidSafetyBuffer), func(acc *domain.Account) domain.Event {
		acc.SafetyBuffer = buffer
		return domain.NewEvent(identity, domain.EventSafetyBufferUpdated, buffer, "")
	})
}

func check(ok bool, err error) error {
	if ok {
		return nil
	}

	return err
}

// updateField validates and applies a single field change. invalid is reported only
// after the pause check.
func (s *Service) updateField(ctx context.Context, op, identity string, invalid error, apply func(*domain.Account) domain.Event) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation(op, err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	if invalid != nil {
		return acc, invalid
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	acc, err = s.active(ctx, identity)
	if err != nil {
		return acc, err
	}

	event := apply(&acc)

	acc, err = s.repo.Update(ctx, acc, 0)
	if err != nil {
		return acc, err
	}

	s.record(ctx, event)

	return acc, nil
}

// Deactivate marks the account inactive and releases the directly held balance to the owner.
// Pooled funds must be withdrawn first. If the release fails the account is restored.
func (s *Service) Deactivate(ctx context.Context, identity string) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation("deactivate", err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	original, err := s.active(ctx, identity)
	if err != nil {
		return original, err
	}

	if original.PooledPrincipal > 0 {
		return original, domain.ErrPooledFundsOutstanding
	}

	payout := original.HeldBalance()

	acc = original
	acc.Active = false
	acc.TotalWithdrawn += payout
	acc.CurrentBalance -= payout

	updated, err := s.repo.Update(ctx, acc, -payout)
	if err != nil {
		return original, err
	}

	if payout > 0 {
		if err := s.settlement.ReleaseFunds(ctx, identity, payout); err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str("owner", identity).Msg("release funds failed, reactivating account")

			s.rollback(ctx, original, updated, payout)

			return original, external(err)
		}

		s.record(ctx, domain.NewEvent(identity, domain.EventWithdrawn, payout, "deactivation"))
	}

	s.record(ctx, domain.NewEvent(identity, domain.EventAccountDeactivated, payout, ""))

	return updated, nil
}

// AutoSave performs an automated save of amount for identity on behalf of caller.
//
// Checks run in a fixed order: pause, activity, amount bounds, caller authorization
// for the trust mode, minimum interval. Funds are pulled only after all checks pass.
func (s *Service) AutoSave(ctx context.Context, identity string, amount moneypkg.Amount, caller string) (acc domain.Account, err error) {
	defer func() { metrics.ObserveOperation("auto_save", err) }()

	if s.controls.Paused() {
		return acc, domain.ErrSystemPaused
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	acc, err = s.active(ctx, identity)
	if err != nil {
		return acc, err
	}

	if amount <= 0 || amount > s.config.MaxSaveAmount || acc.TotalDeposited > math.MaxInt64-amount {
		return acc, domain.ErrAmountOutOfBounds
	}

	if !s.authorized(acc, caller) {
		return acc, domain.ErrUnauthorized
	}

	now := s.now()
	if !acc.RateLimitSatisfied(now, s.config.MinSaveInterval) {
		return acc, domain.ErrRateLimitNotMet
	}

	l := zerolog.Ctx(ctx)

	if err := s.settlement.PullFunds(ctx, identity, s.config.LedgerIdentity, amount); err != nil {
		l.Warn().Err(err).Str("owner", identity).Msg("pull funds failed")
		return acc, external(err)
	}

	acc.TotalDeposited += amount
	acc.CurrentBalance += amount
	acc.LastAutoSaveAt = now

	var (
		tvlDelta = amount
		shares   domain.Shares
		poolErr  error
	)

	if s.routing.Load() && s.pool != nil {
		shares, poolErr = s.pool.Deposit(ctx, s.config.LedgerIdentity, identity, amount)
		if poolErr != nil {
			l.Warn().Err(poolErr).Str("owner", identity).Msg("pool deposit failed, releasing pulled funds")

			if relErr := s.settlement.ReleaseFunds(ctx, identity, amount); relErr == nil {
				return domain.Account{}, external(poolErr)
			}

			// The funds stay in ledger custody, so they are booked as directly held.
			l.Error().Str("owner", identity).Stringer("amount", amount).Msg("cannot release funds after failed pool deposit")
		} else {
			acc.PooledPrincipal += amount
			tvlDelta = 0
		}
	}

	updated, err := s.repo.Update(ctx, acc, tvlDelta)
	if err != nil {
		if shares > 0 {
			s.unwindPool(ctx, identity, shares)
		} else {
			s.refund(ctx, identity, amount)
		}

		return domain.Account{}, err
	}

	detail := ""
	if shares > 0 {
		detail = "shares=" + shares.String()
	}

	s.record(ctx, domain.NewEvent(identity, domain.EventAutoSaved, amount, detail))

	if poolErr != nil {
		return updated, booked(poolErr)
	}

	return updated, nil
}

// WithdrawPooled redeems shares from the pool and releases the proceeds to the owner.
// The principal attributed to the redeemed shares is debited from the account.
func (s *Service) WithdrawPooled(ctx context.Context, identity string, shares domain.Shares) (acc domain.Account, proceeds moneypkg.Amount, err error) {
	defer func() { metrics.ObserveOperation("withdraw_pooled", err) }()

	if s.controls.Paused() {
		return acc, 0, domain.ErrSystemPaused
	}

	if shares <= 0 {
		return acc, 0, domain.ErrZeroAmount
	}

	if s.pool == nil {
		return acc, 0, domain.ErrPoolNotConfigured
	}

	unlock := s.locks.Lock(identity)
	defer unlock()

	acc, err = s.active(ctx, identity)
	if err != nil {
		return acc, 0, err
	}

	pos, err := s.pool.Position(ctx, identity)
	if err != nil {
		return acc, 0, err
	}

	if shares > pos.ShareUnits {
		return acc, 0, domain.ErrInsufficientShares
	}

	portion := moneypkg.Amount(moneypkg.MulDiv(int64(acc.PooledPrincipal), int64(shares), int64(pos.ShareUnits)))

	proceeds, err = s.pool.Withdraw(ctx, s.config.LedgerIdentity, identity, shares)
	if err != nil {
		return acc, 0, err
	}

	l := zerolog.Ctx(ctx)

	var releaseErr error
	if proceeds > 0 {
		releaseErr = s.settlement.ReleaseFunds(ctx, identity, proceeds)
	}

	acc.PooledPrincipal -= portion

	var tvlDelta moneypkg.Amount
	if releaseErr != nil {
		l.Error().Err(releaseErr).Str("owner", identity).Stringer("proceeds", proceeds).
			Msg("cannot release pool proceeds, keeping principal in ledger custody")

		tvlDelta = portion
	} else {
		acc.TotalWithdrawn += portion
		acc.CurrentBalance -= portion
	}

	updated, err := s.repo.Update(ctx, acc, tvlDelta)
	if err != nil {
		l.Error().Err(err).Str("owner", identity).Stringer("shares", shares).Msg("cannot book pooled withdrawal")
		return domain.Account{}, 0, err
	}

	s.record(ctx, domain.NewEvent(identity, domain.EventPoolWithdrawn, proceeds, "shares="+shares.String()))

	if releaseErr != nil {
		return updated, 0, booked(releaseErr)
	}

	return updated, proceeds, nil
}

func (s *Service) authorized(acc domain.Account, caller string) bool {
	switch acc.TrustMode {
	case domain.TrustModeAutonomous:
		executor := s.controls.Executor()
		return executor != "" && caller == executor
	case domain.TrustModeManual:
		return caller == acc.Owner
	default:
		return false
	}
}

func (s *Service) active(ctx context.Context, identity string) (domain.Account, error) {
	acc, err := s.repo.Get(ctx, identity)
	if err != nil {
		return acc, err
	}

	if !acc.Active {
		return acc, domain.ErrAccountNotActive
	}

	return acc, nil
}

// rollback restores original over the committed state updated, returning tvlDelta to the total value locked.
func (s *Service) rollback(ctx context.Context, original, updated domain.Account, tvlDelta moneypkg.Amount) {
	original.Version = updated.Version

	if _, err := s.repo.Update(ctx, original, tvlDelta); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("owner", original.Owner).Stringer("amount", tvlDelta).Msg("cannot roll back committed state")
	}
}

// refund releases funds pulled for an operation that could not be committed.
func (s *Service) refund(ctx context.Context, owner string, amount moneypkg.Amount) {
	if err := s.settlement.ReleaseFunds(ctx, owner, amount); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("owner", owner).Stringer("amount", amount).Msg("cannot refund pulled funds")
	}
}

// unwindPool redeems shares minted for an operation that could not be committed and refunds the proceeds.
func (s *Service) unwindPool(ctx context.Context, owner string, shares domain.Shares) {
	proceeds, err := s.pool.Withdraw(ctx, s.config.LedgerIdentity, owner, shares)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("owner", owner).Stringer("shares", shares).Msg("cannot unwind pool deposit")
		return
	}

	s.refund(ctx, owner, proceeds)
}

func (s *Service) record(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}

	if _, err := s.events.Append(ctx, e); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("kind", string(e.Kind)).Msg("cannot append audit event")
	}
}

// booked reports an external failure that happened after the state change was committed.
func booked(err error) error {
	return fmt.Errorf("%w: %v", domain.ErrBookedInCustody, err)
}

func external(err error) error {
	if errors.Is(err, domain.ErrExternal) {
		return err
	}

	return fmt.Errorf("%w: %v", domain.ErrExternalFailure, err)
}
