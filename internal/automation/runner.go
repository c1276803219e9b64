// Package automation periodically evaluates autonomous accounts and triggers automated saves.
package automation

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/decisionengine"
	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/metrics"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// Ledger provides the account operations the runner needs.
type Ledger interface {
	ListAutonomous(ctx context.Context, limit, offset int32) ([]domain.Account, error)
	AutoSave(ctx context.Context, identity string, amount moneypkg.Amount, caller string) (domain.Account, error)
	MinSaveInterval() time.Duration
	MaxSaveAmount() moneypkg.Amount
	TotalValueLocked(ctx context.Context) (moneypkg.Amount, error)
}

// Wallets reads external wallet balances.
type Wallets interface {
	WalletBalance(ctx context.Context, owner string) (moneypkg.Amount, error)
}

// Controls exposes the global pause switch and the executor identity.
type Controls interface {
	Paused() bool
	Executor() string
}

// Results reported to metrics.
const (
	ResultSaved   = "saved"
	ResultSkipped = "skipped"
	ResultFailed  = "failed"
)

// Summary counts the outcome of one sweep.
type Summary struct {
	Evaluated int `json:"evaluated"`
	Saved     int `json:"saved"`
	Skipped   int `json:"skipped"`
	Failed    int `json:"failed"`
}

// Config tunes the runner.
type Config struct {
	Profile  domain.StrategyProfile
	Engine   decisionengine.Config
	PageSize int32
}

// Runner sweeps autonomous accounts.
type Runner struct {
	ledger   Ledger
	wallets  Wallets
	controls Controls
	config   Config
	now      func() time.Time

	mu   sync.Mutex // serializes sweeps
	cron *cron.Cron
}

// New returns a runner.
func New(ledger Ledger, wallets Wallets, controls Controls, config Config) *Runner {
	if config.PageSize <= 0 {
		config.PageSize = 100
	}

	if config.Profile == "" {
		config.Profile = domain.StrategyBalanced
	}

	return &Runner{
		ledger:   ledger,
		wallets:  wallets,
		controls: controls,
		config:   config,
		now:      time.Now,
	}
}

// RunOnce evaluates every active autonomous account once.
func (r *Runner) RunOnce(ctx context.Context) (Summary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	l := zerolog.Ctx(ctx)

	var sum Summary

	if r.controls.Paused() {
		l.Info().Msg("automation sweep skipped: operations are paused")
		return sum, nil
	}

	executor := r.controls.Executor()

	for offset := int32(0); ; offset += r.config.PageSize {
		accounts, err := r.ledger.ListAutonomous(ctx, r.config.PageSize, offset)
		if err != nil {
			return sum, fmt.Errorf("list autonomous accounts: %w", err)
		}

		for _, acc := range accounts {
			if err := ctx.Err(); err != nil {
				return sum, err
			}

			sum.Evaluated++

			switch r.evaluate(ctx, acc, executor) {
			case ResultSaved:
				sum.Saved++
			case ResultSkipped:
				sum.Skipped++
			default:
				sum.Failed++
			}
		}

		if int32(len(accounts)) < r.config.PageSize {
			break
		}
	}

	if _, err := r.ledger.TotalValueLocked(ctx); err != nil {
		l.Warn().Err(err).Msg("cannot refresh total value locked")
	}

	l.Info().
		Int("evaluated", sum.Evaluated).
		Int("saved", sum.Saved).
		Int("skipped", sum.Skipped).
		Int("failed", sum.Failed).
		Msg("automation sweep finished")

	return sum, nil
}

func (r *Runner) evaluate(ctx context.Context, acc domain.Account, executor string) (result string) {
	l := zerolog.Ctx(ctx).With().Str("owner", acc.Owner).Logger()

	defer func() { metrics.ObserveAutomation(result) }()

	wallet, err := r.wallets.WalletBalance(ctx, acc.Owner)
	if err != nil {
		l.Error().Err(err).Msg("cannot read wallet balance")
		return ResultFailed
	}

	snap := decisionengine.Snapshot(acc, wallet, r.now(), r.ledger.MinSaveInterval())
	decision := decisionengine.Decide(snap, r.config.Profile, r.config.Engine)

	if !decision.ShouldSave {
		l.Debug().Str("reason", decision.Reason).Msg("save skipped")
		return ResultSkipped
	}

	amount := decision.Amount
	if ceiling := r.ledger.MaxSaveAmount(); ceiling > 0 && amount > ceiling {
		l.Debug().Str("proposed", amount.String()).Str("max", ceiling.String()).Msg("save capped at ledger maximum")
		amount = ceiling
	}

	if _, err := r.ledger.AutoSave(ctx, acc.Owner, amount, executor); err != nil {
		switch {
		// Losing a race against another sweep or a manual save is not a failure.
		case errors.Is(err, domain.ErrRateLimit):
			l.Debug().Err(err).Msg("save skipped")
			return ResultSkipped
		// The save was committed; only the move into the pool failed.
		case errors.Is(err, domain.ErrBookedInCustody):
			l.Warn().Err(err).Str("amount", amount.String()).Msg("automated save booked in ledger custody")
			return ResultSaved
		}

		l.Error().Err(err).Str("amount", amount.String()).Msg("automated save failed")

		return ResultFailed
	}

	l.Info().
		Str("amount", amount.String()).
		Str("urgency", string(decision.Urgency)).
		Float64("confidence", decision.Confidence).
		Msg("automated save executed")

	return ResultSaved
}

// Start schedules RunOnce on schedule, a cron expression with a seconds field.
func (r *Runner) Start(ctx context.Context, schedule string) error {
	c := cron.New(cron.WithSeconds())

	if _, err := c.AddFunc(schedule, func() {
		if _, err := r.RunOnce(ctx); err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("automation sweep failed")
		}
	}); err != nil {
		return fmt.Errorf("register automation sweep: %w", err)
	}

	r.cron = c
	c.Start()

	zerolog.Ctx(ctx).Info().Str("schedule", schedule).Msg("automation scheduler started")

	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (r *Runner) Stop() {
	if r.cron == nil {
		return
	}

	<-r.cron.Stop().Done()
}
