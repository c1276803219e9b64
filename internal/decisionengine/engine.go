// Package decisionengine decides whether and how much to save automatically.
//
// Decide is a pure function of its inputs. All money math runs on integer micro-units;
// only the confidence is a float, and it is derived from integer tenths.
package decisionengine

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

const (
	conservativeBps = 2_500
	aggressiveBps   = 8_000
	bpsDenominator  = 10_000

	mediumUrgencyHours = 72
	highUrgencyHours   = 168
)

// Config holds the thresholds of the engine.
type Config struct {
	MinSaveAmount        moneypkg.Amount
	MaxSavePercentageBps int64
}

// DefaultConfig returns a minimum save of 1.00 and a 50% cap for the balanced profile.
func DefaultConfig() Config {
	return Config{
		MinSaveAmount:        moneypkg.Unit,
		MaxSavePercentageBps: 5_000,
	}
}

// ParseProfile returns the strategy profile named s. An empty name selects the balanced profile.
func ParseProfile(s string) (domain.StrategyProfile, error) {
	switch p := domain.StrategyProfile(strings.ToLower(strings.TrimSpace(s))); p {
	case domain.StrategyConservative, domain.StrategyBalanced, domain.StrategyAggressive:
		return p, nil
	case "":
		return domain.StrategyBalanced, nil
	default:
		return "", fmt.Errorf("unknown strategy profile %q", s)
	}
}

// Snapshot assembles the decision input for acc at now.
func Snapshot(acc domain.Account, wallet moneypkg.Amount, now time.Time, interval time.Duration) domain.DecisionSnapshot {
	// A zero LastAutoSaveAt yields the maximum duration, so "never" counts as long overdue.
	hours := int64(now.Sub(acc.LastAutoSaveAt) / time.Hour)

	return domain.DecisionSnapshot{
		WalletBalance:      wallet,
		Account:            acc,
		HoursSinceLastSave: hours,
		RateLimitSatisfied: acc.RateLimitSatisfied(now, interval),
	}
}

func skip(reason string) domain.SaveDecision {
	return domain.SaveDecision{
		ShouldSave: false,
		Reason:     reason,
		Confidence: 1.0,
		Urgency:    domain.UrgencyLow,
	}
}

// Decide evaluates snap under profile.
func Decide(snap domain.DecisionSnapshot, profile domain.StrategyProfile, cfg Config) domain.SaveDecision {
	acc := snap.Account

	switch {
	case !acc.Active:
		return skip("account is not active")
	case acc.TrustMode != domain.TrustModeAutonomous:
		return skip("account is not in autonomous mode")
	case !snap.RateLimitSatisfied:
		return skip("minimum interval since the last automated save has not passed")
	}

	wallet := snap.WalletBalance
	available := moneypkg.Max(0, wallet-acc.SafetyBuffer)

	if available < cfg.MinSaveAmount {
		return skip(fmt.Sprintf("funds available after safety buffer (%s) are below the minimum save amount (%s)",
			available, cfg.MinSaveAmount))
	}

	optimal := optimalAmount(wallet, available, acc, profile, cfg)
	shouldSave := optimal >= cfg.MinSaveAmount

	d := domain.SaveDecision{
		ShouldSave: shouldSave,
		Urgency:    urgency(snap.HoursSinceLastSave, optimal, acc.WeeklyGoal),
		Confidence: confidence(wallet, available, optimal, acc),
		Reason:     reason(wallet, available, optimal, acc.WeeklyGoal, profile),
	}

	if shouldSave {
		d.Amount = optimal
	}

	return d
}

func optimalAmount(wallet, available moneypkg.Amount, acc domain.Account, profile domain.StrategyProfile, cfg Config) moneypkg.Amount {
	switch profile {
	case domain.StrategyConservative:
		if wallet < 2*acc.SafetyBuffer {
			return 0
		}

		return moneypkg.Min(available.MulBps(conservativeBps), acc.WeeklyGoal)
	case domain.StrategyAggressive:
		return moneypkg.Min(available.MulBps(aggressiveBps), acc.WeeklyGoal)
	default:
		return moneypkg.Min(available.MulBps(cfg.MaxSavePercentageBps), acc.WeeklyGoal, available)
	}
}

func urgency(hours int64, optimal, goal moneypkg.Amount) domain.Urgency {
	switch {
	case hours >= highUrgencyHours && 2*optimal >= goal:
		return domain.UrgencyHigh
	case hours >= mediumUrgencyHours:
		return domain.UrgencyMedium
	default:
		return domain.UrgencyLow
	}
}

func confidence(wallet, available, optimal moneypkg.Amount, acc domain.Account) float64 {
	tenths := 5

	// wallet / buffer > 2 and > 3, kept in integers. A zero buffer counts as an infinite ratio.
	if wallet > 2*acc.SafetyBuffer {
		tenths += 2

		if wallet > 3*acc.SafetyBuffer {
			tenths++
		}
	}

	// 0.1 < optimal / available < 0.7
	if 10*optimal > available && 10*optimal < 7*available {
		tenths++
	}

	if optimal <= acc.WeeklyGoal {
		tenths++
	}

	if tenths > 10 {
		tenths = 10
	}

	return float64(tenths) / 10
}

func reason(wallet, available, optimal, goal moneypkg.Amount, profile domain.StrategyProfile) string {
	var percent int64
	if goal > 0 {
		percent = moneypkg.MulDiv(int64(optimal), 100, int64(goal))
	}

	return fmt.Sprintf("wallet balance %s, %s available after safety buffer; saving %s (%d%% of weekly goal) with %s strategy",
		wallet.StringFixed(2), available.StringFixed(2), optimal.StringFixed(2), percent, profile)
}
