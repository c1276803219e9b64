package decisionengine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

func autonomousSnapshot(wallet, buffer, goal string, hours int64) domain.DecisionSnapshot {
	return domain.DecisionSnapshot{
		WalletBalance: moneypkg.MustParse(wallet),
		Account: domain.Account{
			Owner:        "alice",
			WeeklyGoal:   moneypkg.MustParse(goal),
			SafetyBuffer: moneypkg.MustParse(buffer),
			Active:       true,
			TrustMode:    domain.TrustModeAutonomous,
		},
		HoursSinceLastSave: hours,
		RateLimitSatisfied: true,
	}
}

func TestDecide(t *testing.T) {
	testCases := []struct {
		name           string
		snap           domain.DecisionSnapshot
		profile        domain.StrategyProfile
		wantSave       bool
		wantAmount     string
		wantConfidence float64
		wantUrgency    domain.Urgency
	}{
		{
			name:           "BalancedCappedByGoal",
			snap:           autonomousSnapshot("1000.00", "100.00", "25.00", 24),
			profile:        domain.StrategyBalanced,
			wantSave:       true,
			wantAmount:     "25.00",
			wantConfidence: 0.9,
			wantUrgency:    domain.UrgencyLow,
		},
		{
			name:           "BalancedSmallSurplus",
			snap:           autonomousSnapshot("110.00", "100.00", "25.00", 24),
			profile:        domain.StrategyBalanced,
			wantSave:       true,
			wantAmount:     "5.00",
			wantConfidence: 0.7,
			wantUrgency:    domain.UrgencyLow,
		},
		{
			name:           "ConservativeBelowDoubleBuffer",
			snap:           autonomousSnapshot("150.00", "100.00", "25.00", 24),
			profile:        domain.StrategyConservative,
			wantSave:       false,
			wantAmount:     "0",
			wantConfidence: 0.6,
			wantUrgency:    domain.UrgencyLow,
		},
		{
			name:           "Conservative",
			snap:           autonomousSnapshot("1000.00", "100.00", "500.00", 80),
			profile:        domain.StrategyConservative,
			wantSave:       true,
			wantAmount:     "225.00",
			wantConfidence: 1.0,
			wantUrgency:    domain.UrgencyMedium,
		},
		{
			name:           "Aggressive",
			snap:           autonomousSnapshot("1000.00", "100.00", "1000.00", 200),
			profile:        domain.StrategyAggressive,
			wantSave:       true,
			wantAmount:     "720.00",
			wantConfidence: 0.9,
			wantUrgency:    domain.UrgencyHigh,
		},
		{
			name:           "WeekOverdueButSmallAmount",
			snap:           autonomousSnapshot("120.00", "100.00", "50.00", 168),
			profile:        domain.StrategyBalanced,
			wantSave:       true,
			wantAmount:     "10.00",
			wantConfidence: 0.7,
			wantUrgency:    domain.UrgencyMedium,
		},
		{
			name:           "ZeroBuffer",
			snap:           autonomousSnapshot("10.00", "0", "100.00", 0),
			profile:        domain.StrategyBalanced,
			wantSave:       true,
			wantAmount:     "5.00",
			wantConfidence: 1.0,
			wantUrgency:    domain.UrgencyLow,
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.snap, tc.profile, DefaultConfig())

			require.Equal(t, tc.wantSave, got.ShouldSave)
			require.Equal(t, moneypkg.MustParse(tc.wantAmount), got.Amount)
			require.InDelta(t, tc.wantConfidence, got.Confidence, 1e-9)
			require.Equal(t, tc.wantUrgency, got.Urgency)
			require.NotEmpty(t, got.Reason)
		})
	}
}

func TestDecidePreChecks(t *testing.T) {
	inactive := autonomousSnapshot("1000.00", "100.00", "25.00", 24)
	inactive.Account.Active = false

	manual := autonomousSnapshot("1000.00", "100.00", "25.00", 24)
	manual.Account.TrustMode = domain.TrustModeManual

	limited := autonomousSnapshot("1000.00", "100.00", "25.00", 1)
	limited.RateLimitSatisfied = false

	belowMinimum := autonomousSnapshot("100.50", "100.00", "25.00", 24)
	belowBuffer := autonomousSnapshot("20.00", "100.00", "25.00", 24)

	for name, snap := range map[string]domain.DecisionSnapshot{
		"Inactive":     inactive,
		"Manual":       manual,
		"RateLimited":  limited,
		"BelowMinimum": belowMinimum,
		"BelowBuffer":  belowBuffer,
	} {
		got := Decide(snap, domain.StrategyAggressive, DefaultConfig())

		require.False(t, got.ShouldSave, name)
		require.Zero(t, got.Amount, name)
		require.Equal(t, 1.0, got.Confidence, name)
		require.Equal(t, domain.UrgencyLow, got.Urgency, name)
		require.NotEmpty(t, got.Reason, name)
	}
}

func TestDecideIsDeterministic(t *testing.T) {
	snap := autonomousSnapshot("1234.567891", "100.00", "75.00", 100)

	first := Decide(snap, domain.StrategyBalanced, DefaultConfig())
	for i := 0; i < 10; i++ {
		require.Equal(t, first, Decide(snap, domain.StrategyBalanced, DefaultConfig()))
	}

	require.Equal(t,
		"wallet balance 1234.57, 1134.57 available after safety buffer; saving 75.00 (100% of weekly goal) with balanced strategy",
		first.Reason)
}

func TestMaxSavePercentage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxSavePercentageBps = 1_000

	got := Decide(autonomousSnapshot("1000.00", "100.00", "500.00", 24), domain.StrategyBalanced, cfg)
	require.Equal(t, moneypkg.MustParse("90.00"), got.Amount)
}

func TestParseProfile(t *testing.T) {
	for in, want := range map[string]domain.StrategyProfile{
		"":             domain.StrategyBalanced,
		"balanced":     domain.StrategyBalanced,
		"Conservative": domain.StrategyConservative,
		" aggressive ": domain.StrategyAggressive,
	} {
		got, err := ParseProfile(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseProfile("yolo")
	require.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	acc := domain.Account{Active: true, TrustMode: domain.TrustModeAutonomous}

	snap := Snapshot(acc, moneypkg.Units(10), now, 24*time.Hour)
	require.True(t, snap.RateLimitSatisfied)
	require.GreaterOrEqual(t, snap.HoursSinceLastSave, int64(highUrgencyHours))

	acc.LastAutoSaveAt = now.Add(-90 * time.Minute)
	snap = Snapshot(acc, moneypkg.Units(10), now, 24*time.Hour)
	require.False(t, snap.RateLimitSatisfied)
	require.Equal(t, int64(1), snap.HoursSinceLastSave)
	require.Equal(t, moneypkg.Units(10), snap.WalletBalance)
}
