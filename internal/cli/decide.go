package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/go-petr/pet-savings/internal/decisionengine"
	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

type decideFlags struct {
	wallet      string
	goal        string
	buffer      string
	minSave     string
	profile     string
	maxPctBps   int64
	sinceLast   time.Duration
	interval    time.Duration
	manual      bool
	deactivated bool
}

var decideOpts decideFlags

var decideCmd = &cobra.Command{
	Use:   "decide",
	Short: "Evaluate a single save decision offline and print it as JSON",
	Example: `  pet-savings decide --wallet 200 --goal 50 --buffer 20
  pet-savings decide --wallet 200 --goal 50 --buffer 20 --profile aggressive --since-last 96h`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		out, err := runDecide(decideOpts, time.Now().UTC())
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		return enc.Encode(out)
	},
}

func init() {
	f := decideCmd.Flags()
	f.StringVar(&decideOpts.wallet, "wallet", "0", "wallet balance outside the ledger")
	f.StringVar(&decideOpts.goal, "goal", "0", "weekly savings goal")
	f.StringVar(&decideOpts.buffer, "buffer", "0", "safety buffer kept in the wallet")
	f.StringVar(&decideOpts.minSave, "min-save", "1", "minimum save amount")
	f.StringVar(&decideOpts.profile, "profile", "balanced", "strategy profile: conservative, balanced or aggressive")
	f.Int64Var(&decideOpts.maxPctBps, "max-save-bps", 5_000, "balanced cap on the available amount, in basis points")
	f.DurationVar(&decideOpts.sinceLast, "since-last", 0, "time since the last automated save, 0 for never")
	f.DurationVar(&decideOpts.interval, "interval", 24*time.Hour, "minimum interval between automated saves")
	f.BoolVar(&decideOpts.manual, "manual", false, "evaluate an account in manual trust mode")
	f.BoolVar(&decideOpts.deactivated, "deactivated", false, "evaluate a deactivated account")
}

type decideOutput struct {
	Snapshot domain.DecisionSnapshot `json:"snapshot"`
	Decision domain.SaveDecision     `json:"decision"`
}

func runDecide(opts decideFlags, now time.Time) (decideOutput, error) {
	var (
		parsed [4]moneypkg.Amount
		err    error
	)

	for i, s := range []string{opts.wallet, opts.goal, opts.buffer, opts.minSave} {
		if parsed[i], err = moneypkg.Parse(s); err != nil {
			return decideOutput{}, fmt.Errorf("parse amount %q: %w", s, err)
		}

		if parsed[i] < 0 {
			return decideOutput{}, fmt.Errorf("amount %q must not be negative", s)
		}
	}

	profile, err := decisionengine.ParseProfile(opts.profile)
	if err != nil {
		return decideOutput{}, err
	}

	acc := domain.Account{
		Owner:        "offline",
		WeeklyGoal:   parsed[1],
		SafetyBuffer: parsed[2],
		Active:       !opts.deactivated,
		TrustMode:    domain.TrustModeAutonomous,
	}

	if opts.manual {
		acc.TrustMode = domain.TrustModeManual
	}

	if opts.sinceLast > 0 {
		acc.LastAutoSaveAt = now.Add(-opts.sinceLast)
	}

	cfg := decisionengine.Config{MinSaveAmount: parsed[3], MaxSavePercentageBps: opts.maxPctBps}
	snap := decisionengine.Snapshot(acc, parsed[0], now, opts.interval)

	return decideOutput{
		Snapshot: snap,
		Decision: decisionengine.Decide(snap, profile, cfg),
	}, nil
}
