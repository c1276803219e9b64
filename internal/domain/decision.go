package domain

import "github.com/go-petr/pet-savings/pkg/moneypkg"

// Urgency signals how pressing an automated save is.
type Urgency string

const (
	UrgencyLow    Urgency = "LOW"
	UrgencyMedium Urgency = "MEDIUM"
	UrgencyHigh   Urgency = "HIGH"
)

// StrategyProfile selects how aggressively idle funds are saved.
type StrategyProfile string

const (
	StrategyConservative StrategyProfile = "conservative"
	StrategyBalanced     StrategyProfile = "balanced"
	StrategyAggressive   StrategyProfile = "aggressive"
)

// DecisionSnapshot is the read-only view the decision engine evaluates.
type DecisionSnapshot struct {
	WalletBalance      moneypkg.Amount `json:"wallet_balance"`
	Account            Account         `json:"account"`
	HoursSinceLastSave int64           `json:"hours_since_last_save"`
	RateLimitSatisfied bool            `json:"rate_limit_satisfied"`
}

// SaveDecision is the outcome of evaluating a snapshot.
type SaveDecision struct {
	ShouldSave bool            `json:"should_save"`
	Amount     moneypkg.Amount `json:"amount"`
	Reason     string          `json:"reason"`
	Confidence float64         `json:"confidence"`
	Urgency    Urgency         `json:"urgency"`
}
