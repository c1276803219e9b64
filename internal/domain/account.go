package domain

import (
	"time"

	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// TrustMode decides who may trigger automated saves for an account.
type TrustMode string

const (
	// TrustModeManual lets only the owner trigger automated saves.
	TrustModeManual TrustMode = "MANUAL"
	// TrustModeAutonomous lets only the configured executor trigger automated saves.
	TrustModeAutonomous TrustMode = "AUTONOMOUS"
)

// Valid reports whether m is a known trust mode.
func (m TrustMode) Valid() bool {
	return m == TrustModeManual || m == TrustModeAutonomous
}

// Account holds the savings state of one identity.
type Account struct {
	Owner           string          `json:"owner"`
	TotalDeposited  moneypkg.Amount `json:"total_deposited"`
	TotalWithdrawn  moneypkg.Amount `json:"total_withdrawn"`
	CurrentBalance  moneypkg.Amount `json:"current_balance"`
	PooledPrincipal moneypkg.Amount `json:"pooled_principal"`
	WeeklyGoal      moneypkg.Amount `json:"weekly_goal"`
	SafetyBuffer    moneypkg.Amount `json:"safety_buffer"`
	LastAutoSaveAt  time.Time       `json:"last_auto_save_at"` // zero means never
	Active          bool            `json:"active"`
	TrustMode       TrustMode       `json:"trust_mode"`
	CreatedAt       time.Time       `json:"created_at"`
	Version         int64           `json:"-"` // bumped by every stored update
}

// HeldBalance returns the part of the balance custodied directly by the ledger.
func (a Account) HeldBalance() moneypkg.Amount {
	return a.CurrentBalance - a.PooledPrincipal
}

// NeverAutoSaved reports whether no automated save has happened yet.
func (a Account) NeverAutoSaved() bool {
	return a.LastAutoSaveAt.IsZero()
}

// RateLimitSatisfied reports whether an automated save is allowed at now.
func (a Account) RateLimitSatisfied(now time.Time, interval time.Duration) bool {
	if a.NeverAutoSaved() {
		return true
	}

	return !now.Before(a.LastAutoSaveAt.Add(interval))
}

// CreateAccountParams is the input data to create an account.
type CreateAccountParams struct {
	Owner        string
	WeeklyGoal   moneypkg.Amount
	SafetyBuffer moneypkg.Amount
	TrustMode    TrustMode
}
