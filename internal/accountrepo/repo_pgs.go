// Package accountrepo manages repository layer of accounts.
package accountrepo

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/dbpkg"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
)

// RepoPGS facilitates account repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewTxRepoPGS returns account RepoPGS bound to an open transaction.
func NewTxRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

// NewRepoPGS returns account RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const accountColumns = `owner, total_deposited, total_withdrawn, current_balance, pooled_principal,
    weekly_goal, safety_buffer, last_auto_save_at, active, trust_mode, created_at, version`

type scanner interface {
	Scan(dest ...any) error
}

func scanAccount(row scanner) (domain.Account, error) {
	var (
		a    domain.Account
		last sql.NullTime
	)

	err := row.Scan(
		&a.Owner,
		&a.TotalDeposited,
		&a.TotalWithdrawn,
		&a.CurrentBalance,
		&a.PooledPrincipal,
		&a.WeeklyGoal,
		&a.SafetyBuffer,
		&last,
		&a.Active,
		&a.TrustMode,
		&a.CreatedAt,
		&a.Version,
	)
	if last.Valid {
		a.LastAutoSaveAt = last.Time
	}

	return a, err
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

const createQuery = `
INSERT INTO
    accounts (owner, weekly_goal, safety_buffer, trust_mode)
VALUES
    ($1, $2, $3, $4)
RETURNING ` + accountColumns

// Create creates the account and then returns it.
func (r *RepoPGS) Create(ctx context.Context, acc domain.Account) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, createQuery, acc.Owner, acc.WeeklyGoal, acc.SafetyBuffer, acc.TrustMode)

	a, err := scanAccount(row)
	if err != nil {
		l.Error().Err(err).Msgf("Create(ctx, %+v)", acc)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_pkey":
				return a, domain.ErrAccountAlreadyExists
			case "accounts_owner_fkey":
				return a, domain.ErrOwnerNotFound
			case "accounts_weekly_goal_check":
				return a, domain.ErrInvalidGoal
			case "accounts_safety_buffer_check":
				return a, domain.ErrInvalidSafetyBuffer
			}
		}

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const getQuery = `
SELECT ` + accountColumns + ` FROM accounts
WHERE owner = $1
`

// Get returns the account of the given owner.
func (r *RepoPGS) Get(ctx context.Context, owner string) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	a, err := scanAccount(r.db.QueryRowContext(ctx, getQuery, owner))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return a, errorspkg.ErrInternal
	}

	return a, nil
}

const updateQuery = `
UPDATE accounts
SET
    total_deposited = $2,
    total_withdrawn = $3,
    current_balance = $4,
    pooled_principal = $5,
    weekly_goal = $6,
    safety_buffer = $7,
    last_auto_save_at = $8,
    active = $9,
    trust_mode = $10,
    version = version + 1
WHERE owner = $1 AND version = $11
RETURNING ` + accountColumns

const existsQuery = `
SELECT EXISTS (SELECT 1 FROM accounts WHERE owner = $1)
`

const addTotalValueLockedQuery = `
UPDATE ledger_totals
SET total_value_locked = total_value_locked + $1
WHERE id = 1
`

// Update stores the account state and adds tvlDelta to the total value locked
// within a single transaction. The row is written only if its version still equals
// acc.Version, so replicas sharing the database cannot overwrite each other.
func (r *RepoPGS) Update(ctx context.Context, acc domain.Account, tvlDelta moneypkg.Amount) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	if r.conn == nil {
		return r.update(ctx, acc, tvlDelta)
	}

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	a, err := NewTxRepoPGS(tx).update(ctx, acc, tvlDelta)
	if err != nil {
		return a, err
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.Account{}, errorspkg.ErrInternal
	}

	return a, nil
}

func (r *RepoPGS) update(ctx context.Context, acc domain.Account, tvlDelta moneypkg.Amount) (domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, updateQuery,
		acc.Owner,
		acc.TotalDeposited,
		acc.TotalWithdrawn,
		acc.CurrentBalance,
		acc.PooledPrincipal,
		acc.WeeklyGoal,
		acc.SafetyBuffer,
		nullTime(acc.LastAutoSaveAt),
		acc.Active,
		acc.TrustMode,
		acc.Version,
	)

	a, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return a, r.missing(ctx, acc.Owner)
		}

		l.Error().Err(err).Msgf("Update(ctx, %+v)", acc)

		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Constraint {
			case "accounts_balance_check", "accounts_pooled_principal_check":
				return a, domain.ErrInsufficientBalance
			}
		}

		return a, errorspkg.ErrInternal
	}

	if tvlDelta != 0 {
		if _, err := r.db.ExecContext(ctx, addTotalValueLockedQuery, tvlDelta); err != nil {
			l.Error().Err(err).Send()
			return domain.Account{}, errorspkg.ErrInternal
		}
	}

	return a, nil
}

// missing tells a stale version apart from an absent account after an update matched no row.
func (r *RepoPGS) missing(ctx context.Context, owner string) error {
	var exists bool
	if err := r.db.QueryRowContext(ctx, existsQuery, owner).Scan(&exists); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if exists {
		return domain.ErrConcurrentUpdate
	}

	return domain.ErrAccountNotFound
}

const totalValueLockedQuery = `
SELECT total_value_locked FROM ledger_totals
WHERE id = 1
`

// TotalValueLocked returns the funds held directly across active accounts.
func (r *RepoPGS) TotalValueLocked(ctx context.Context) (moneypkg.Amount, error) {
	l := zerolog.Ctx(ctx)

	var tvl moneypkg.Amount
	if err := r.db.QueryRowContext(ctx, totalValueLockedQuery).Scan(&tvl); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return tvl, nil
}

const listAutonomousQuery = `
SELECT ` + accountColumns + ` FROM accounts
WHERE active AND trust_mode = 'AUTONOMOUS'
ORDER BY owner
LIMIT $1 OFFSET $2
`

// ListAutonomous returns the specified page of active AUTONOMOUS accounts.
func (r *RepoPGS) ListAutonomous(ctx context.Context, limit, offset int32) ([]domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAutonomousQuery, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Account{}

	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, a)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
