// Package positionrepo manages repository layer of pool positions.
package positionrepo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/dbpkg"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
)

// RepoPGS facilitates position repository layer logic.
type RepoPGS struct {
	db   dbpkg.SQLInterface
	conn *sql.DB
}

// NewRepoPGS returns position RepoPGS with connection to start transactions.
func NewRepoPGS(db *sql.DB) *RepoPGS {
	return &RepoPGS{
		db:   db,
		conn: db,
	}
}

const getQuery = `
SELECT owner, share_units FROM positions
WHERE owner = $1
`

// Get returns the position of owner. Owners without shares get an empty position.
func (r *RepoPGS) Get(ctx context.Context, owner string) (domain.PoolPosition, error) {
	l := zerolog.Ctx(ctx)

	var p domain.PoolPosition

	err := r.db.QueryRowContext(ctx, getQuery, owner).Scan(&p.Owner, &p.ShareUnits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PoolPosition{Owner: owner}, nil
		}

		l.Error().Err(err).Send()

		return p, errorspkg.ErrInternal
	}

	return p, nil
}

const mintQuery = `
INSERT INTO positions (owner, share_units)
VALUES ($1, $2)
ON CONFLICT (owner) DO UPDATE SET share_units = positions.share_units + EXCLUDED.share_units
RETURNING owner, share_units
`

const burnQuery = `
UPDATE positions
SET share_units = share_units - $2
WHERE owner = $1
RETURNING owner, share_units
`

const addTotalSharesQuery = `
UPDATE pool_totals
SET total_share_units = total_share_units + $1
WHERE id = 1
`

// Mint credits shares to owner and to the total within a single transaction.
func (r *RepoPGS) Mint(ctx context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error) {
	if shares <= 0 {
		return domain.PoolPosition{}, domain.ErrZeroAmount
	}

	return r.change(ctx, mintQuery, owner, shares, shares)
}

// Burn debits shares from owner and from the total within a single transaction.
func (r *RepoPGS) Burn(ctx context.Context, owner string, shares domain.Shares) (domain.PoolPosition, error) {
	if shares <= 0 {
		return domain.PoolPosition{}, domain.ErrZeroAmount
	}

	return r.change(ctx, burnQuery, owner, shares, -shares)
}

func (r *RepoPGS) change(ctx context.Context, query, owner string, shares, totalDelta domain.Shares) (domain.PoolPosition, error) {
	l := zerolog.Ctx(ctx)

	var p domain.PoolPosition

	tx, err := r.conn.BeginTx(ctx, nil)
	if err != nil {
		l.Error().Err(err).Send()
		return p, errorspkg.ErrInternal
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			l.Error().Err(err).Send()
		}
	}()

	err = tx.QueryRowContext(ctx, query, owner, shares).Scan(&p.Owner, &p.ShareUnits)
	if err != nil {
		l.Error().Err(err).Str("owner", owner).Stringer("shares", shares).Send()

		if errors.Is(err, sql.ErrNoRows) {
			return p, domain.ErrInsufficientShares
		}

		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Constraint == "positions_share_units_check" {
			return p, domain.ErrInsufficientShares
		}

		return p, errorspkg.ErrInternal
	}

	if _, err := tx.ExecContext(ctx, addTotalSharesQuery, totalDelta); err != nil {
		l.Error().Err(err).Send()
		return domain.PoolPosition{}, errorspkg.ErrInternal
	}

	if err := tx.Commit(); err != nil {
		l.Error().Err(err).Send()
		return domain.PoolPosition{}, errorspkg.ErrInternal
	}

	return p, nil
}

const totalSharesQuery = `
SELECT total_share_units FROM pool_totals
WHERE id = 1
`

// TotalShares returns the share units minted across all owners.
func (r *RepoPGS) TotalShares(ctx context.Context) (domain.Shares, error) {
	l := zerolog.Ctx(ctx)

	var total domain.Shares
	if err := r.db.QueryRowContext(ctx, totalSharesQuery).Scan(&total); err != nil {
		l.Error().Err(err).Send()
		return 0, errorspkg.ErrInternal
	}

	return total, nil
}
