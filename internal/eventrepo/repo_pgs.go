// Package eventrepo manages repository layer of the audit log.
package eventrepo

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/dbpkg"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
)

// RepoPGS facilitates event repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns event RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{db: db}
}

const appendQuery = `
INSERT INTO
    events (id, owner, kind, amount, detail, created_at)
VALUES
    ($1, $2, $3, $4, $5, $6)
RETURNING id, owner, kind, amount, detail, created_at
`

// Append stores the event and then returns it.
func (r *RepoPGS) Append(ctx context.Context, e domain.Event) (domain.Event, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, appendQuery, e.ID, e.Owner, e.Kind, e.Amount, e.Detail, e.CreatedAt)

	var got domain.Event

	err := row.Scan(
		&got.ID,
		&got.Owner,
		&got.Kind,
		&got.Amount,
		&got.Detail,
		&got.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Msgf("Append(ctx, %+v)", e)
		return got, errorspkg.ErrInternal
	}

	return got, nil
}

const listQuery = `
SELECT id, owner, kind, amount, detail, created_at FROM events
WHERE owner = $1
ORDER BY created_at, id
LIMIT $2 OFFSET $3
`

// List returns the specified number of events for the given owner, oldest first.
func (r *RepoPGS) List(ctx context.Context, owner string, limit, offset int32) ([]domain.Event, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listQuery, owner, limit, offset)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	items := []domain.Event{}

	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(
			&e.ID,
			&e.Owner,
			&e.Kind,
			&e.Amount,
			&e.Detail,
			&e.CreatedAt,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		items = append(items, e)
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return items, nil
}
