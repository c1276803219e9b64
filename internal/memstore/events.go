package memstore

import (
	"context"

	"github.com/go-petr/pet-savings/internal/domain"
)

// Events is an in-memory audit log.
type Events struct {
	shards *shards[[]domain.Event]
}

// NewEvents returns an empty audit log.
func NewEvents() *Events {
	return &Events{shards: newShards[[]domain.Event]()}
}

// Append stores the event and then returns it.
func (e *Events) Append(_ context.Context, event domain.Event) (domain.Event, error) {
	sh := e.shards.get(event.Owner)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.items[event.Owner] = append(sh.items[event.Owner], event)

	return event, nil
}

// List returns the specified number of events for owner, oldest first.
func (e *Events) List(_ context.Context, owner string, limit, offset int32) ([]domain.Event, error) {
	sh := e.shards.get(owner)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	return page(sh.items[owner], limit, offset), nil
}
