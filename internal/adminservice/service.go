// Package adminservice holds the administrative controls shared by the ledger and the pool strategy.
package adminservice

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/metrics"
)

// Recorder appends audit events.
type Recorder interface {
	Append(ctx context.Context, e domain.Event) (domain.Event, error)
}

// Service facilitates administrative controls: the admin role, the executor identity
// and the global pause switch.
type Service struct {
	admin  string
	events Recorder
	paused atomic.Bool

	mu       sync.RWMutex
	executor string
}

// New returns the admin service. An empty admin identity disables every admin operation.
func New(admin, executor string, events Recorder) *Service {
	return &Service{
		admin:    admin,
		executor: executor,
		events:   events,
	}
}

// Paused reports whether mutating operations are globally paused.
func (s *Service) Paused() bool {
	return s.paused.Load()
}

// Executor returns the identity authorized to trigger autonomous saves.
func (s *Service) Executor() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.executor
}

// RequireAdmin returns ErrUnauthorized unless caller is the admin identity.
func (s *Service) RequireAdmin(caller string) error {
	if s.admin == "" || caller != s.admin {
		return domain.ErrUnauthorized
	}

	return nil
}

// Pause stops all mutating ledger and pool operations. Reads stay available.
func (s *Service) Pause(ctx context.Context, caller string) error {
	return s.setPaused(ctx, caller, true)
}

// Unpause resumes mutating operations.
func (s *Service) Unpause(ctx context.Context, caller string) error {
	return s.setPaused(ctx, caller, false)
}

func (s *Service) setPaused(ctx context.Context, caller string, paused bool) error {
	op, kind := "unpause", domain.EventUnpaused
	if paused {
		op, kind = "pause", domain.EventPaused
	}

	err := s.RequireAdmin(caller)
	metrics.ObserveOperation(op, err)

	if err != nil {
		return err
	}

	if s.paused.Swap(paused) != paused {
		s.record(ctx, domain.NewEvent(caller, kind, 0, ""))
	}

	return nil
}

// SetExecutor replaces the executor identity.
func (s *Service) SetExecutor(ctx context.Context, caller, executor string) error {
	if err := s.RequireAdmin(caller); err != nil {
		metrics.ObserveOperation("set_executor", err)
		return err
	}

	if executor == "" {
		metrics.ObserveOperation("set_executor", domain.ErrInvalidIdentity)
		return domain.ErrInvalidIdentity
	}

	s.mu.Lock()
	s.executor = executor
	s.mu.Unlock()

	metrics.ObserveOperation("set_executor", nil)
	s.record(ctx, domain.NewEvent(caller, domain.EventExecutorUpdated, 0, executor))

	return nil
}

func (s *Service) record(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}

	if _, err := s.events.Append(ctx, e); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("kind", string(e.Kind)).Msg("cannot append audit event")
	}
}
