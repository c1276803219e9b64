package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/go-petr/pet-savings/internal/domain"
)

// Users is an in-memory user repository.
type Users struct {
	shards *shards[domain.User]

	emailMu sync.Mutex
	emails  map[string]string
}

// NewUsers returns an empty user store.
func NewUsers() *Users {
	return &Users{
		shards: newShards[domain.User](),
		emails: make(map[string]string),
	}
}

// Create stores the user and then returns it.
func (u *Users) Create(_ context.Context, arg domain.CreateUserParams) (domain.User, error) {
	sh := u.shards.get(arg.Username)

	sh.mu.Lock()
	defer sh.mu.Unlock()

	if _, ok := sh.items[arg.Username]; ok {
		return domain.User{}, domain.ErrUsernameAlreadyExists
	}

	u.emailMu.Lock()
	defer u.emailMu.Unlock()

	if _, ok := u.emails[arg.Email]; ok {
		return domain.User{}, domain.ErrEmailAlreadyExists
	}

	user := domain.User{
		Username:       arg.Username,
		HashedPassword: arg.HashedPassword,
		FullName:       arg.FullName,
		Email:          arg.Email,
		CreatedAt:      time.Now().UTC(),
	}

	sh.items[arg.Username] = user
	u.emails[arg.Email] = arg.Username

	return user, nil
}

// Get returns the user with the given username.
func (u *Users) Get(_ context.Context, username string) (domain.User, error) {
	sh := u.shards.get(username)

	sh.mu.RLock()
	defer sh.mu.RUnlock()

	user, ok := sh.items[username]
	if !ok {
		return domain.User{}, domain.ErrUserNotFound
	}

	return user, nil
}
