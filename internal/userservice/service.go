// Package userservice manages business logic layer of users.
package userservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/passpkg"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"
)

// Repo provides data access layer interface needed by user service layer.
//
//go:generate mockgen -source service.go -destination service_mock.go -package userservice
type Repo interface {
	Create(ctx context.Context, arg domain.CreateUserParams) (domain.User, error)
	Get(ctx context.Context, username string) (domain.User, error)
}

// Service facilitates user service layer logic.
type Service struct {
	repo          Repo
	tokenMaker    tokenpkg.Maker
	tokenDuration time.Duration
}

// New returns user service struct to manage user business logic.
func New(repo Repo, tokenMaker tokenpkg.Maker, tokenDuration time.Duration) *Service {
	return &Service{
		repo:          repo,
		tokenMaker:    tokenMaker,
		tokenDuration: tokenDuration,
	}
}

// Create hashes the password, stores the user and returns it.
func (s *Service) Create(ctx context.Context, username, password, fullname, email string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	hashedPassword, err := passpkg.Hash(password)
	if err != nil {
		l.Error().Err(err).Send()
		return domain.User{}, errorspkg.ErrInternal
	}

	return s.repo.Create(ctx, domain.CreateUserParams{
		Username:       username,
		HashedPassword: hashedPassword,
		FullName:       fullname,
		Email:          email,
	})
}

// Login checks the password and issues an access token carrying the username as identity.
func (s *Service) Login(ctx context.Context, username, password string) (domain.User, string, *tokenpkg.Payload, error) {
	l := zerolog.Ctx(ctx)

	user, err := s.repo.Get(ctx, username)
	if err != nil {
		return domain.User{}, "", nil, err
	}

	if err := passpkg.Check(password, user.HashedPassword); err != nil {
		l.Warn().Err(err).Str("username", username).Msg("wrong password")
		return domain.User{}, "", nil, domain.ErrWrongPassword
	}

	token, payload, err := s.IssueToken(ctx, user.Username)
	if err != nil {
		return domain.User{}, "", nil, err
	}

	return user, token, payload, nil
}

// IssueToken returns a fresh access token for identity.
func (s *Service) IssueToken(ctx context.Context, identity string) (string, *tokenpkg.Payload, error) {
	token, payload, err := s.tokenMaker.CreateToken(identity, s.tokenDuration)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Send()
		return "", nil, errorspkg.ErrInternal
	}

	return token, payload, nil
}
