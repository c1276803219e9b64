package domain

import (
	"time"
)

var (
	// ErrUsernameAlreadyExists indicates that the user with the given username already exists.
	ErrUsernameAlreadyExists = NewError(ErrState, "username already exists")
	// ErrEmailAlreadyExists indicates that the user with the given email already exists.
	ErrEmailAlreadyExists = NewError(ErrState, "email already exists")
	// ErrUserNotFound indicates that the user is not found.
	ErrUserNotFound = NewError(ErrState, "user not found")
	// ErrWrongPassword indicates the wrong password for the given user.
	ErrWrongPassword = NewError(ErrAuthorization, "wrong password")
)

// User holds user data. The username is the identity the ledger keys accounts by.
type User struct {
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"full_name"`
	Email          string    `json:"email"`
	CreatedAt      time.Time `json:"created_at"`
}

// CreateUserParams is the input data to create a user.
type CreateUserParams struct {
	Username       string
	HashedPassword string
	FullName       string
	Email          string
}
