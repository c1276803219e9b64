package userrepo

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/go-cmp/cmp"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/randompkg"
)

var columns = []string{"username", "hashed_password", "full_name", "email", "created_at"}

func randomUser() domain.User {
	return domain.User{
		Username:       randompkg.Owner(),
		HashedPassword: randompkg.String(60),
		FullName:       randompkg.Owner(),
		Email:          randompkg.Email(),
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func userRows(u domain.User) *sqlmock.Rows {
	return sqlmock.NewRows(columns).AddRow(u.Username, u.HashedPassword, u.FullName, u.Email, u.CreatedAt)
}

func uniqueViolation(constraint string) error {
	return &pq.Error{Code: "23505", Constraint: constraint}
}

func TestCreate(t *testing.T) {
	user := randomUser()
	arg := domain.CreateUserParams{
		Username:       user.Username,
		HashedPassword: user.HashedPassword,
		FullName:       user.FullName,
		Email:          user.Email,
	}

	testCases := []struct {
		name     string
		queryErr error
		wantErr  error
	}{
		{name: "OK"},
		{name: "UsernameTaken", queryErr: uniqueViolation("users_pkey"), wantErr: domain.ErrUsernameAlreadyExists},
		{name: "EmailTaken", queryErr: uniqueViolation("users_email_key"), wantErr: domain.ErrEmailAlreadyExists},
		{name: "InternalError", queryErr: errors.New("connection reset"), wantErr: errorspkg.ErrInternal},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			q := mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users")).
				WithArgs(arg.Username, arg.HashedPassword, arg.FullName, arg.Email)
			if tc.queryErr != nil {
				q.WillReturnError(tc.queryErr)
			} else {
				q.WillReturnRows(userRows(user))
			}

			got, err := NewRepoPGS(db).Create(context.Background(), arg)
			require.ErrorIs(t, err, tc.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())

			if tc.wantErr == nil {
				if diff := cmp.Diff(user, got); diff != "" {
					t.Errorf("Create() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestGet(t *testing.T) {
	user := randomUser()

	testCases := []struct {
		name     string
		queryErr error
		wantErr  error
	}{
		{name: "OK"},
		{name: "NotFound", queryErr: sql.ErrNoRows, wantErr: domain.ErrUserNotFound},
		{name: "InternalError", queryErr: sql.ErrConnDone, wantErr: errorspkg.ErrInternal},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			q := mock.ExpectQuery(regexp.QuoteMeta("FROM users")).WithArgs(user.Username)
			if tc.queryErr != nil {
				q.WillReturnError(tc.queryErr)
			} else {
				q.WillReturnRows(userRows(user))
			}

			got, err := NewRepoPGS(db).Get(context.Background(), user.Username)
			require.ErrorIs(t, err, tc.wantErr)
			require.NoError(t, mock.ExpectationsWereMet())

			if tc.wantErr == nil {
				require.Equal(t, user, got)
			}
		})
	}
}
