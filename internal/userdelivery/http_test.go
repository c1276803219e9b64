package userdelivery

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/randompkg"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"
	"github.com/go-petr/pet-savings/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.ReleaseMode)
	os.Exit(m.Run())
}

func randomUser() (domain.User, string) {
	return domain.User{
		Username: randompkg.Owner(),
		FullName: randompkg.Owner(),
		Email:    randompkg.Email(),
	}, randompkg.String(10)
}

func newServer(svc Service) *gin.Engine {
	h := NewHandler(svc)

	server := gin.New()
	server.POST("/users", h.Create)
	server.POST("/users/login", h.Login)

	return server
}

func do(t *testing.T, server *gin.Engine, path string, body gin.H) (*httptest.ResponseRecorder, web.Response) {
	t.Helper()

	data, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	require.NoError(t, err)

	server.ServeHTTP(recorder, request)

	var res web.Response
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&res))

	return recorder, res
}

func TestCreateAPI(t *testing.T) {
	user, password := randomUser()
	payload := &tokenpkg.Payload{Identity: user.Username, ExpiredAt: time.Now().Add(time.Minute)}

	valid := gin.H{
		"username": user.Username,
		"password": password,
		"fullname": user.FullName,
		"email":    user.Email,
	}

	with := func(key string, value any) gin.H {
		body := gin.H{}
		for k, v := range valid {
			body[k] = v
		}
		body[key] = value

		return body
	}

	testCases := []struct {
		name       string
		body       gin.H
		buildStubs func(svc *MockService)
		wantStatus int
		wantError  string
	}{
		{
			name: "OK",
			body: valid,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), user.Username, password, user.FullName, user.Email).Times(1).Return(user, nil)
				svc.EXPECT().IssueToken(gomock.Any(), user.Username).Times(1).Return("token", payload, nil)
			},
			wantStatus: http.StatusCreated,
		},
		{
			name: "InvalidUsername",
			body: with("username", "user&%"),
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Username accepts only alphanumeric characters",
		},
		{
			name: "ShortPassword",
			body: with("password", "xyz"),
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Password must be at least 6",
		},
		{
			name: "InvalidEmail",
			body: with("email", "user%email.com"),
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
			wantError:  "Email must be a valid email",
		},
		{
			name: "UsernameTaken",
			body: valid,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Times(1).Return(domain.User{}, domain.ErrUsernameAlreadyExists)
			},
			wantStatus: http.StatusConflict,
			wantError:  domain.ErrUsernameAlreadyExists.Error(),
		},
		{
			name: "TokenError",
			body: valid,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(user, nil)
				svc.EXPECT().IssueToken(gomock.Any(), user.Username).Times(1).Return("", nil, errorspkg.ErrInternal)
			},
			wantStatus: http.StatusInternalServerError,
			wantError:  errorspkg.ErrInternal.Error(),
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			svc := NewMockService(gomock.NewController(t))
			tc.buildStubs(svc)

			recorder, res := do(t, newServer(svc), "/users", tc.body)
			require.Equal(t, tc.wantStatus, recorder.Code)
			require.Equal(t, tc.wantError, res.Error)

			if tc.wantStatus == http.StatusCreated {
				require.Equal(t, "token", res.AccessToken)
				require.NotEmpty(t, res.AccessTokenExpiresAt)
			}
		})
	}
}

func TestLoginAPI(t *testing.T) {
	user, password := randomUser()
	payload := &tokenpkg.Payload{Identity: user.Username, ExpiredAt: time.Now().Add(time.Minute)}

	testCases := []struct {
		name       string
		body       gin.H
		buildStubs func(svc *MockService)
		wantStatus int
	}{
		{
			name: "OK",
			body: gin.H{"username": user.Username, "password": password},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Login(gomock.Any(), user.Username, password).Times(1).Return(user, "token", payload, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "NotFound",
			body: gin.H{"username": user.Username, "password": password},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Login(gomock.Any(), user.Username, password).Times(1).
					Return(domain.User{}, "", nil, domain.ErrUserNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
		{
			name: "WrongPassword",
			body: gin.H{"username": user.Username, "password": password},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Login(gomock.Any(), user.Username, password).Times(1).
					Return(domain.User{}, "", nil, domain.ErrWrongPassword)
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name: "MissingPassword",
			body: gin.H{"username": user.Username},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatus: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			svc := NewMockService(gomock.NewController(t))
			tc.buildStubs(svc)

			recorder, res := do(t, newServer(svc), "/users/login", tc.body)
			require.Equal(t, tc.wantStatus, recorder.Code)

			if tc.wantStatus == http.StatusOK {
				require.Equal(t, "token", res.AccessToken)
			}
		})
	}
}
