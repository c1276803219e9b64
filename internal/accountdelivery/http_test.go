package accountdelivery

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/pkg/errorspkg"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/randompkg"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if err := RegisterValidators(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	os.Exit(m.Run())
}

const executor = "executor"

func randomAccount(owner string) domain.Account {
	deposited := randompkg.AmountBetween(100, 1000)

	return domain.Account{
		Owner:          owner,
		TotalDeposited: deposited,
		CurrentBalance: deposited,
		WeeklyGoal:     randompkg.AmountBetween(10, 100),
		SafetyBuffer:   randompkg.AmountBetween(0, 10),
		Active:         true,
		TrustMode:      domain.TrustModeAutonomous,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
	}
}

func newServer(t *testing.T, svc Service) (*gin.Engine, tokenpkg.Maker) {
	t.Helper()

	maker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
	require.NoError(t, err)

	h := NewHandler(svc)
	server := gin.New()

	server.GET("/ledger/tvl", h.TotalValueLocked)

	auth := server.Group("/", middleware.AuthMiddleware(maker))
	auth.POST("/account", h.Create)
	auth.GET("/account", h.GetOwn)
	auth.POST("/account/deposit", h.Deposit)
	auth.POST("/account/withdraw", h.Withdraw)
	auth.PUT("/account/goal", h.UpdateGoal)
	auth.PUT("/account/trust-mode", h.UpdateTrustMode)
	auth.PUT("/account/safety-buffer", h.UpdateSafetyBuffer)
	auth.POST("/account/deactivate", h.Deactivate)
	auth.POST("/account/withdraw-pooled", h.WithdrawPooled)
	auth.GET("/account/history", h.History)
	auth.GET("/accounts/:owner", h.Get)
	auth.GET("/accounts/:owner/can-auto-save", h.CanAutoSave)
	auth.POST("/accounts/:owner/auto-save", h.AutoSave)

	return server, maker
}

type testCase struct {
	name       string
	method     string
	path       string
	body       any
	caller     string
	buildStubs func(svc *MockService)
	wantStatus int
	check      func(t *testing.T, body gjson.Result)
}

func run(t *testing.T, testCases []testCase) {
	t.Helper()

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			svc := NewMockService(gomock.NewController(t))
			if tc.buildStubs != nil {
				tc.buildStubs(svc)
			}

			server, maker := newServer(t, svc)

			var body bytes.Buffer
			if tc.body != nil {
				require.NoError(t, json.NewEncoder(&body).Encode(tc.body))
			}

			request, err := http.NewRequest(tc.method, tc.path, &body)
			require.NoError(t, err)

			if tc.caller != "" {
				require.NoError(t, middleware.AddAuthorization(request, maker, middleware.AuthTypeBearer, tc.caller, time.Minute))
			}

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code, recorder.Body.String())

			if tc.check != nil {
				tc.check(t, gjson.ParseBytes(recorder.Body.Bytes()))
			}
		})
	}
}

func TestCreateAPI(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)
	account.TotalDeposited, account.CurrentBalance = 0, 0

	valid := gin.H{
		"weekly_goal":   account.WeeklyGoal.String(),
		"safety_buffer": account.SafetyBuffer.String(),
		"trust_mode":    string(account.TrustMode),
	}

	run(t, []testCase{
		{
			name:   "OK",
			method: http.MethodPost, path: "/account", body: valid, caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), domain.CreateAccountParams{
					Owner:        owner,
					WeeklyGoal:   account.WeeklyGoal,
					SafetyBuffer: account.SafetyBuffer,
					TrustMode:    account.TrustMode,
				}).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusCreated,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, owner, body.Get("data.account.owner").String())
				require.Equal(t, account.WeeklyGoal.String(), body.Get("data.account.weekly_goal").String())
			},
		},
		{
			name:   "NoAuthorization",
			method: http.MethodPost, path: "/account", body: valid,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "InvalidTrustMode",
			method: http.MethodPost, path: "/account", caller: owner,
			body: gin.H{"weekly_goal": "10", "safety_buffer": "0", "trust_mode": "YOLO"},
			wantStatus: http.StatusBadRequest,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, "TrustMode must be MANUAL or AUTONOMOUS", body.Get("error").String())
			},
		},
		{
			name:   "NegativeBuffer",
			method: http.MethodPost, path: "/account", caller: owner,
			body:       gin.H{"weekly_goal": "10", "safety_buffer": "-1", "trust_mode": "MANUAL"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "ZeroGoal",
			method: http.MethodPost, path: "/account", caller: owner,
			body:       gin.H{"weekly_goal": "0", "safety_buffer": "1", "trust_mode": "MANUAL"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "AlreadyExists",
			method: http.MethodPost, path: "/account", body: valid, caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(domain.Account{}, domain.ErrAccountAlreadyExists)
			},
			wantStatus: http.StatusConflict,
		},
		{
			name:   "Paused",
			method: http.MethodPost, path: "/account", body: valid, caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(domain.Account{}, domain.ErrSystemPaused)
			},
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:   "InternalError",
			method: http.MethodPost, path: "/account", body: valid, caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Times(1).Return(domain.Account{}, errorspkg.ErrInternal)
			},
			wantStatus: http.StatusInternalServerError,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, errorspkg.ErrInternal.Error(), body.Get("error").String())
			},
		},
	})
}

func TestGetAPI(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)

	run(t, []testCase{
		{
			name:   "Own",
			method: http.MethodGet, path: "/account", caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Get(gomock.Any(), owner).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, account.CurrentBalance.String(), body.Get("data.account.current_balance").String())
			},
		},
		{
			name:   "Other",
			method: http.MethodGet, path: "/accounts/" + owner, caller: "someone",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Get(gomock.Any(), owner).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "NotFound",
			method: http.MethodGet, path: "/accounts/ghost", caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Get(gomock.Any(), "ghost").Times(1).Return(domain.Account{}, domain.ErrAccountNotFound)
			},
			wantStatus: http.StatusNotFound,
		},
	})
}

func TestMoneyAPI(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)
	amount := moneypkg.MustParse("12.50")

	run(t, []testCase{
		{
			name:   "Deposit",
			method: http.MethodPost, path: "/account/deposit", caller: owner,
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Deposit(gomock.Any(), owner, amount).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "DepositNotAnAmount",
			method: http.MethodPost, path: "/account/deposit", caller: owner,
			body:       gin.H{"amount": "12.5.0"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "DepositSettlementDown",
			method: http.MethodPost, path: "/account/deposit", caller: owner,
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Deposit(gomock.Any(), owner, amount).Times(1).
					Return(domain.Account{}, fmt.Errorf("%w: timeout", domain.ErrExternalFailure))
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name:   "WithdrawInsufficient",
			method: http.MethodPost, path: "/account/withdraw", caller: owner,
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Withdraw(gomock.Any(), owner, amount).Times(1).Return(domain.Account{}, domain.ErrInsufficientBalance)
			},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:   "AutoSaveByExecutor",
			method: http.MethodPost, path: "/accounts/" + owner + "/auto-save", caller: executor,
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().AutoSave(gomock.Any(), owner, amount, executor).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "AutoSaveRateLimited",
			method: http.MethodPost, path: "/accounts/" + owner + "/auto-save", caller: executor,
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().AutoSave(gomock.Any(), owner, amount, executor).Times(1).Return(domain.Account{}, domain.ErrRateLimitNotMet)
			},
			wantStatus: http.StatusTooManyRequests,
		},
		{
			name:   "AutoSaveUnauthorized",
			method: http.MethodPost, path: "/accounts/" + owner + "/auto-save", caller: "mallory",
			body: gin.H{"amount": "12.50"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().AutoSave(gomock.Any(), owner, amount, "mallory").Times(1).Return(domain.Account{}, domain.ErrUnauthorized)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "CanAutoSave",
			method: http.MethodGet, path: "/accounts/" + owner + "/can-auto-save", caller: executor,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().CanAutoSave(gomock.Any(), owner).Times(1).Return(true, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.True(t, body.Get("data.can_auto_save").Bool())
			},
		},
		{
			name:   "Deactivate",
			method: http.MethodPost, path: "/account/deactivate", caller: owner,
			buildStubs: func(svc *MockService) {
				closed := account
				closed.Active = false
				svc.EXPECT().Deactivate(gomock.Any(), owner).Times(1).Return(closed, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.False(t, body.Get("data.account.active").Bool())
			},
		},
		{
			name:   "WithdrawPooled",
			method: http.MethodPost, path: "/account/withdraw-pooled", caller: owner,
			body: gin.H{"shares": 5},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().WithdrawPooled(gomock.Any(), owner, domain.Shares(5)).Times(1).
					Return(account, moneypkg.MustParse("16.20"), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, "16.2", body.Get("data.proceeds").String())
			},
		},
		{
			name:   "WithdrawPooledZeroShares",
			method: http.MethodPost, path: "/account/withdraw-pooled", caller: owner,
			body:       gin.H{"shares": 0},
			wantStatus: http.StatusBadRequest,
		},
	})
}

func TestSettingsAPI(t *testing.T) {
	owner := randompkg.Owner()
	account := randomAccount(owner)

	run(t, []testCase{
		{
			name:   "Goal",
			method: http.MethodPut, path: "/account/goal", caller: owner,
			body: gin.H{"weekly_goal": "75"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UpdateGoal(gomock.Any(), owner, moneypkg.MustParse("75")).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "TrustMode",
			method: http.MethodPut, path: "/account/trust-mode", caller: owner,
			body: gin.H{"trust_mode": "MANUAL"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UpdateTrustMode(gomock.Any(), owner, domain.TrustModeManual).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "SafetyBufferZero",
			method: http.MethodPut, path: "/account/safety-buffer", caller: owner,
			body: gin.H{"safety_buffer": "0"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UpdateSafetyBuffer(gomock.Any(), owner, moneypkg.Amount(0)).Times(1).Return(account, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "InactiveAccount",
			method: http.MethodPut, path: "/account/goal", caller: owner,
			body: gin.H{"weekly_goal": "75"},
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UpdateGoal(gomock.Any(), owner, gomock.Any()).Times(1).Return(domain.Account{}, domain.ErrAccountNotActive)
			},
			wantStatus: http.StatusConflict,
		},
	})
}

func TestHistoryAndTVLAPI(t *testing.T) {
	owner := randompkg.Owner()
	events := []domain.Event{
		domain.NewEvent(owner, domain.EventAccountCreated, 0, ""),
		domain.NewEvent(owner, domain.EventDeposited, moneypkg.MustParse("10"), ""),
	}

	run(t, []testCase{
		{
			name:   "History",
			method: http.MethodGet, path: "/account/history?page_id=1&page_size=5", caller: owner,
			buildStubs: func(svc *MockService) {
				svc.EXPECT().History(gomock.Any(), owner, int32(5), int32(1)).Times(1).Return(events, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Len(t, body.Get("data.events").Array(), 2)
				require.Equal(t, string(domain.EventDeposited), body.Get("data.events.1.kind").String())
			},
		},
		{
			name:   "HistoryPageTooLarge",
			method: http.MethodGet, path: "/account/history?page_id=1&page_size=500", caller: owner,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "TVL",
			method: http.MethodGet, path: "/ledger/tvl",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().TotalValueLocked(gomock.Any()).Times(1).Return(moneypkg.MustParse("1234.5"), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, "1234.5", body.Get("data.total_value_locked").String())
			},
		},
	})
}
