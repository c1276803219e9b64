package pooldelivery

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/go-petr/pet-savings/internal/domain"
	"github.com/go-petr/pet-savings/internal/middleware"
	"github.com/go-petr/pet-savings/pkg/moneypkg"
	"github.com/go-petr/pet-savings/pkg/randompkg"
	"github.com/go-petr/pet-savings/pkg/tokenpkg"
	"github.com/go-petr/pet-savings/pkg/web"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("nonnegamount", web.ValidNonNegativeAmount)
	}

	os.Exit(m.Run())
}

func TestPoolAPI(t *testing.T) {
	owner := randompkg.Owner()

	testCases := []struct {
		name       string
		path       string
		buildStubs func(svc *MockService)
		wantStatus int
		check      func(t *testing.T, body gjson.Result)
	}{
		{
			name: "Position",
			path: "/pool/position",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().Position(gomock.Any(), owner).Times(1).Return(domain.PoolPosition{Owner: owner, ShareUnits: 250}, nil)
				svc.EXPECT().TotalShares(gomock.Any()).Times(1).Return(domain.Shares(1000), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, int64(250), body.Get("data.position.share_units").Int())
				require.Equal(t, int64(1000), body.Get("data.total_shares").Int())
			},
		},
		{
			name: "Value",
			path: "/pool/value",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UserValue(gomock.Any(), owner).Times(1).Return(moneypkg.MustParse("40"), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, "40", body.Get("data.value").String())
			},
		},
		{
			name: "ValuePoolDown",
			path: "/pool/value",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().UserValue(gomock.Any(), owner).Times(1).Return(moneypkg.Amount(0), domain.ErrExternalFailure)
			},
			wantStatus: http.StatusBadGateway,
		},
		{
			name: "Yield",
			path: "/pool/yield?initial_deposit=35",
			buildStubs: func(svc *MockService) {
				svc.EXPECT().CalculateYield(gomock.Any(), owner, moneypkg.MustParse("35")).Times(1).Return(moneypkg.MustParse("5"), nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body gjson.Result) {
				require.Equal(t, "5", body.Get("data.yield").String())
			},
		},
		{
			name:       "YieldMissingDeposit",
			path:       "/pool/yield",
			wantStatus: http.StatusBadRequest,
		},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			svc := NewMockService(gomock.NewController(t))
			if tc.buildStubs != nil {
				tc.buildStubs(svc)
			}

			maker, err := tokenpkg.NewPasetoMaker(randompkg.String(32))
			require.NoError(t, err)

			h := NewHandler(svc)
			server := gin.New()
			auth := server.Group("/pool", middleware.AuthMiddleware(maker))
			auth.GET("/position", h.Position)
			auth.GET("/value", h.Value)
			auth.GET("/yield", h.Yield)

			request, err := http.NewRequest(http.MethodGet, tc.path, nil)
			require.NoError(t, err)
			require.NoError(t, middleware.AddAuthorization(request, maker, middleware.AuthTypeBearer, owner, time.Minute))

			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, request)

			require.Equal(t, tc.wantStatus, recorder.Code, recorder.Body.String())

			if tc.check != nil {
				tc.check(t, gjson.ParseBytes(recorder.Body.Bytes()))
			}
		})
	}
}
