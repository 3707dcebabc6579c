package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	bankmocks "github.com/Lexv0lk/atm-bank/gen/mocks/bank"
	"github.com/Lexv0lk/atm-bank/internal/bank/domain"
	"github.com/Lexv0lk/atm-bank/internal/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "admin-token"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestAccountsHandler_GetBalance(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name           string
		expectedStatus int

		prepareFn       func(t *testing.T, service *bankmocks.MockBankingService)
		checkResponseFn func(t *testing.T, recorder *httptest.ResponseRecorder)
	}

	tests := []testCase{
		{
			name:           "successful balance",
			expectedStatus: http.StatusOK,
			prepareFn: func(t *testing.T, service *bankmocks.MockBankingService) {
				service.EXPECT().GetBalance(gomock.Any(), "alice").
					Return(decimal.RequireFromString("120.5"), nil)
			},
			checkResponseFn: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				assert.JSONEq(t, `{"username":"alice","balance":"120.50"}`, recorder.Body.String())
			},
		},
		{
			name:           "unknown account",
			expectedStatus: http.StatusNotFound,
			prepareFn: func(t *testing.T, service *bankmocks.MockBankingService) {
				service.EXPECT().GetBalance(gomock.Any(), "alice").
					Return(decimal.Decimal{}, &domain.AccountNotFoundError{Msg: "not found"})
			},
		},
		{
			name:           "internal error",
			expectedStatus: http.StatusInternalServerError,
			prepareFn: func(t *testing.T, service *bankmocks.MockBankingService) {
				service.EXPECT().GetBalance(gomock.Any(), "alice").
					Return(decimal.Decimal{}, assert.AnError)
			},
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			service := bankmocks.NewMockBankingService(ctrl)
			tt.prepareFn(t, service)

			router := NewRouter(service, testToken, logging.NopLogger)

			req := httptest.NewRequest(http.MethodGet, "/api/accounts/alice/balance", nil)
			req.Header.Set(authHeaderName, "Bearer "+testToken)
			recorder := httptest.NewRecorder()

			router.ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.checkResponseFn != nil {
				tt.checkResponseFn(t, recorder)
			}
		})
	}
}

func TestAccountsHandler_GetTransactions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	service := bankmocks.NewMockBankingService(ctrl)

	timestamp := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	service.EXPECT().Transactions(gomock.Any(), "alice").Return([]domain.TransactionRecord{
		{Username: "alice", Kind: domain.KindDeposit, Amount: decimal.NewFromInt(50), Timestamp: timestamp},
		{Username: "alice", Kind: domain.KindTransfer, Amount: decimal.NewFromInt(30), Counterparty: "bob", Timestamp: timestamp},
	}, nil)

	router := NewRouter(service, testToken, logging.NopLogger)

	req := httptest.NewRequest(http.MethodGet, "/api/accounts/alice/transactions", nil)
	req.Header.Set(authHeaderName, "Bearer "+testToken)
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response transactionsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "alice", response.Username)
	require.Len(t, response.Transactions, 2)
	assert.Equal(t, "DEPOSIT", response.Transactions[0].Kind)
	assert.Equal(t, "30.00", response.Transactions[1].Amount)
	assert.Equal(t, "bob", response.Transactions[1].Counterparty)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	router := NewRouter(bankmocks.NewMockBankingService(gomock.NewController(t)), testToken, logging.NopLogger)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.JSONEq(t, `{"status":"ok"}`, recorder.Body.String())
}
