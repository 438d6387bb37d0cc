package rest_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/api/middleware"
	"github.com/feral-file/ff-account-sync/internal/api/rest"
	"github.com/feral-file/ff-account-sync/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-account-sync/internal/api/shared/errors"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
)

const (
	testAPIKey = "test-api-key"
	testWallet = "0x1111111111111111111111111111111111111111"
)

func setupRouter(t *testing.T) (*gin.Engine, *mocks.MockAPIExecutor) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	exec := mocks.NewMockAPIExecutor(ctrl)
	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

	return router, exec
}

func doRequest(router *gin.Engine, method, path string, body interface{}, authorized bool) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if authorized {
		req.Header.Set("Authorization", "ApiKey "+testAPIKey)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *apierrors.APIError {
	t.Helper()
	var resp apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestMetricsEndpoint(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodGet, "/metrics", nil, false)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSyncAccounts(t *testing.T) {
	router, exec := setupRouter(t)

	accounts := []dto.AccountRequest{{Address: testWallet, ChainID: 1}}
	exec.EXPECT().
		TriggerSync(gomock.Any(), accounts).
		Return(&dto.SyncAccountsResponse{Jobs: []dto.SyncJob{{Address: testWallet, ChainID: 1, WorkflowID: "wf-1"}}}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/accounts/sync", dto.SyncAccountsRequest{Accounts: accounts}, true)
	require.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.SyncAccountsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Jobs, 1)
	assert.Equal(t, "wf-1", resp.Jobs[0].WorkflowID)
}

func TestSyncAccounts_RequiresAuth(t *testing.T) {
	router, _ := setupRouter(t)

	body := dto.SyncAccountsRequest{Accounts: []dto.AccountRequest{{Address: testWallet, ChainID: 1}}}
	w := doRequest(router, http.MethodPost, "/api/v1/accounts/sync", body, false)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, apierrors.ErrCodeUnauthorized, decodeError(t, w).Code)
}

func TestSyncAccounts_InvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/accounts/sync", map[string]interface{}{"accounts": []interface{}{}}, true)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeBadRequest, decodeError(t, w).Code)
}

func TestSyncAccounts_ExecutorError(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		TriggerSync(gomock.Any(), gomock.Any()).
		Return(nil, apierrors.NewServiceError("Failed to start sync workflow"))

	body := dto.SyncAccountsRequest{Accounts: []dto.AccountRequest{{Address: testWallet, ChainID: 1}}}
	w := doRequest(router, http.MethodPost, "/api/v1/accounts/sync", body, true)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, apierrors.ErrCodeServiceError, decodeError(t, w).Code)
}

func TestWatchAccounts(t *testing.T) {
	router, exec := setupRouter(t)

	req := dto.WatchAccountsRequest{Accounts: []dto.AccountRequest{{Address: testWallet, ChainID: 1}}, Sync: true}
	exec.EXPECT().
		WatchAccounts(gomock.Any(), req).
		Return(&dto.WatchAccountsResponse{Registered: 1}, nil)

	w := doRequest(router, http.MethodPost, "/api/v1/accounts/watch", req, true)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"registered":1`)
}

func TestListTransactions(t *testing.T) {
	router, exec := setupRouter(t)

	before := int64(1700000000)
	next := int64(1690000000)
	exec.EXPECT().
		ListTransactions(gomock.Any(), testWallet, domain.ChainID(1), &before).
		Return(&dto.TransactionListResponse{
			Transactions: []domain.TransactionMeta{{Hash: "0xabc", Timestamp: next, ChainID: 1}},
			NextBefore:   &next,
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/accounts/"+testWallet+"/chains/1/transactions?before=1700000000", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TransactionListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Transactions, 1)
	assert.Equal(t, "0xabc", resp.Transactions[0].Hash)
	assert.Equal(t, next, *resp.NextBefore)
}

func TestListTransactions_NoCursor(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		ListTransactions(gomock.Any(), testWallet, domain.ChainID(1), (*int64)(nil)).
		Return(&dto.TransactionListResponse{Transactions: []domain.TransactionMeta{}}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/accounts/"+testWallet+"/chains/1/transactions", nil, false)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"transactions":[]}`, w.Body.String())
}

func TestListTransactions_BadParams(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		code   apierrors.ErrorCode
	}{
		{
			name:   "non numeric chain",
			path:   "/api/v1/accounts/" + testWallet + "/chains/mainnet/transactions",
			status: http.StatusBadRequest,
			code:   apierrors.ErrCodeBadRequest,
		},
		{
			name:   "non numeric cursor",
			path:   "/api/v1/accounts/" + testWallet + "/chains/1/transactions?before=yesterday",
			status: http.StatusUnprocessableEntity,
			code:   apierrors.ErrCodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := setupRouter(t)

			w := doRequest(router, http.MethodGet, tt.path, nil, false)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}

func TestGetCheckpoints(t *testing.T) {
	router, exec := setupRouter(t)

	exec.EXPECT().
		GetCheckpoints(gomock.Any(), testWallet, domain.ChainID(137)).
		Return(&dto.CheckpointListResponse{
			Address: testWallet,
			ChainID: 137,
			State:   domain.SyncStateResetPending,
			Checkpoints: []dto.CheckpointResponse{
				{Scope: testWallet, Kind: domain.CheckpointERC20Events, LatestBlock: 42},
			},
		}, nil)

	w := doRequest(router, http.MethodGet, "/api/v1/accounts/"+testWallet+"/chains/137/checkpoints", nil, false)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.CheckpointListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, domain.SyncStateResetPending, resp.State)
	require.Len(t, resp.Checkpoints, 1)
	assert.Equal(t, uint64(42), resp.Checkpoints[0].LatestBlock)
}

func TestListTokens_ExecutorErrors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   apierrors.ErrorCode
	}{
		{
			name:   "api error keeps its status",
			err:    apierrors.NewBadRequestError("Unsupported chain", "1"),
			status: http.StatusBadRequest,
			code:   apierrors.ErrCodeBadRequest,
		},
		{
			name:   "plain error becomes internal",
			err:    errors.New("boom"),
			status: http.StatusInternalServerError,
			code:   apierrors.ErrCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, exec := setupRouter(t)

			exec.EXPECT().
				ListTokens(gomock.Any(), testWallet, domain.ChainID(1)).
				Return(nil, tt.err)

			w := doRequest(router, http.MethodGet, "/api/v1/accounts/"+testWallet+"/chains/1/tokens", nil, false)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, tt.code, decodeError(t, w).Code)
		})
	}
}
