package etherscan_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
)

const testWallet = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

var testNetwork = domain.Network{
	ChainID:     domain.ChainEthereumMainnet,
	Name:        "mainnet",
	Provider:    domain.ProviderEtherscan,
	ExplorerURL: "https://api.etherscan.io",
	APIKey:      "test-key",
}

func TestTxListURL(t *testing.T) {
	tests := []struct {
		name      string
		network   domain.Network
		boundary  uint64
		ascending bool
		page      int
		expected  string
	}{
		{
			name:      "ascending from boundary",
			network:   testNetwork,
			boundary:  101,
			ascending: true,
			page:      1,
			expected:  "https://api.etherscan.io/api?module=account&action=txlist&address=" + testWallet + "&startblock=101&endblock=999999999&sort=asc&page=1&offset=800&apikey=test-key",
		},
		{
			name:      "descending to boundary",
			network:   testNetwork,
			boundary:  domain.DOWNWARD_SYNC_START_BLOCK,
			ascending: false,
			page:      2,
			expected:  "https://api.etherscan.io/api?module=account&action=txlist&address=" + testWallet + "&startblock=0&endblock=9999999999&sort=desc&page=2&offset=800&apikey=test-key",
		},
		{
			name: "no api key",
			network: domain.Network{
				ChainID:     domain.ChainPolygonMainnet,
				ExplorerURL: "https://api.polygonscan.com/",
			},
			boundary:  5,
			ascending: true,
			page:      1,
			expected:  "https://api.polygonscan.com/api?module=account&action=txlist&address=" + testWallet + "&startblock=5&endblock=999999999&sort=asc&page=1&offset=800",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := etherscan.TxListURL(tt.network, testWallet, tt.boundary, tt.ascending, tt.page, 800)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestTransferListURL(t *testing.T) {
	url := etherscan.TransferListURL(testNetwork, testWallet, etherscan.ActionTokenNFTTx, 1201, 100)
	assert.Equal(t,
		"https://api.etherscan.io/api?module=account&action=tokennfttx&startblock=1201&address="+testWallet+"&page=1&offset=100&sort=asc&apikey=test-key",
		url,
	)
}

func TestEtherscanClient_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := etherscan.NewClient(mockHTTPClient, nil, adapter.NewJSON())
	ctx := context.Background()

	expectedURL := etherscan.TxListURL(testNetwork, testWallet, 100, true, 1, 800)

	t.Run("records", func(t *testing.T) {
		body := []byte(`{"status":"1","message":"OK","result":[
			{"blockNumber":"101","timeStamp":"1700000000","hash":"0xaa","from":"0x1","to":"0x2","value":"10","input":"0x","isError":"0"},
			{"blockNumber":"102","timeStamp":"1700000012","hash":"0xbb","from":"0x2","to":"0x1","value":"0","input":"0xa9059cbb0000","isError":"1"}
		]}`)
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(body, nil)

		txs, err := client.ListTransactions(ctx, testNetwork, testWallet, 100, true, 1, 800)
		require.NoError(t, err)
		require.Len(t, txs, 2)
		assert.Equal(t, "101", txs[0].BlockNumber)
		assert.Equal(t, "0xbb", txs[1].Hash)
		assert.Equal(t, "1", txs[1].IsError)
	})

	t.Run("short empty body", func(t *testing.T) {
		body := []byte(`{"status":"0","message":"No transactions found","result":[]}`)
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(body, nil)

		txs, err := client.ListTransactions(ctx, testNetwork, testWallet, 100, true, 1, 800)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})

	t.Run("error string result", func(t *testing.T) {
		body := []byte(`{"status":"0","message":"NOTOK","result":"Max rate limit reached, please use API Key for higher rate limit"}`)
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(body, nil)

		txs, err := client.ListTransactions(ctx, testNetwork, testWallet, 100, true, 1, 800)
		assert.ErrorIs(t, err, etherscan.ErrUnexpectedResult)
		assert.Nil(t, txs)
	})

	t.Run("malformed body", func(t *testing.T) {
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return([]byte(`<html>bad gateway</html>`), nil)

		_, err := client.ListTransactions(ctx, testNetwork, testWallet, 100, true, 1, 800)
		assert.Error(t, err)
	})

	t.Run("transport error", func(t *testing.T) {
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(nil, errors.New("connection reset"))

		_, err := client.ListTransactions(ctx, testNetwork, testWallet, 100, true, 1, 800)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})
}

func TestEtherscanClient_ListTransferEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := etherscan.NewClient(mockHTTPClient, nil, adapter.NewJSON())

	body := []byte(`{"status":"1","message":"OK","result":[
		{"blockNumber":"200","timeStamp":"1700000100","hash":"0xcc","from":"0x9","to":"` + testWallet + `","value":"5000000","contractAddress":"0xdac17f958d2ee523a2206206994597c13d831ec7","tokenName":"Tether USD","tokenSymbol":"USDT","tokenDecimal":"6"}
	]}`)
	mockHTTPClient.EXPECT().
		GetBytes(gomock.Any(), etherscan.TransferListURL(testNetwork, testWallet, etherscan.ActionTokenTx, 150, 100)).
		Return(body, nil)

	events, err := client.ListTransferEvents(context.Background(), testNetwork, testWallet, etherscan.ActionTokenTx, 150, 100)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Tether USD", events[0].TokenName)
	decimals, ok := events[0].Decimals()
	assert.True(t, ok)
	assert.Equal(t, int32(6), decimals)
}

func TestIsEmptyBody(t *testing.T) {
	assert.True(t, etherscan.IsEmptyBody([]byte(`{"status":"0","message":"No transactions found","result":[]}`)))
	assert.False(t, etherscan.IsEmptyBody([]byte(`{"status":"1","message":"OK","result":[]}`)))

	long := []byte(`{"status":"0","message":"No transactions found","result":[],"padding":"xxxxxxxxxxxxxxxxxxxxxxxxxx"}`)
	assert.False(t, etherscan.IsEmptyBody(long))
}
