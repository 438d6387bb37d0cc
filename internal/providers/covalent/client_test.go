package covalent_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/providers/covalent"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
)

var testNetwork = domain.Network{
	ChainID:     domain.ChainID(1284),
	Name:        "moonbeam",
	Provider:    domain.ProviderCovalent,
	ExplorerURL: "https://api.covalenthq.com/v1",
}

func TestTransactionsURL(t *testing.T) {
	url := covalent.TransactionsURL(testNetwork, "0x5AAEB6053F3E94C9B9A09F33669435E7EF1BEAED", false, 1, 800)
	assert.Equal(t,
		"https://api.covalenthq.com/v1/1284/address/0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed/transactions_v2/?block-signed-at-asc=false&page-number=0&page-size=800",
		url,
	)

	withKey := testNetwork
	withKey.APIKey = "ckey"
	url = covalent.TransactionsURL(withKey, "0xabc", true, 3, 10)
	assert.Equal(t,
		"https://api.covalenthq.com/v1/1284/address/0xabc/transactions_v2/?block-signed-at-asc=true&page-number=2&page-size=10&key=ckey",
		url,
	)
}

func TestCovalentClient_ListTransactions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockHTTPClient := mocks.NewMockHTTPClient(ctrl)
	client := covalent.NewClient(mockHTTPClient, nil, adapter.NewJSON())
	ctx := context.Background()
	wallet := "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
	expectedURL := covalent.TransactionsURL(testNetwork, wallet, true, 1, 800)

	t.Run("converts items", func(t *testing.T) {
		body := []byte(`{"data":{"address":"` + wallet + `","items":[
			{"block_signed_at":"2023-11-14T22:13:20Z","block_height":4200,"tx_hash":"0xdd","successful":true,"from_address":"` + wallet + `","to_address":"0x2","value":"1000","gas_offered":21000,"gas_spent":21000,"gas_price":1000000000},
			{"block_signed_at":"2023-11-14T22:14:20Z","block_height":4201,"tx_hash":"0xee","successful":false,"from_address":"0x2","to_address":null,"value":"0","gas_offered":90000,"gas_spent":50000,"gas_price":1000000000}
		]},"error":false,"error_message":null,"error_code":null}`)
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(body, nil)

		txs, err := client.ListTransactions(ctx, testNetwork, wallet, true, 1, 800)
		require.NoError(t, err)
		require.Len(t, txs, 2)

		assert.Equal(t, "4200", txs[0].BlockNumber)
		assert.Equal(t, "1700000000", txs[0].TimeStamp)
		assert.Equal(t, "0", txs[0].IsError)
		assert.Equal(t, "0x2", txs[0].To)
		assert.Equal(t, "21000", txs[0].GasUsed)

		assert.Equal(t, "1", txs[1].IsError)
		assert.Empty(t, txs[1].To)

		tx, err := txs[1].ToTransaction(wallet, testNetwork.ChainID)
		require.NoError(t, err)
		assert.Equal(t, domain.TransactionStatusFailed, tx.Status)
		assert.Equal(t, uint64(4201), tx.BlockNumber)
	})

	t.Run("api error", func(t *testing.T) {
		body := []byte(`{"data":null,"error":true,"error_message":"Invalid chain name","error_code":400}`)
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return(body, nil)

		_, err := client.ListTransactions(ctx, testNetwork, wallet, true, 1, 800)
		assert.ErrorIs(t, err, etherscan.ErrUnexpectedResult)
	})

	t.Run("short empty body", func(t *testing.T) {
		mockHTTPClient.EXPECT().GetBytes(gomock.Any(), expectedURL).Return([]byte(`No transactions found`), nil)

		txs, err := client.ListTransactions(ctx, testNetwork, wallet, true, 1, 800)
		require.NoError(t, err)
		assert.Empty(t, txs)
	})
}
