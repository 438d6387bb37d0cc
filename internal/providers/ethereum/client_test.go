package ethereum_test

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	geth "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/mocks"
	"github.com/feral-file/ff-account-sync/internal/providers/ethereum"
)

const testContract = "0xb47e3cd837ddf8e4c57f05d70ab865de6e193bbb"

func parseABI(t *testing.T, def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	require.NoError(t, err)
	return parsed
}

// callMatcher matches a CallMsg by target contract and method selector
type callMatcher struct {
	contract common.Address
	selector []byte
}

func callTo(contract string, selector []byte) gomock.Matcher {
	return callMatcher{contract: common.HexToAddress(contract), selector: selector}
}

func (m callMatcher) Matches(x interface{}) bool {
	msg, ok := x.(geth.CallMsg)
	return ok &&
		msg.To != nil &&
		*msg.To == m.contract &&
		len(msg.Data) >= 4 &&
		string(msg.Data[:4]) == string(m.selector)
}

func (m callMatcher) String() string {
	return "call to " + m.contract.Hex() + " selector " + common.Bytes2Hex(m.selector)
}

func TestEthereumClient_TokenURI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEthClient := mocks.NewMockEthClient(ctrl)
	client := ethereum.NewClient(domain.ChainEthereumMainnet, mockEthClient, nil)
	ctx := context.Background()

	tokenURIABI := parseABI(t, `[{"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`)
	uriABI := parseABI(t, `[{"inputs":[{"name":"id","type":"uint256"}],"name":"uri","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"}]`)

	t.Run("erc721 tokenURI", func(t *testing.T) {
		out, err := tokenURIABI.Methods["tokenURI"].Outputs.Pack("ipfs://QmToken/1")
		require.NoError(t, err)

		mockEthClient.EXPECT().
			CallContract(gomock.Any(), callTo(testContract, tokenURIABI.Methods["tokenURI"].ID), gomock.Nil()).
			Return(out, nil)

		uri, err := client.TokenURI(ctx, testContract, "1")
		require.NoError(t, err)
		assert.Equal(t, "ipfs://QmToken/1", uri)
	})

	t.Run("falls back to erc1155 uri", func(t *testing.T) {
		out, err := uriABI.Methods["uri"].Outputs.Pack("https://meta.example/{id}.json")
		require.NoError(t, err)

		gomock.InOrder(
			mockEthClient.EXPECT().
				CallContract(gomock.Any(), callTo(testContract, tokenURIABI.Methods["tokenURI"].ID), gomock.Nil()).
				Return(nil, errors.New("execution reverted")),
			mockEthClient.EXPECT().
				CallContract(gomock.Any(), callTo(testContract, uriABI.Methods["uri"].ID), gomock.Nil()).
				Return(out, nil),
		)

		uri, err := client.TokenURI(ctx, testContract, "255")
		require.NoError(t, err)
		assert.Equal(t, "https://meta.example/00000000000000000000000000000000000000000000000000000000000000ff.json", uri)
	})

	t.Run("invalid token id", func(t *testing.T) {
		_, err := client.TokenURI(ctx, testContract, "not-a-number")
		assert.ErrorIs(t, err, domain.ErrInvalidTokenID)
	})
}

func TestEthereumClient_ERC20Info(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEthClient := mocks.NewMockEthClient(ctrl)
	client := ethereum.NewClient(domain.ChainEthereumMainnet, mockEthClient, nil)

	erc20ABI := parseABI(t, `[
		{"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"stateMutability":"view","type":"function"},
		{"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"stateMutability":"view","type":"function"}
	]`)
	name, _ := erc20ABI.Methods["name"].Outputs.Pack("USD Coin")
	symbol, _ := erc20ABI.Methods["symbol"].Outputs.Pack("USDC")
	decimals, _ := erc20ABI.Methods["decimals"].Outputs.Pack(uint8(6))

	mockEthClient.EXPECT().CallContract(gomock.Any(), callTo(testContract, erc20ABI.Methods["name"].ID), gomock.Nil()).Return(name, nil)
	mockEthClient.EXPECT().CallContract(gomock.Any(), callTo(testContract, erc20ABI.Methods["symbol"].ID), gomock.Nil()).Return(symbol, nil)
	mockEthClient.EXPECT().CallContract(gomock.Any(), callTo(testContract, erc20ABI.Methods["decimals"].ID), gomock.Nil()).Return(decimals, nil)

	info, err := client.ERC20Info(context.Background(), testContract)
	require.NoError(t, err)
	assert.Equal(t, &ethereum.TokenInfo{Name: "USD Coin", Symbol: "USDC", Decimals: 6}, info)
}

func TestEthereumClient_TransactionDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEthClient := mocks.NewMockEthClient(ctrl)
	client := ethereum.NewClient(domain.ChainEthereumMainnet, mockEthClient, nil)
	ctx := context.Background()
	hash := "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060"

	t.Run("mined", func(t *testing.T) {
		tx := types.NewTx(&types.LegacyTx{
			Nonce:    7,
			Gas:      90000,
			GasPrice: big.NewInt(1_000_000_000),
			Data:     common.FromHex("0xa9059cbb00000001"),
		})
		mockEthClient.EXPECT().TransactionByHash(gomock.Any(), common.HexToHash(hash)).Return(tx, false, nil)
		mockEthClient.EXPECT().TransactionReceipt(gomock.Any(), common.HexToHash(hash)).Return(&types.Receipt{
			Status:  types.ReceiptStatusFailed,
			GasUsed: 42000,
		}, nil)

		details, err := client.TransactionDetails(ctx, hash)
		require.NoError(t, err)
		assert.Equal(t, "0xa9059cbb00000001", details.Input)
		assert.Equal(t, uint64(7), details.Nonce)
		assert.Equal(t, uint64(42000), details.GasUsed)
		assert.Equal(t, domain.TransactionStatusFailed, details.Status)
	})

	t.Run("pending", func(t *testing.T) {
		tx := types.NewTx(&types.LegacyTx{Nonce: 8, GasPrice: big.NewInt(1)})
		mockEthClient.EXPECT().TransactionByHash(gomock.Any(), common.HexToHash(hash)).Return(tx, true, nil)

		_, err := client.TransactionDetails(ctx, hash)
		assert.ErrorIs(t, err, ethereum.ErrTransactionPending)
	})
}

func TestEthereumClient_LatestBlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEthClient := mocks.NewMockEthClient(ctrl)
	client := ethereum.NewClient(domain.ChainEthereumMainnet, mockEthClient, nil)

	mockEthClient.EXPECT().HeaderByNumber(gomock.Any(), gomock.Nil()).Return(&types.Header{Number: big.NewInt(19_000_000)}, nil)

	block, err := client.LatestBlock(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(19_000_000), block)
}

func TestPool_Client(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDialer := mocks.NewMockEthClientDialer(ctrl)
	mockEthClient := mocks.NewMockEthClient(ctrl)
	pool := ethereum.NewPool(mockDialer, nil)
	ctx := context.Background()

	network := domain.Network{ChainID: domain.ChainEthereumMainnet, RPCURL: "https://rpc.example"}

	mockDialer.EXPECT().Dial(gomock.Any(), "https://rpc.example").Return(mockEthClient, nil).Times(1)

	first, err := pool.Client(ctx, network)
	require.NoError(t, err)
	second, err := pool.Client(ctx, network)
	require.NoError(t, err)
	assert.Same(t, first, second)

	_, err = pool.Client(ctx, domain.Network{ChainID: domain.ChainPolygonMainnet})
	assert.ErrorIs(t, err, ethereum.ErrRPCNotConfigured)

	mockEthClient.EXPECT().Close().Times(1)
	pool.Close()
}
