package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

const PROVIDER_NAME = "rpc"

// ErrTransactionPending is returned when a transaction is known but not mined yet
var ErrTransactionPending = errors.New("transaction pending")

var (
	tokenURIABI = mustParseABI(`[{"constant":true,"inputs":[{"name":"tokenId","type":"uint256"}],"name":"tokenURI","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`)
	uriABI      = mustParseABI(`[{"constant":true,"inputs":[{"name":"id","type":"uint256"}],"name":"uri","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"}]`)
	erc20ABI    = mustParseABI(`[
		{"constant":true,"inputs":[],"name":"name","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"symbol","outputs":[{"name":"","type":"string"}],"payable":false,"stateMutability":"view","type":"function"},
		{"constant":true,"inputs":[],"name":"decimals","outputs":[{"name":"","type":"uint8"}],"payable":false,"stateMutability":"view","type":"function"}
	]`)
)

func mustParseABI(def string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(def))
	if err != nil {
		panic(fmt.Sprintf("failed to parse ABI: %v", err))
	}
	return parsed
}

// TokenInfo is the ERC20 metadata read from a contract
type TokenInfo struct {
	Name     string
	Symbol   string
	Decimals int32
}

// TransactionDetails is the execution data of a mined transaction
type TransactionDetails struct {
	Input    string
	Nonce    uint64
	Gas      uint64
	GasPrice *big.Int
	GasUsed  uint64
	Status   domain.TransactionStatus
}

// EthereumClient reads contract and transaction data from one chain's RPC endpoint
//
//go:generate mockgen -source=client.go -destination=../../mocks/ethereum_client.go -package=mocks -mock_names=EthereumClient=MockEthereumClient
type EthereumClient interface {
	// TokenURI fetches the metadata uri of a token, trying ERC721 tokenURI before ERC1155 uri
	TokenURI(ctx context.Context, contractAddress, tokenNumber string) (string, error)

	// ERC20Info fetches name, symbol and decimals of a fungible token contract
	ERC20Info(ctx context.Context, contractAddress string) (*TokenInfo, error)

	// TransactionDetails fetches the input and receipt data of a mined transaction
	TransactionDetails(ctx context.Context, hash string) (*TransactionDetails, error)

	// LatestBlock returns the chain head block number
	LatestBlock(ctx context.Context) (uint64, error)

	// Close closes the connection
	Close()
}

type ethereumClient struct {
	chainID        domain.ChainID
	client         adapter.EthClient
	rateLimitProxy ratelimit.Proxy
}

func NewClient(chainID domain.ChainID, client adapter.EthClient, rateLimitProxy ratelimit.Proxy) EthereumClient {
	return &ethereumClient{chainID: chainID, client: client, rateLimitProxy: rateLimitProxy}
}

// TokenURI fetches the metadata uri of a token
func (c *ethereumClient) TokenURI(ctx context.Context, contractAddress, tokenNumber string) (string, error) {
	tokenID, ok := new(big.Int).SetString(tokenNumber, 10)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrInvalidTokenID, tokenNumber)
	}

	uri, err := c.callString(ctx, tokenURIABI, "tokenURI", contractAddress, tokenID)
	if err == nil && uri != "" {
		return uri, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	logger.Debug("tokenURI unavailable, trying uri",
		zap.String("chain_id", c.chainID.String()),
		zap.String("contract", contractAddress),
		zap.Error(err),
	)

	uri, err = c.callString(ctx, uriABI, "uri", contractAddress, tokenID)
	if err != nil {
		return "", err
	}
	// ERC1155 uris may carry the {id} template of the token id as 64 hex characters
	return strings.ReplaceAll(uri, "{id}", fmt.Sprintf("%064x", tokenID)), nil
}

// ERC20Info fetches name, symbol and decimals of a fungible token contract
func (c *ethereumClient) ERC20Info(ctx context.Context, contractAddress string) (*TokenInfo, error) {
	name, err := c.callString(ctx, erc20ABI, "name", contractAddress)
	if err != nil {
		return nil, err
	}
	symbol, err := c.callString(ctx, erc20ABI, "symbol", contractAddress)
	if err != nil {
		return nil, err
	}

	result, err := c.call(ctx, erc20ABI, "decimals", contractAddress)
	if err != nil {
		return nil, err
	}
	var decimals uint8
	if err := erc20ABI.UnpackIntoInterface(&decimals, "decimals", result); err != nil {
		return nil, fmt.Errorf("failed to unpack decimals: %w", err)
	}

	return &TokenInfo{Name: name, Symbol: symbol, Decimals: int32(decimals)}, nil
}

// TransactionDetails fetches the input and receipt data of a mined transaction
func (c *ethereumClient) TransactionDetails(ctx context.Context, hash string) (*TransactionDetails, error) {
	txHash := common.HexToHash(hash)

	type txResult struct {
		tx      *types.Transaction
		pending bool
	}
	res, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) (txResult, error) {
		tx, pending, err := c.client.TransactionByHash(ctx, txHash)
		return txResult{tx: tx, pending: pending}, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction %s: %w", hash, err)
	}
	if res.pending {
		return nil, fmt.Errorf("%w: %s", ErrTransactionPending, hash)
	}

	receipt, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) (*types.Receipt, error) {
		return c.client.TransactionReceipt(ctx, txHash)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get receipt %s: %w", hash, err)
	}

	status := domain.TransactionStatusSuccess
	if receipt.Status != types.ReceiptStatusSuccessful {
		status = domain.TransactionStatusFailed
	}

	return &TransactionDetails{
		Input:    "0x" + common.Bytes2Hex(res.tx.Data()),
		Nonce:    res.tx.Nonce(),
		Gas:      res.tx.Gas(),
		GasPrice: res.tx.GasPrice(),
		GasUsed:  receipt.GasUsed,
		Status:   status,
	}, nil
}

// LatestBlock returns the chain head block number
func (c *ethereumClient) LatestBlock(ctx context.Context) (uint64, error) {
	header, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) (*types.Header, error) {
		return c.client.HeaderByNumber(ctx, nil)
	})
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

func (c *ethereumClient) callString(ctx context.Context, contractABI abi.ABI, method, contractAddress string, args ...interface{}) (string, error) {
	result, err := c.call(ctx, contractABI, method, contractAddress, args...)
	if err != nil {
		return "", err
	}

	var value string
	if err := contractABI.UnpackIntoInterface(&value, method, result); err != nil {
		return "", fmt.Errorf("failed to unpack %s result: %w", method, err)
	}
	return value, nil
}

func (c *ethereumClient) call(ctx context.Context, contractABI abi.ABI, method, contractAddress string, args ...interface{}) ([]byte, error) {
	data, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack data: %w", err)
	}

	contractAddr := common.HexToAddress(contractAddress)
	result, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.client.CallContract(ctx, ethereum.CallMsg{
			To:   &contractAddr,
			Data: data,
		}, nil)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", method, err)
	}
	return result, nil
}

// Close closes the connection
func (c *ethereumClient) Close() {
	c.client.Close()
}
