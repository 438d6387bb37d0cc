package covalent

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

const PROVIDER_NAME = "covalent"

// Transaction is an item of the transactions_v2 endpoint
type Transaction struct {
	BlockSignedAt    time.Time `json:"block_signed_at"`
	BlockHeight      uint64    `json:"block_height"`
	TxHash           string    `json:"tx_hash"`
	Successful       bool      `json:"successful"`
	FromAddress      string    `json:"from_address"`
	ToAddress        *string   `json:"to_address"`
	Value            string    `json:"value"`
	GasOffered       uint64    `json:"gas_offered"`
	GasSpent         uint64    `json:"gas_spent"`
	GasPrice         uint64    `json:"gas_price"`
	FeesPaid         string    `json:"fees_paid"`
	ContractAddress  *string   `json:"contract_address,omitempty"`
	InputData        *string   `json:"input,omitempty"`
	TransactionNonce *uint64   `json:"nonce,omitempty"`
}

// Response is the envelope of the transactions_v2 endpoint
type Response struct {
	Data struct {
		Address string        `json:"address"`
		Items   []Transaction `json:"items"`
	} `json:"data"`
	Error        bool    `json:"error"`
	ErrorMessage *string `json:"error_message"`
	ErrorCode    *int    `json:"error_code"`
}

// Client defines the interface for covalent operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/covalent_client.go -package=mocks -mock_names=Client=MockCovalentClient
type Client interface {
	// ListTransactions fetches one page of native transactions converted into the explorer record shape.
	// page is one-based.
	ListTransactions(ctx context.Context, network domain.Network, address string, ascending bool, page, pageSize int) ([]domain.RawTransaction, error)
}

// CovalentClient implements Client
type CovalentClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
}

// NewClient creates a new covalent client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, json adapter.JSON) Client {
	return &CovalentClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
	}
}

// TransactionsURL builds the transactions_v2 url for one page. The API's page number is zero-based.
func TransactionsURL(network domain.Network, address string, ascending bool, page, pageSize int) string {
	url := fmt.Sprintf("%s/%d/address/%s/transactions_v2/?block-signed-at-asc=%t&page-number=%d&page-size=%d",
		strings.TrimSuffix(network.ExplorerURL, "/"),
		network.ChainID,
		strings.ToLower(address),
		ascending,
		page-1,
		pageSize,
	)
	if network.APIKey != "" {
		url += "&key=" + network.APIKey
	}
	return url
}

// ListTransactions fetches one page of native transactions
func (c *CovalentClient) ListTransactions(ctx context.Context, network domain.Network, address string, ascending bool, page, pageSize int) ([]domain.RawTransaction, error) {
	url := TransactionsURL(network, address, ascending, page, pageSize)

	body, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call covalent API: %w", err)
	}

	if etherscan.IsEmptyBody(body) {
		return nil, nil
	}

	var resp Response
	if err := c.json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to unmarshal covalent response: %w", err)
	}
	if resp.Error {
		msg := ""
		if resp.ErrorMessage != nil {
			msg = *resp.ErrorMessage
		}
		return nil, fmt.Errorf("%w: %s", etherscan.ErrUnexpectedResult, msg)
	}

	txs := make([]domain.RawTransaction, 0, len(resp.Data.Items))
	for _, item := range resp.Data.Items {
		txs = append(txs, item.ToRawTransaction())
	}
	return txs, nil
}

// ToRawTransaction converts the item into the explorer record shape
func (t Transaction) ToRawTransaction() domain.RawTransaction {
	raw := domain.RawTransaction{
		BlockNumber: strconv.FormatUint(t.BlockHeight, 10),
		TimeStamp:   strconv.FormatInt(t.BlockSignedAt.Unix(), 10),
		Hash:        t.TxHash,
		From:        t.FromAddress,
		Value:       t.Value,
		Gas:         strconv.FormatUint(t.GasOffered, 10),
		GasPrice:    strconv.FormatUint(t.GasPrice, 10),
		GasUsed:     strconv.FormatUint(t.GasSpent, 10),
		IsError:     "0",
		Input:       "0x",
	}
	if !t.Successful {
		raw.IsError = "1"
	}
	if t.ToAddress != nil {
		raw.To = *t.ToAddress
	}
	if t.ContractAddress != nil {
		raw.ContractAddress = *t.ContractAddress
	}
	if t.InputData != nil && *t.InputData != "" {
		raw.Input = *t.InputData
	}
	if t.TransactionNonce != nil {
		raw.Nonce = strconv.FormatUint(*t.TransactionNonce, 10)
	}
	return raw
}
