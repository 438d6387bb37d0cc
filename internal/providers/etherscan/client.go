package etherscan

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

const PROVIDER_NAME = "etherscan"

const (
	// emptyBodyMaxLength bounds the size of a body that may be read as an empty result
	emptyBodyMaxLength = 80
	emptyResultMessage = "No transactions found"
)

// ErrUnexpectedResult is returned when the explorer answers with an error string instead of a record list
var ErrUnexpectedResult = errors.New("unexpected explorer result")

// TransferAction is the explorer action listing token transfer events
type TransferAction string

const (
	ActionTokenTx    TransferAction = "tokentx"
	ActionTokenNFTTx TransferAction = "tokennfttx"
)

// Response is the envelope of every explorer account endpoint
type Response struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
}

// Client defines the interface for etherscan-compatible explorer operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/etherscan_client.go -package=mocks -mock_names=Client=MockEtherscanClient
type Client interface {
	// ListTransactions fetches one page of native transactions of an address.
	// Ascending pages start at boundary; descending pages end at boundary.
	ListTransactions(ctx context.Context, network domain.Network, address string, boundary uint64, ascending bool, page, offset int) ([]domain.RawTransaction, error)

	// ListTransferEvents fetches one ascending batch of token transfer events starting at startBlock
	ListTransferEvents(ctx context.Context, network domain.Network, address string, action TransferAction, startBlock uint64, offset int) ([]domain.RawTransferEvent, error)
}

// EtherscanClient implements Client over the explorer's HTTP API
type EtherscanClient struct {
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
}

// NewClient creates a new etherscan client
func NewClient(httpClient adapter.HTTPClient, rateLimitProxy ratelimit.Proxy, json adapter.JSON) Client {
	return &EtherscanClient{
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
	}
}

// TxListURL builds the txlist url for one page
func TxListURL(network domain.Network, address string, boundary uint64, ascending bool, page, offset int) string {
	startBlock, endBlock := boundary, domain.ASCENDING_END_BLOCK
	sort := "asc"
	if !ascending {
		startBlock, endBlock = 0, boundary
		sort = "desc"
	}

	url := fmt.Sprintf("%s/api?module=account&action=txlist&address=%s&startblock=%d&endblock=%d&sort=%s&page=%d&offset=%d",
		strings.TrimSuffix(network.ExplorerURL, "/"),
		address,
		startBlock,
		endBlock,
		sort,
		page,
		offset,
	)
	return withAPIKey(url, network.APIKey)
}

// TransferListURL builds the url of a token transfer batch
func TransferListURL(network domain.Network, address string, action TransferAction, startBlock uint64, offset int) string {
	url := fmt.Sprintf("%s/api?module=account&action=%s&startblock=%d&address=%s&page=1&offset=%d&sort=asc",
		strings.TrimSuffix(network.ExplorerURL, "/"),
		action,
		startBlock,
		address,
		offset,
	)
	return withAPIKey(url, network.APIKey)
}

func withAPIKey(url, apiKey string) string {
	if apiKey == "" {
		return url
	}
	return url + "&apikey=" + apiKey
}

// ListTransactions fetches one page of native transactions of an address
func (c *EtherscanClient) ListTransactions(ctx context.Context, network domain.Network, address string, boundary uint64, ascending bool, page, offset int) ([]domain.RawTransaction, error) {
	body, err := c.get(ctx, TxListURL(network, address, boundary, ascending, page, offset))
	if err != nil {
		return nil, err
	}

	var txs []domain.RawTransaction
	if err := c.decodeResult(body, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

// ListTransferEvents fetches one ascending batch of token transfer events
func (c *EtherscanClient) ListTransferEvents(ctx context.Context, network domain.Network, address string, action TransferAction, startBlock uint64, offset int) ([]domain.RawTransferEvent, error) {
	body, err := c.get(ctx, TransferListURL(network, address, action, startBlock, offset))
	if err != nil {
		return nil, err
	}

	var events []domain.RawTransferEvent
	if err := c.decodeResult(body, &events); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *EtherscanClient) get(ctx context.Context, url string) ([]byte, error) {
	body, err := ratelimit.Request(ctx, c.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return c.httpClient.GetBytes(ctx, url)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to call explorer API: %w", err)
	}
	return body, nil
}

// decodeResult unmarshals the result array of a response body into out.
// A short "No transactions found" body leaves out empty.
func (c *EtherscanClient) decodeResult(body []byte, out interface{}) error {
	if IsEmptyBody(body) {
		return nil
	}

	var resp Response
	if err := c.json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("failed to unmarshal explorer response: %w", err)
	}

	result := bytes.TrimSpace(resp.Result)
	if len(result) == 0 || result[0] != '[' {
		return fmt.Errorf("%w: %s %s", ErrUnexpectedResult, resp.Message, string(result))
	}

	if err := c.json.Unmarshal(result, out); err != nil {
		return fmt.Errorf("failed to unmarshal explorer records: %w", err)
	}
	return nil
}

// IsEmptyBody reports whether a response body is the explorer's short empty-result answer
func IsEmptyBody(body []byte) bool {
	return len(body) < emptyBodyMaxLength && bytes.Contains(body, []byte(emptyResultMessage))
}
