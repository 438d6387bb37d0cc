package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TokenAmountOne is the amount recorded for a single non-fungible transfer
var TokenAmountOne = decimal.NewFromInt(1)

const (
	EventNameSent     = "sent"
	EventNameReceived = "received"
)

// TransferEvent is a stored token transfer row.
// (Wallet, ChainID, Hash, TokenAddress, EventName, Detail) is its dedup key.
type TransferEvent struct {
	Wallet       string          `json:"wallet"`
	ChainID      ChainID         `json:"chain_id"`
	Hash         string          `json:"hash"`
	TokenAddress string          `json:"token_address"`
	EventName    string          `json:"event_name"`
	Detail       string          `json:"detail"`
	BlockNumber  uint64          `json:"block_number"`
	Timestamp    int64           `json:"timestamp"`
	Amount       decimal.Decimal `json:"amount"`
}

// TransferEventName names the event from the wallet's point of view
func TransferEventName(wallet, from string) string {
	if SameAddress(wallet, from) {
		return EventNameSent
	}
	return EventNameReceived
}

// TransferDetail encodes the from/to/amount triple the way it is keyed in storage.
// NFT transfers and transfers without a reported value are encoded with amount 1.
func TransferDetail(from, to, value string, nft bool) string {
	amount := value
	if nft || value == "" {
		amount = "1"
	}
	return fmt.Sprintf("from,address,%s,to,address,%s,amount,uint256,%s", from, to, amount)
}

// TokenAmount scales a raw integer token value by its decimals
func TokenAmount(value string, decimals int32) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}
	raw, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid token value %q: %w", value, err)
	}
	return raw.Shift(-decimals), nil
}
