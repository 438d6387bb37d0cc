package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// RawTransaction is a native transaction record as reported by an explorer API.
// Secondary providers convert their records into this shape.
type RawTransaction struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	Nonce           string `json:"nonce"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	Gas             string `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
	IsError         string `json:"isError"`
	TxReceiptStatus string `json:"txreceipt_status"`
	Input           string `json:"input"`
	ContractAddress string `json:"contractAddress"`
}

// Block parses the record's block number
func (r *RawTransaction) Block() (uint64, error) {
	return parseUint(r.BlockNumber)
}

// ToTransaction converts the record into a cached transaction for the wallet
func (r *RawTransaction) ToTransaction(wallet string, chainID ChainID) (*Transaction, error) {
	if r.Hash == "" {
		return nil, fmt.Errorf("missing transaction hash")
	}
	block, err := r.Block()
	if err != nil {
		return nil, fmt.Errorf("invalid block number %q: %w", r.BlockNumber, err)
	}
	timestamp, err := strconv.ParseInt(strings.TrimSpace(r.TimeStamp), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid timestamp %q: %w", r.TimeStamp, err)
	}
	nonce, _ := parseUint(r.Nonce)

	status := TransactionStatusSuccess
	if r.IsError == "1" || r.TxReceiptStatus == "0" {
		status = TransactionStatusFailed
	}

	return &Transaction{
		Hash:            strings.ToLower(r.Hash),
		ChainID:         chainID,
		Wallet:          NormalizeAddress(wallet),
		BlockNumber:     block,
		Timestamp:       timestamp,
		Nonce:           nonce,
		From:            NormalizeAddress(r.From),
		To:              NormalizeAddress(r.To),
		Value:           r.Value,
		Input:           r.Input,
		Gas:             r.Gas,
		GasPrice:        r.GasPrice,
		GasUsed:         r.GasUsed,
		ContractAddress: NormalizeAddress(r.ContractAddress),
		Status:          status,
	}, nil
}

// RawTransferEvent is a token transfer log line as reported by an explorer API
type RawTransferEvent struct {
	BlockNumber     string `json:"blockNumber"`
	TimeStamp       string `json:"timeStamp"`
	Hash            string `json:"hash"`
	Nonce           string `json:"nonce"`
	From            string `json:"from"`
	To              string `json:"to"`
	Value           string `json:"value"`
	ContractAddress string `json:"contractAddress"`
	TokenName       string `json:"tokenName"`
	TokenSymbol     string `json:"tokenSymbol"`
	TokenDecimal    string `json:"tokenDecimal"`
	TokenID         string `json:"tokenID"`
	Gas             string `json:"gas"`
	GasPrice        string `json:"gasPrice"`
	GasUsed         string `json:"gasUsed"`
}

// Block parses the event's block number
func (e *RawTransferEvent) Block() (uint64, error) {
	return parseUint(e.BlockNumber)
}

// Decimals returns the reported token decimals, or false when the field is empty or does not start with a digit
func (e *RawTransferEvent) Decimals() (int32, bool) {
	d := strings.TrimSpace(e.TokenDecimal)
	if d == "" || d[0] < '0' || d[0] > '9' {
		return 0, false
	}
	v, err := strconv.ParseInt(d, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(v), true
}

// ToTransaction builds the transaction skeleton the event belongs to
func (e *RawTransferEvent) ToTransaction(wallet string, chainID ChainID, nft bool) (*Transaction, error) {
	value := e.Value
	if nft {
		value = "0"
	}
	raw := RawTransaction{
		BlockNumber: e.BlockNumber,
		TimeStamp:   e.TimeStamp,
		Hash:        e.Hash,
		Nonce:       e.Nonce,
		From:        e.From,
		To:          e.ContractAddress,
		Value:       value,
		Gas:         e.Gas,
		GasPrice:    e.GasPrice,
		GasUsed:     e.GasUsed,
	}
	return raw.ToTransaction(wallet, chainID)
}

func parseUint(s string) (uint64, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "0x") {
		return strconv.ParseUint(s[2:], 16, 64)
	}
	return strconv.ParseUint(s, 10, 64)
}
