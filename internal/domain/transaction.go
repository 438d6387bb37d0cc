package domain

// TransactionStatus is the execution result of a transaction
type TransactionStatus string

const (
	TransactionStatusSuccess TransactionStatus = "success"
	TransactionStatusFailed  TransactionStatus = "failed"
)

// Transaction is a cached native transaction of an account, unique per (wallet, chain, hash)
type Transaction struct {
	Hash            string            `json:"hash"`
	ChainID         ChainID           `json:"chain_id"`
	Wallet          string            `json:"wallet"`
	BlockNumber     uint64            `json:"block_number"`
	Timestamp       int64             `json:"timestamp"`
	Nonce           uint64            `json:"nonce"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	Value           string            `json:"value"`
	Input           string            `json:"input"`
	Gas             string            `json:"gas"`
	GasPrice        string            `json:"gas_price"`
	GasUsed         string            `json:"gas_used"`
	ContractAddress string            `json:"contract_address,omitempty"`
	Status          TransactionStatus `json:"status"`
}

// HasFullInput reports whether the transaction carries a real call payload rather than an event skeleton
func (t *Transaction) HasFullInput() bool {
	return len(t.Input) > MIN_FUNCTION_INPUT_LENGTH
}

// Meta returns the summary view of the transaction
func (t *Transaction) Meta() TransactionMeta {
	return TransactionMeta{
		Hash:        t.Hash,
		Timestamp:   t.Timestamp,
		To:          t.To,
		ChainID:     t.ChainID,
		BlockNumber: t.BlockNumber,
	}
}

// TransactionMeta is the summary returned by older-history reads
type TransactionMeta struct {
	Hash        string  `json:"hash"`
	Timestamp   int64   `json:"timestamp"`
	To          string  `json:"to"`
	ChainID     ChainID `json:"chain_id"`
	BlockNumber uint64  `json:"block_number"`
}
