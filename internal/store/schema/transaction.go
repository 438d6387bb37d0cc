package schema

import "time"

// Transaction represents the transactions table - the local cache of an account's native transactions
type Transaction struct {
	// Wallet is the account the transaction was synced for
	Wallet string `gorm:"column:wallet;primaryKey;type:text;index:idx_transactions_wallet_chain_ts,priority:1"`
	// ChainID is the EVM chain id
	ChainID int64 `gorm:"column:chain_id;primaryKey;index:idx_transactions_wallet_chain_ts,priority:2"`
	// Hash is the lowercase transaction hash
	Hash string `gorm:"column:hash;primaryKey;type:text"`
	// BlockNumber is the block the transaction was mined in
	BlockNumber uint64 `gorm:"column:block_number;not null;type:bigint"`
	// Timestamp is the block time in unix seconds
	Timestamp int64  `gorm:"column:block_time;not null;index:idx_transactions_wallet_chain_ts,priority:3"`
	Nonce     uint64 `gorm:"column:nonce;not null;default:0;type:bigint"`
	From      string `gorm:"column:from_address;type:text"`
	To        string `gorm:"column:to_address;type:text"`
	Value     string `gorm:"column:value;type:text"`
	// Input is the call data; empty or a selector-only payload means the transaction still needs hydration
	Input           string `gorm:"column:input;type:text"`
	Gas             string `gorm:"column:gas;type:text"`
	GasPrice        string `gorm:"column:gas_price;type:text"`
	GasUsed         string `gorm:"column:gas_used;type:text"`
	ContractAddress string `gorm:"column:contract_address;type:text"`
	Status          string `gorm:"column:status;type:text"`
	// HydrationAttempts counts failed rpc lookups of a skeleton
	HydrationAttempts int       `gorm:"column:hydration_attempts;not null;default:0"`
	CreatedAt         time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Transaction model
func (Transaction) TableName() string {
	return "transactions"
}
