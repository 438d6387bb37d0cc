package schema

import "time"

// Checkpoint represents the checkpoints table - sync progress of one (wallet, chain, scope, kind)
type Checkpoint struct {
	Wallet  string `gorm:"column:wallet;primaryKey;type:text"`
	ChainID int64  `gorm:"column:chain_id;primaryKey"`
	// Scope is the wallet for account checkpoints and a contract address for per-contract read markers
	Scope string `gorm:"column:scope;primaryKey;type:text"`
	// Kind is one of native-tx, erc20-events, nft-events
	Kind string `gorm:"column:kind;primaryKey;type:text"`
	// EarliestBlock is the block below which no history exists, 0 while unknown
	EarliestBlock uint64 `gorm:"column:earliest_block;not null;default:0;type:bigint"`
	// LatestBlock is the highest block read so far
	LatestBlock uint64     `gorm:"column:latest_block;not null;default:0;type:bigint"`
	LastSyncAt  *time.Time `gorm:"column:last_sync_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the Checkpoint model
func (Checkpoint) TableName() string {
	return "checkpoints"
}
