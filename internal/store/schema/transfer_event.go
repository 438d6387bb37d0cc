package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransferEvent represents the transfer_events table - one token transfer log line seen by an account
type TransferEvent struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Wallet, ChainID, Hash, TokenAddress, EventName and Detail form the dedup key
	Wallet       string `gorm:"column:wallet;not null;type:text;uniqueIndex:idx_transfer_events_dedup,priority:1"`
	ChainID      int64  `gorm:"column:chain_id;not null;uniqueIndex:idx_transfer_events_dedup,priority:2"`
	Hash         string `gorm:"column:hash;not null;type:text;uniqueIndex:idx_transfer_events_dedup,priority:3"`
	TokenAddress string `gorm:"column:token_address;not null;type:text;uniqueIndex:idx_transfer_events_dedup,priority:4"`
	EventName    string `gorm:"column:event_name;not null;type:text;uniqueIndex:idx_transfer_events_dedup,priority:5"`
	// Detail is the encoded from/to/amount triple
	Detail      string          `gorm:"column:detail;not null;type:text;uniqueIndex:idx_transfer_events_dedup,priority:6"`
	BlockNumber uint64          `gorm:"column:block_number;not null;type:bigint"`
	Timestamp   int64           `gorm:"column:block_time;not null"`
	Amount      decimal.Decimal `gorm:"column:amount;type:numeric"`
	CreatedAt   time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the TransferEvent model
func (TransferEvent) TableName() string {
	return "transfer_events"
}
