package schema

import "time"

// WatchedAccount represents the watched_accounts table - accounts the scheduler keeps in sync
type WatchedAccount struct {
	// Wallet is the lowercase account address
	Wallet string `gorm:"column:wallet;primaryKey;type:text"`
	// ChainID is the EVM chain id
	ChainID int64 `gorm:"column:chain_id;primaryKey"`
	// Watching indicates whether this account is currently being scheduled
	Watching bool `gorm:"column:watching;not null;default:true"`
	// LastTriggeredAt records when the scheduler last started a sync
	LastTriggeredAt *time.Time `gorm:"column:last_triggered_at;index"`
	// LastSyncedAt records when a sync of this account last completed
	LastSyncedAt *time.Time `gorm:"column:last_synced_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the WatchedAccount model
func (WatchedAccount) TableName() string {
	return "watched_accounts"
}
