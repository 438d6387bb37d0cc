package schema

import "time"

// SyncFlag is a small keyed value kept next to the sync data, such as the reset marker of an account
type SyncFlag struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SyncFlag) TableName() string {
	return "sync_flags"
}
