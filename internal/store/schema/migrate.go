package schema

import "gorm.io/gorm"

// Models lists every table of the sync database in dependency order
func Models() []interface{} {
	return []interface{}{
		&SyncFlag{},
		&Transaction{},
		&TransferEvent{},
		&Checkpoint{},
		&Token{},
		&TokenAsset{},
		&UnverifiedToken{},
		&WatchedAccount{},
	}
}

// Migrate creates or updates the sync tables
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
