package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/store/schema"
)

type sqlStore struct {
	db *gorm.DB
}

// NewStore creates a new store backed by a gorm connection (postgres or sqlite)
func NewStore(db *gorm.DB) Store {
	return &sqlStore{db: db}
}

// =============================================================================
// Transactions
// =============================================================================

// UpsertTransaction inserts or replaces a transaction keyed by (wallet, chain, hash)
func (s *sqlStore) UpsertTransaction(ctx context.Context, tx domain.Transaction) error {
	row := toSchemaTransaction(tx)
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "wallet"}, {Name: "chain_id"}, {Name: "hash"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"block_number", "block_time", "nonce", "from_address", "to_address", "value",
				"input", "gas", "gas_price", "gas_used", "contract_address", "status", "updated_at",
			}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to upsert transaction: %w", err)
	}
	return nil
}

// UpsertTransactionSkeleton stores a transfer-derived transaction unless a fully hydrated one is cached
func (s *sqlStore) UpsertTransactionSkeleton(ctx context.Context, tx domain.Transaction) (bool, error) {
	written := false
	err := s.db.WithContext(ctx).Transaction(func(dbTx *gorm.DB) error {
		var existing schema.Transaction
		err := dbTx.Where("wallet = ? AND chain_id = ? AND hash = ?",
			domain.NormalizeAddress(tx.Wallet), int64(tx.ChainID), tx.Hash).
			First(&existing).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get transaction: %w", err)
		}
		row := toSchemaTransaction(tx)
		if err == nil {
			cached := toDomainTransaction(existing)
			if cached.HasFullInput() {
				return nil
			}
			row.HydrationAttempts = existing.HydrationAttempts
		}

		if err := dbTx.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to save transaction: %w", err)
		}
		written = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return written, nil
}

// GetTransaction retrieves a cached transaction
func (s *sqlStore) GetTransaction(ctx context.Context, wallet string, chainID domain.ChainID, hash string) (*domain.Transaction, error) {
	var row schema.Transaction
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ? AND hash = ?", domain.NormalizeAddress(wallet), int64(chainID), hash).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	tx := toDomainTransaction(row)
	return &tx, nil
}

// ExistingTransactionHashes returns the subset of hashes already cached
func (s *sqlStore) ExistingTransactionHashes(ctx context.Context, wallet string, chainID domain.ChainID, hashes []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(hashes) == 0 {
		return existing, nil
	}

	var found []string
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("wallet = ? AND chain_id = ? AND hash IN ?", domain.NormalizeAddress(wallet), int64(chainID), hashes).
		Pluck("hash", &found).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get existing transaction hashes: %w", err)
	}

	for _, h := range found {
		existing[h] = true
	}
	return existing, nil
}

// GetTransactionsOlderThan returns cached transactions with timestamp < before, newest first
func (s *sqlStore) GetTransactionsOlderThan(ctx context.Context, wallet string, chainID domain.ChainID, before int64, limit int) ([]domain.TransactionMeta, error) {
	var rows []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ? AND block_time < ?", domain.NormalizeAddress(wallet), int64(chainID), before).
		Order("block_time DESC").
		Order("block_number DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	metas := make([]domain.TransactionMeta, 0, len(rows))
	for _, row := range rows {
		tx := toDomainTransaction(row)
		metas = append(metas, tx.Meta())
	}
	return metas, nil
}

// GetOldestTransactionBlock returns the block of the cached transaction with the smallest timestamp
func (s *sqlStore) GetOldestTransactionBlock(ctx context.Context, wallet string, chainID domain.ChainID) (uint64, error) {
	var row schema.Transaction
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Order("block_time ASC").
		Order("block_number ASC").
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get oldest transaction: %w", err)
	}
	return row.BlockNumber, nil
}

// ListTransactionsNeedingHydration returns cached event skeletons that carry no input payload yet
func (s *sqlStore) ListTransactionsNeedingHydration(ctx context.Context, wallet string, chainID domain.ChainID, maxAttempts int, limit int) ([]domain.Transaction, error) {
	var rows []schema.Transaction
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Where("input IS NULL OR input = ''").
		Where("hydration_attempts < ?", maxAttempts).
		Order("hydration_attempts ASC").
		Order("block_number DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions needing hydration: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		txs = append(txs, toDomainTransaction(row))
	}
	return txs, nil
}

// IncrementHydrationAttempts records a failed hydration attempt of a cached transaction
func (s *sqlStore) IncrementHydrationAttempts(ctx context.Context, wallet string, chainID domain.ChainID, hash string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("wallet = ? AND chain_id = ? AND hash = ?", domain.NormalizeAddress(wallet), int64(chainID), hash).
		Update("hydration_attempts", gorm.Expr("hydration_attempts + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment hydration attempts: %w", err)
	}
	return nil
}

// CountTransactions counts the cached transactions of an account
func (s *sqlStore) CountTransactions(ctx context.Context, wallet string, chainID domain.ChainID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.Transaction{}).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return count, nil
}

// DeleteChainTransactions purges every cached transaction of an account on a chain
func (s *sqlStore) DeleteChainTransactions(ctx context.Context, wallet string, chainID domain.ChainID) error {
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Delete(&schema.Transaction{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

// =============================================================================
// Transfer events
// =============================================================================

// InsertTransferEvent inserts an event unless its dedup key already exists
func (s *sqlStore) InsertTransferEvent(ctx context.Context, event domain.TransferEvent) (bool, error) {
	row := toSchemaTransferEvent(event)
	result := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert transfer event: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

// TransferEventExists checks whether a row with the event's dedup key exists
func (s *sqlStore) TransferEventExists(ctx context.Context, event domain.TransferEvent) (bool, error) {
	row := toSchemaTransferEvent(event)
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.TransferEvent{}).
		Where("wallet = ? AND chain_id = ? AND hash = ? AND token_address = ? AND event_name = ? AND detail = ?",
			row.Wallet, row.ChainID, row.Hash, row.TokenAddress, row.EventName, row.Detail).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check transfer event: %w", err)
	}
	return count > 0, nil
}

// CountTransferEvents counts the transfer rows of an account on a chain
func (s *sqlStore) CountTransferEvents(ctx context.Context, wallet string, chainID domain.ChainID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&schema.TransferEvent{}).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count transfer events: %w", err)
	}
	return count, nil
}

// =============================================================================
// Sync flags
// =============================================================================

func putSyncFlag(db *gorm.DB, key, value string) error {
	return db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&schema.SyncFlag{Key: key, Value: value}).Error
}

func getSyncFlag(db *gorm.DB, key string) (string, error) {
	var flag schema.SyncFlag
	err := db.Where("key = ?", key).Take(&flag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	return flag.Value, err
}

func (s *sqlStore) SetKeyValue(ctx context.Context, key string, value string) error {
	if err := putSyncFlag(s.db.WithContext(ctx), key, value); err != nil {
		return fmt.Errorf("failed to set sync flag %s: %w", key, err)
	}
	return nil
}

func (s *sqlStore) GetKeyValue(ctx context.Context, key string) (string, error) {
	value, err := getSyncFlag(s.db.WithContext(ctx), key)
	if err != nil {
		return "", fmt.Errorf("failed to get sync flag %s: %w", key, err)
	}
	return value, nil
}
