package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/store/schema"
)

// ResetMarkerKey returns the sync flag key holding an account's reset marker version
func ResetMarkerKey(wallet string, chainID domain.ChainID) string {
	return fmt.Sprintf("%s%s:%d", domain.RESET_MARKER_KEY_PREFIX, domain.NormalizeAddress(wallet), chainID)
}

func checkpointWhere(db *gorm.DB, key domain.CheckpointKey) *gorm.DB {
	return db.Where("wallet = ? AND chain_id = ? AND scope = ? AND kind = ?",
		domain.NormalizeAddress(key.Wallet), int64(key.ChainID), domain.NormalizeAddress(key.Scope), string(key.Kind))
}

// GetCheckpoint retrieves a checkpoint, nil when it was never written
func (s *sqlStore) GetCheckpoint(ctx context.Context, key domain.CheckpointKey) (*domain.Checkpoint, error) {
	var row schema.Checkpoint
	err := checkpointWhere(s.db.WithContext(ctx), key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	cp := toDomainCheckpoint(row)
	return &cp, nil
}

// ListCheckpoints lists every checkpoint of an account on a chain
func (s *sqlStore) ListCheckpoints(ctx context.Context, wallet string, chainID domain.ChainID) ([]domain.Checkpoint, error) {
	var rows []schema.Checkpoint
	err := s.db.WithContext(ctx).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Order("kind ASC").
		Order("scope ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	checkpoints := make([]domain.Checkpoint, 0, len(rows))
	for _, row := range rows {
		checkpoints = append(checkpoints, toDomainCheckpoint(row))
	}
	return checkpoints, nil
}

// SetLatestBlock advances latest_block, creating the checkpoint lazily.
// A value lower than the stored one only refreshes last_sync_at.
func (s *sqlStore) SetLatestBlock(ctx context.Context, key domain.CheckpointKey, block uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()
		var row schema.Checkpoint
		err := checkpointWhere(tx.Clauses(clause.Locking{Strength: "UPDATE"}), key).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get checkpoint: %w", err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = newCheckpointRow(key)
		}

		if block > row.LatestBlock {
			row.LatestBlock = block
		}
		row.LastSyncAt = &now

		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to set latest block: %w", err)
		}
		return nil
	})
}

// SetEarliestBlock records the block below which no history exists
func (s *sqlStore) SetEarliestBlock(ctx context.Context, key domain.CheckpointKey, block uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row schema.Checkpoint
		err := checkpointWhere(tx, key).First(&row).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get checkpoint: %w", err)
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			row = newCheckpointRow(key)
		}

		row.EarliestBlock = block
		if err := tx.Save(&row).Error; err != nil {
			return fmt.Errorf("failed to set earliest block: %w", err)
		}
		return nil
	})
}

// ResetCheckpoint zeroes both bounds of a checkpoint
func (s *sqlStore) ResetCheckpoint(ctx context.Context, key domain.CheckpointKey) error {
	err := checkpointWhere(s.db.WithContext(ctx).Model(&schema.Checkpoint{}), key).
		Updates(map[string]interface{}{
			"earliest_block": 0,
			"latest_block":   0,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to reset checkpoint: %w", err)
	}
	return nil
}

// GetSyncState reports UNSYNCED when no checkpoint exists, RESET_PENDING when the stored
// marker differs from version and SYNCED otherwise
func (s *sqlStore) GetSyncState(ctx context.Context, wallet string, chainID domain.ChainID, version int) (domain.SyncState, error) {
	return syncState(s.db.WithContext(ctx), wallet, chainID, version)
}

func syncState(db *gorm.DB, wallet string, chainID domain.ChainID, version int) (domain.SyncState, error) {
	var count int64
	err := db.Model(&schema.Checkpoint{}).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Count(&count).Error
	if err != nil {
		return "", fmt.Errorf("failed to count checkpoints: %w", err)
	}
	if count == 0 {
		return domain.SyncStateUnsynced, nil
	}

	marker, err := getSyncFlag(db, ResetMarkerKey(wallet, chainID))
	if err != nil {
		return "", fmt.Errorf("failed to get reset marker: %w", err)
	}
	if marker != strconv.Itoa(version) {
		return domain.SyncStateResetPending, nil
	}
	return domain.SyncStateSynced, nil
}

// ApplyResetMarker moves a RESET_PENDING account to SYNCED: every checkpoint is zeroed, every
// transfer row purged and the marker stamped, atomically. An UNSYNCED account only gets the marker.
func (s *sqlStore) ApplyResetMarker(ctx context.Context, wallet string, chainID domain.ChainID, version int) (bool, error) {
	reset := false
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		state, err := syncState(tx, wallet, chainID, version)
		if err != nil {
			return err
		}

		switch state {
		case domain.SyncStateSynced:
			return nil
		case domain.SyncStateResetPending:
			err := tx.Model(&schema.Checkpoint{}).
				Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
				Updates(map[string]interface{}{
					"earliest_block": 0,
					"latest_block":   0,
				}).Error
			if err != nil {
				return fmt.Errorf("failed to zero checkpoints: %w", err)
			}

			err = tx.Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
				Delete(&schema.TransferEvent{}).Error
			if err != nil {
				return fmt.Errorf("failed to purge transfer events: %w", err)
			}
			reset = true
		}

		if err := putSyncFlag(tx, ResetMarkerKey(wallet, chainID), strconv.Itoa(version)); err != nil {
			return fmt.Errorf("failed to stamp reset marker: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	return reset, nil
}

func newCheckpointRow(key domain.CheckpointKey) schema.Checkpoint {
	return schema.Checkpoint{
		Wallet:  domain.NormalizeAddress(key.Wallet),
		ChainID: int64(key.ChainID),
		Scope:   domain.NormalizeAddress(key.Scope),
		Kind:    string(key.Kind),
	}
}
