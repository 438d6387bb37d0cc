package store

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/store/schema"
)

// EnsureWatchedAccount registers an account, re-enabling it if it was unwatched
func (s *sqlStore) EnsureWatchedAccount(ctx context.Context, wallet string, chainID domain.ChainID) error {
	row := schema.WatchedAccount{
		Wallet:   domain.NormalizeAddress(wallet),
		ChainID:  int64(chainID),
		Watching: true,
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet"}, {Name: "chain_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"watching", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to ensure watched account exists: %w", err)
	}
	return nil
}

// ListWatchedAccountsDue lists watched accounts never triggered or last triggered before the given time
func (s *sqlStore) ListWatchedAccountsDue(ctx context.Context, triggeredBefore time.Time, limit int) ([]domain.WatchedAccount, error) {
	var rows []schema.WatchedAccount
	err := s.db.WithContext(ctx).
		Where("watching = ?", true).
		Where("last_triggered_at IS NULL OR last_triggered_at < ?", triggeredBefore.UTC()).
		Order("last_triggered_at IS NULL DESC").
		Order("last_triggered_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list watched accounts: %w", err)
	}

	accounts := make([]domain.WatchedAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, domain.WatchedAccount{
			Wallet:          row.Wallet,
			ChainID:         domain.ChainID(row.ChainID),
			LastTriggeredAt: row.LastTriggeredAt,
			LastSyncedAt:    row.LastSyncedAt,
		})
	}
	return accounts, nil
}

// MarkWatchedAccountsTriggered stamps last_triggered_at
func (s *sqlStore) MarkWatchedAccountsTriggered(ctx context.Context, accounts []domain.SyncRequest, at time.Time) error {
	if len(accounts) == 0 {
		return nil
	}
	at = at.UTC()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, a := range accounts {
			err := tx.Model(&schema.WatchedAccount{}).
				Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(a.Wallet), int64(a.ChainID)).
				Update("last_triggered_at", at).Error
			if err != nil {
				return fmt.Errorf("failed to mark watched account triggered: %w", err)
			}
		}
		return nil
	})
}

// MarkWatchedAccountSynced stamps last_synced_at
func (s *sqlStore) MarkWatchedAccountSynced(ctx context.Context, wallet string, chainID domain.ChainID, at time.Time) error {
	at = at.UTC()
	err := s.db.WithContext(ctx).
		Model(&schema.WatchedAccount{}).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Update("last_synced_at", at).Error
	if err != nil {
		return fmt.Errorf("failed to mark watched account synced: %w", err)
	}
	return nil
}
