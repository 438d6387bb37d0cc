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

// GetToken retrieves a token descriptor with its assets
func (s *sqlStore) GetToken(ctx context.Context, wallet string, chainID domain.ChainID, address string) (*domain.TokenDescriptor, error) {
	var row schema.Token
	err := s.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("wallet = ? AND chain_id = ? AND address = ?",
			domain.NormalizeAddress(wallet), int64(chainID), domain.NormalizeAddress(address)).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}
	token := toDomainToken(row)
	return &token, nil
}

// ListTokens lists the token descriptors of an account on a chain
func (s *sqlStore) ListTokens(ctx context.Context, wallet string, chainID domain.ChainID) ([]domain.TokenDescriptor, error) {
	var rows []schema.Token
	err := s.db.WithContext(ctx).
		Preload("Assets", func(db *gorm.DB) *gorm.DB { return db.Order("id ASC") }).
		Where("wallet = ? AND chain_id = ?", domain.NormalizeAddress(wallet), int64(chainID)).
		Order("address ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make([]domain.TokenDescriptor, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, toDomainToken(row))
	}
	return tokens, nil
}

// StoreToken upserts a descriptor and replaces its asset list in one transaction
func (s *sqlStore) StoreToken(ctx context.Context, token domain.TokenDescriptor) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := schema.Token{
			Wallet:     domain.NormalizeAddress(token.Wallet),
			ChainID:    int64(token.ChainID),
			Address:    domain.NormalizeAddress(token.Address),
			Name:       token.Name,
			Symbol:     token.Symbol,
			Decimals:   token.Decimals,
			Kind:       string(token.Kind),
			LastTxTime: token.LastTxTime,
		}

		// Upsert the token row
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "wallet"}, {Name: "chain_id"}, {Name: "address"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "symbol", "decimals", "kind", "last_tx_time", "updated_at"}),
		}).Create(&row).Error
		if err != nil {
			return fmt.Errorf("failed to upsert token: %w", err)
		}

		// The returned id is not reliable on conflict across dialects, so read it back
		var stored schema.Token
		err = tx.Select("id").
			Where("wallet = ? AND chain_id = ? AND address = ?", row.Wallet, row.ChainID, row.Address).
			First(&stored).Error
		if err != nil {
			return fmt.Errorf("failed to get token id: %w", err)
		}

		// Replace the asset list
		if err := tx.Where("token_id = ?", stored.ID).Delete(&schema.TokenAsset{}).Error; err != nil {
			return fmt.Errorf("failed to delete token assets: %w", err)
		}
		if len(token.Assets) == 0 {
			return nil
		}

		assets := make([]schema.TokenAsset, 0, len(token.Assets))
		for _, a := range token.Assets {
			assets = append(assets, toSchemaAsset(stored.ID, a))
		}
		if err := tx.CreateInBatches(assets, 500).Error; err != nil {
			return fmt.Errorf("failed to create token assets: %w", err)
		}
		return nil
	})
}

// QueueUnverifiedToken queues a contract for verification
func (s *sqlStore) QueueUnverifiedToken(ctx context.Context, token domain.UnverifiedToken) error {
	row := schema.UnverifiedToken{
		ChainID: int64(token.ChainID),
		Address: domain.NormalizeAddress(token.Address),
		Wallet:  domain.NormalizeAddress(token.Wallet),
	}

	// Use ON CONFLICT DO NOTHING so re-queuing keeps the attempt count
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to queue unverified token: %w", err)
	}
	return nil
}

// ListUnverifiedTokens lists queued contracts of a chain with fewer than maxAttempts attempts
func (s *sqlStore) ListUnverifiedTokens(ctx context.Context, chainID domain.ChainID, maxAttempts int, limit int) ([]domain.UnverifiedToken, error) {
	var rows []schema.UnverifiedToken
	err := s.db.WithContext(ctx).
		Where("chain_id = ? AND attempts < ?", int64(chainID), maxAttempts).
		Order("attempts ASC").
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unverified tokens: %w", err)
	}

	tokens := make([]domain.UnverifiedToken, 0, len(rows))
	for _, row := range rows {
		tokens = append(tokens, domain.UnverifiedToken{
			ChainID:  domain.ChainID(row.ChainID),
			Address:  row.Address,
			Wallet:   row.Wallet,
			Attempts: row.Attempts,
		})
	}
	return tokens, nil
}

// DeleteUnverifiedToken removes a contract from the queue
func (s *sqlStore) DeleteUnverifiedToken(ctx context.Context, chainID domain.ChainID, address string) error {
	err := s.db.WithContext(ctx).
		Where("chain_id = ? AND address = ?", int64(chainID), domain.NormalizeAddress(address)).
		Delete(&schema.UnverifiedToken{}).Error
	if err != nil {
		return fmt.Errorf("failed to delete unverified token: %w", err)
	}
	return nil
}

// IncrementUnverifiedAttempts records a failed verification attempt
func (s *sqlStore) IncrementUnverifiedAttempts(ctx context.Context, chainID domain.ChainID, address string) error {
	err := s.db.WithContext(ctx).
		Model(&schema.UnverifiedToken{}).
		Where("chain_id = ? AND address = ?", int64(chainID), domain.NormalizeAddress(address)).
		Update("attempts", gorm.Expr("attempts + 1")).Error
	if err != nil {
		return fmt.Errorf("failed to increment unverified token attempts: %w", err)
	}
	return nil
}
