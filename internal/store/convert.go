package store

import (
	"encoding/json"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/store/schema"
)

func toSchemaTransaction(tx domain.Transaction) schema.Transaction {
	return schema.Transaction{
		Wallet:          domain.NormalizeAddress(tx.Wallet),
		ChainID:         int64(tx.ChainID),
		Hash:            tx.Hash,
		BlockNumber:     tx.BlockNumber,
		Timestamp:       tx.Timestamp,
		Nonce:           tx.Nonce,
		From:            tx.From,
		To:              tx.To,
		Value:           tx.Value,
		Input:           tx.Input,
		Gas:             tx.Gas,
		GasPrice:        tx.GasPrice,
		GasUsed:         tx.GasUsed,
		ContractAddress: tx.ContractAddress,
		Status:          string(tx.Status),
	}
}

func toDomainTransaction(tx schema.Transaction) domain.Transaction {
	return domain.Transaction{
		Hash:            tx.Hash,
		ChainID:         domain.ChainID(tx.ChainID),
		Wallet:          tx.Wallet,
		BlockNumber:     tx.BlockNumber,
		Timestamp:       tx.Timestamp,
		Nonce:           tx.Nonce,
		From:            tx.From,
		To:              tx.To,
		Value:           tx.Value,
		Input:           tx.Input,
		Gas:             tx.Gas,
		GasPrice:        tx.GasPrice,
		GasUsed:         tx.GasUsed,
		ContractAddress: tx.ContractAddress,
		Status:          domain.TransactionStatus(tx.Status),
	}
}

func toSchemaTransferEvent(e domain.TransferEvent) schema.TransferEvent {
	return schema.TransferEvent{
		Wallet:       domain.NormalizeAddress(e.Wallet),
		ChainID:      int64(e.ChainID),
		Hash:         e.Hash,
		TokenAddress: domain.NormalizeAddress(e.TokenAddress),
		EventName:    e.EventName,
		Detail:       e.Detail,
		BlockNumber:  e.BlockNumber,
		Timestamp:    e.Timestamp,
		Amount:       e.Amount,
	}
}

func toDomainCheckpoint(c schema.Checkpoint) domain.Checkpoint {
	return domain.Checkpoint{
		CheckpointKey: domain.CheckpointKey{
			Wallet:  c.Wallet,
			ChainID: domain.ChainID(c.ChainID),
			Scope:   c.Scope,
			Kind:    domain.CheckpointKind(c.Kind),
		},
		EarliestBlock: c.EarliestBlock,
		LatestBlock:   c.LatestBlock,
		LastSyncAt:    c.LastSyncAt,
	}
}

func toDomainToken(t schema.Token) domain.TokenDescriptor {
	token := domain.TokenDescriptor{
		Wallet:     t.Wallet,
		ChainID:    domain.ChainID(t.ChainID),
		Address:    t.Address,
		Name:       t.Name,
		Symbol:     t.Symbol,
		Decimals:   t.Decimals,
		Kind:       domain.InterfaceKind(t.Kind),
		LastTxTime: t.LastTxTime,
	}
	for _, a := range t.Assets {
		token.Assets = append(token.Assets, domain.Asset{
			TokenID:      a.Number,
			Name:         a.Name,
			Description:  a.Description,
			ImageURL:     a.ImageURL,
			Metadata:     json.RawMessage(a.Metadata),
			MetadataHash: a.MetadataHash,
			Placeholder:  a.Placeholder,
		})
	}
	return token
}

func toSchemaAsset(tokenID int64, a domain.Asset) schema.TokenAsset {
	var metadata datatypes.JSON
	if len(a.Metadata) > 0 {
		metadata = datatypes.JSON(a.Metadata)
	}
	return schema.TokenAsset{
		TokenID:      tokenID,
		Number:       a.TokenID,
		Name:         a.Name,
		Description:  a.Description,
		ImageURL:     a.ImageURL,
		Metadata:     metadata,
		MetadataHash: a.MetadataHash,
		Placeholder:  a.Placeholder,
	}
}
