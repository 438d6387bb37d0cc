package dto

import (
	"time"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// SyncJob is a started account sync workflow
type SyncJob struct {
	Address    string         `json:"address"`
	ChainID    domain.ChainID `json:"chain_id"`
	WorkflowID string         `json:"workflow_id"`
}

// SyncAccountsResponse lists the sync workflows started by a request
type SyncAccountsResponse struct {
	Jobs []SyncJob `json:"jobs"`
}

// WatchAccountsResponse acknowledges registered watched accounts
type WatchAccountsResponse struct {
	Registered int       `json:"registered"`
	Jobs       []SyncJob `json:"jobs,omitempty"`
}

// TransactionListResponse is one page of older account history
type TransactionListResponse struct {
	Transactions []domain.TransactionMeta `json:"transactions"`
	// NextBefore is the cursor for the next older page; absent when the page is empty
	NextBefore *int64 `json:"next_before,omitempty"`
}

// CheckpointResponse is the sync progress of one checkpoint
type CheckpointResponse struct {
	Scope         string                `json:"scope"`
	Kind          domain.CheckpointKind `json:"kind"`
	EarliestBlock uint64                `json:"earliest_block"`
	LatestBlock   uint64                `json:"latest_block"`
	LastSyncAt    *time.Time            `json:"last_sync_at,omitempty"`
}

// CheckpointListResponse is the sync progress of an account on a chain
type CheckpointListResponse struct {
	Address     string               `json:"address"`
	ChainID     domain.ChainID       `json:"chain_id"`
	State       domain.SyncState     `json:"state"`
	Checkpoints []CheckpointResponse `json:"checkpoints"`
}

// TokenListResponse is the token registry of an account on a chain
type TokenListResponse struct {
	Tokens []domain.TokenDescriptor `json:"tokens"`
}
