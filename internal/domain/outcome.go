package domain

import "time"

// SyncStatus is the tagged outcome of one orchestrator call
type SyncStatus string

const (
	// SyncStatusApplied means new records were merged into the cache
	SyncStatusApplied SyncStatus = "applied"
	// SyncStatusEmpty means the remote had nothing new
	SyncStatusEmpty SyncStatus = "empty"
	// SyncStatusTransientFailure means the cycle was cancelled or the remote failed; the next cycle retries
	SyncStatusTransientFailure SyncStatus = "transient_failure"
	// SyncStatusNeedsFullRefresh means the cache was wiped and resynced; callers should reload their view
	SyncStatusNeedsFullRefresh SyncStatus = "needs_full_refresh"
)

// SyncOutcome is the result of a transaction sync call. It is never persisted.
type SyncOutcome struct {
	Status       SyncStatus    `json:"status"`
	Transactions []Transaction `json:"transactions,omitempty"`
	// LatestBlock is the checkpoint head written by the call
	LatestBlock uint64 `json:"latest_block"`
}

// NeedsFullRefresh reports whether the caller must reload its whole view of the account
func (o SyncOutcome) NeedsFullRefresh() bool {
	return o.Status == SyncStatusNeedsFullRefresh
}

// SyncRequest identifies an account on a chain to synchronize
type SyncRequest struct {
	Wallet  string  `json:"wallet"`
	ChainID ChainID `json:"chain_id"`
}

// SyncReport summarizes a full account sync cycle
type SyncReport struct {
	Wallet       string     `json:"wallet"`
	ChainID      ChainID    `json:"chain_id"`
	Status       SyncStatus `json:"status"`
	LatestBlock  uint64     `json:"latest_block"`
	TxCount      int        `json:"tx_count"`
	ERC20Events  int        `json:"erc20_events"`
	NFTEvents    int        `json:"nft_events"`
	ResetApplied bool       `json:"reset_applied"`
	CompletedAt  time.Time  `json:"completed_at"`
}

// WatchedAccount is an account the scheduler keeps synchronized
type WatchedAccount struct {
	Wallet          string     `json:"wallet"`
	ChainID         ChainID    `json:"chain_id"`
	LastTriggeredAt *time.Time `json:"last_triggered_at,omitempty"`
	LastSyncedAt    *time.Time `json:"last_synced_at,omitempty"`
}
