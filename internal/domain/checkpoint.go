package domain

import "time"

// CheckpointKind distinguishes the independent sync progress markers of an account
type CheckpointKind string

const (
	CheckpointNativeTx    CheckpointKind = "native-tx"
	CheckpointERC20Events CheckpointKind = "erc20-events"
	CheckpointNFTEvents   CheckpointKind = "nft-events"
)

// CheckpointKinds lists every kind the reset state machine zeroes
var CheckpointKinds = []CheckpointKind{
	CheckpointNativeTx,
	CheckpointERC20Events,
	CheckpointNFTEvents,
}

// CheckpointKey identifies one checkpoint row.
// Scope is the wallet for account-level checkpoints and a token contract for per-contract read markers.
type CheckpointKey struct {
	Wallet  string         `json:"wallet"`
	ChainID ChainID        `json:"chain_id"`
	Scope   string         `json:"scope"`
	Kind    CheckpointKind `json:"kind"`
}

// AccountCheckpoint returns the account-level checkpoint key of the given kind
func AccountCheckpoint(wallet string, chainID ChainID, kind CheckpointKind) CheckpointKey {
	w := NormalizeAddress(wallet)
	return CheckpointKey{Wallet: w, ChainID: chainID, Scope: w, Kind: kind}
}

// Checkpoint is the durable sync progress of one (wallet, chain, scope, kind)
type Checkpoint struct {
	CheckpointKey
	// EarliestBlock is set once a downward page came back short, meaning no history exists below it
	EarliestBlock uint64     `json:"earliest_block"`
	LatestBlock   uint64     `json:"latest_block"`
	LastSyncAt    *time.Time `json:"last_sync_at,omitempty"`
}

// SyncState is the reset state machine state of an account on a chain
type SyncState string

const (
	SyncStateUnsynced     SyncState = "UNSYNCED"
	SyncStateSynced       SyncState = "SYNCED"
	SyncStateResetPending SyncState = "RESET_PENDING"
)
