package store

import (
	"context"
	"time"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	TransactionStore
	TransferStore
	CheckpointStore
	TokenStore
	WatchedAccountStore

	// SetKeyValue upserts a sync flag
	SetKeyValue(ctx context.Context, key string, value string) error
	// GetKeyValue returns a sync flag, or "" when it is not set
	GetKeyValue(ctx context.Context, key string) (string, error)
}

// TransactionStore is the local transaction cache
type TransactionStore interface {
	// UpsertTransaction inserts or replaces a transaction keyed by (wallet, chain, hash)
	UpsertTransaction(ctx context.Context, tx domain.Transaction) error
	// UpsertTransactionSkeleton stores a transaction derived from a transfer event unless the cached
	// transaction already carries a full input payload. Reports whether a write happened.
	UpsertTransactionSkeleton(ctx context.Context, tx domain.Transaction) (bool, error)
	// GetTransaction retrieves a cached transaction, nil when absent
	GetTransaction(ctx context.Context, wallet string, chainID domain.ChainID, hash string) (*domain.Transaction, error)
	// ExistingTransactionHashes returns the subset of hashes already cached
	ExistingTransactionHashes(ctx context.Context, wallet string, chainID domain.ChainID, hashes []string) (map[string]bool, error)
	// GetTransactionsOlderThan returns cached transactions with timestamp < before, newest first
	GetTransactionsOlderThan(ctx context.Context, wallet string, chainID domain.ChainID, before int64, limit int) ([]domain.TransactionMeta, error)
	// GetOldestTransactionBlock returns the block of the cached transaction with the smallest timestamp, 0 when empty
	GetOldestTransactionBlock(ctx context.Context, wallet string, chainID domain.ChainID) (uint64, error)
	// ListTransactionsNeedingHydration returns cached event skeletons that carry no input payload yet
	// and have fewer than maxAttempts failed hydration attempts
	ListTransactionsNeedingHydration(ctx context.Context, wallet string, chainID domain.ChainID, maxAttempts int, limit int) ([]domain.Transaction, error)
	// IncrementHydrationAttempts records a failed hydration attempt of a cached transaction
	IncrementHydrationAttempts(ctx context.Context, wallet string, chainID domain.ChainID, hash string) error
	// CountTransactions counts the cached transactions of an account
	CountTransactions(ctx context.Context, wallet string, chainID domain.ChainID) (int64, error)
	// DeleteChainTransactions purges every cached transaction of an account on a chain
	DeleteChainTransactions(ctx context.Context, wallet string, chainID domain.ChainID) error
}

// TransferStore is the local transfer event cache
type TransferStore interface {
	// InsertTransferEvent inserts an event unless a row with the same dedup key exists. Reports whether it was inserted.
	InsertTransferEvent(ctx context.Context, event domain.TransferEvent) (bool, error)
	// TransferEventExists checks whether a row with the event's dedup key exists
	TransferEventExists(ctx context.Context, event domain.TransferEvent) (bool, error)
	// CountTransferEvents counts the transfer rows of an account on a chain
	CountTransferEvents(ctx context.Context, wallet string, chainID domain.ChainID) (int64, error)
}

// CheckpointStore holds sync progress markers and the reset state machine
type CheckpointStore interface {
	// GetCheckpoint retrieves a checkpoint, nil when it was never written
	GetCheckpoint(ctx context.Context, key domain.CheckpointKey) (*domain.Checkpoint, error)
	// ListCheckpoints lists every checkpoint of an account on a chain
	ListCheckpoints(ctx context.Context, wallet string, chainID domain.ChainID) ([]domain.Checkpoint, error)
	// SetLatestBlock advances latest_block; a lower value than the stored one is ignored
	SetLatestBlock(ctx context.Context, key domain.CheckpointKey, block uint64) error
	// SetEarliestBlock records the block below which no history exists
	SetEarliestBlock(ctx context.Context, key domain.CheckpointKey, block uint64) error
	// ResetCheckpoint zeroes both bounds of a checkpoint
	ResetCheckpoint(ctx context.Context, key domain.CheckpointKey) error
	// GetSyncState reports the reset state machine state of an account for the given marker version
	GetSyncState(ctx context.Context, wallet string, chainID domain.ChainID, version int) (domain.SyncState, error)
	// ApplyResetMarker zeroes every checkpoint and purges every transfer row of a RESET_PENDING account,
	// then stamps the marker, in one transaction. Reports whether a reset happened.
	ApplyResetMarker(ctx context.Context, wallet string, chainID domain.ChainID, version int) (bool, error)
}

// TokenStore is the token registry
type TokenStore interface {
	// GetToken retrieves a token descriptor with its assets, nil when unknown
	GetToken(ctx context.Context, wallet string, chainID domain.ChainID, address string) (*domain.TokenDescriptor, error)
	// ListTokens lists the token descriptors of an account on a chain
	ListTokens(ctx context.Context, wallet string, chainID domain.ChainID) ([]domain.TokenDescriptor, error)
	// StoreToken upserts a descriptor and replaces its asset list
	StoreToken(ctx context.Context, token domain.TokenDescriptor) error
	// QueueUnverifiedToken queues a contract for verification; queuing twice is a no-op
	QueueUnverifiedToken(ctx context.Context, token domain.UnverifiedToken) error
	// ListUnverifiedTokens lists queued contracts of a chain with fewer than maxAttempts attempts
	ListUnverifiedTokens(ctx context.Context, chainID domain.ChainID, maxAttempts int, limit int) ([]domain.UnverifiedToken, error)
	// DeleteUnverifiedToken removes a contract from the queue
	DeleteUnverifiedToken(ctx context.Context, chainID domain.ChainID, address string) error
	// IncrementUnverifiedAttempts records a failed verification attempt
	IncrementUnverifiedAttempts(ctx context.Context, chainID domain.ChainID, address string) error
}

// WatchedAccountStore holds the accounts the scheduler keeps in sync
type WatchedAccountStore interface {
	// EnsureWatchedAccount registers an account, re-enabling it if it was unwatched
	EnsureWatchedAccount(ctx context.Context, wallet string, chainID domain.ChainID) error
	// ListWatchedAccountsDue lists watched accounts not triggered since the given time, least recently triggered first
	ListWatchedAccountsDue(ctx context.Context, triggeredBefore time.Time, limit int) ([]domain.WatchedAccount, error)
	// MarkWatchedAccountsTriggered stamps last_triggered_at
	MarkWatchedAccountsTriggered(ctx context.Context, accounts []domain.SyncRequest, at time.Time) error
	// MarkWatchedAccountSynced stamps last_synced_at
	MarkWatchedAccountSynced(ctx context.Context, wallet string, chainID domain.ChainID, at time.Time) error
}
