package dto

import "github.com/feral-file/ff-account-sync/internal/domain"

// MAX_ACCOUNTS_PER_REQUEST bounds the accounts accepted by one sync or watch request
const MAX_ACCOUNTS_PER_REQUEST = 50

// AccountRequest identifies one account on one chain
type AccountRequest struct {
	Address string         `json:"address" binding:"required"`
	ChainID domain.ChainID `json:"chain_id" binding:"required"`
}

// SyncAccountsRequest is the body of POST /api/v1/accounts/sync
type SyncAccountsRequest struct {
	Accounts []AccountRequest `json:"accounts" binding:"required,min=1,dive"`
}

// WatchAccountsRequest is the body of POST /api/v1/accounts/watch
type WatchAccountsRequest struct {
	Accounts []AccountRequest `json:"accounts" binding:"required,min=1,dive"`
	// Sync also starts an immediate sync of every registered account
	Sync bool `json:"sync"`
}
