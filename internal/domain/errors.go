package domain

import "errors"

var (
	// ErrInvalidAddress is returned when an account or contract address is not a valid hex address
	ErrInvalidAddress = errors.New("invalid address")

	// ErrUnsupportedChain is returned when no network is configured for a chain id
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrProviderNotConfigured is returned when a network references an unknown explorer provider
	ErrProviderNotConfigured = errors.New("explorer provider not configured")

	// ErrSyncInProgress is returned when a sync for the same account scope is already running
	ErrSyncInProgress = errors.New("sync already in progress")

	// ErrTokenNotFound is returned when a token is not found
	ErrTokenNotFound = errors.New("token not found")

	// ErrInvalidTokenID is returned when a token id cannot be parsed as an unsigned integer
	ErrInvalidTokenID = errors.New("invalid token id")
)
