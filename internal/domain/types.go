package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ChainID is the numeric EVM chain identifier (1 for Ethereum mainnet)
type ChainID int64

const (
	ChainEthereumMainnet ChainID = 1
	ChainEthereumSepolia ChainID = 11155111
	ChainPolygonMainnet  ChainID = 137
	ChainBaseMainnet     ChainID = 8453
)

// String returns the decimal representation of the chain id
func (c ChainID) String() string {
	return strconv.FormatInt(int64(c), 10)
}

// ParseChainID parses a decimal chain id
func ParseChainID(s string) (ChainID, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedChain, s)
	}
	return ChainID(id), nil
}

// ProviderKind identifies the explorer API flavour a network is served by
type ProviderKind string

const (
	ProviderEtherscan ProviderKind = "etherscan"
	ProviderCovalent  ProviderKind = "covalent"
)

// Network describes a chain the engine synchronizes against
type Network struct {
	ChainID     ChainID      `json:"chain_id"`
	Name        string       `json:"name"`
	Provider    ProviderKind `json:"provider"`
	ExplorerURL string       `json:"explorer_url"`
	APIKey      string       `json:"-"`
	RPCURL      string       `json:"-"`
}

// NormalizeAddress lowercases and trims an address so it can be used as a storage key
func NormalizeAddress(address string) string {
	return strings.ToLower(strings.TrimSpace(address))
}

// ValidateAddress checks the address is a hex account address and returns its normalized form
func ValidateAddress(address string) (string, error) {
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %s", ErrInvalidAddress, address)
	}
	return NormalizeAddress(address), nil
}

// SameAddress compares two addresses case-insensitively
func SameAddress(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Networks indexes the configured networks by chain id
type Networks map[ChainID]Network

// Get returns the network of a chain id
func (n Networks) Get(chainID ChainID) (Network, error) {
	network, ok := n[chainID]
	if !ok {
		return Network{}, fmt.Errorf("%w: %d", ErrUnsupportedChain, chainID)
	}
	return network, nil
}
