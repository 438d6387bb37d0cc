package domain

import (
	"encoding/json"
	"time"
)

// InterfaceKind is the token interface a contract was classified as
type InterfaceKind string

const (
	InterfaceERC20              InterfaceKind = "erc20"
	InterfaceMaybeERC20         InterfaceKind = "maybe-erc20"
	InterfaceERC721             InterfaceKind = "erc721"
	InterfaceERC721Legacy       InterfaceKind = "erc721-legacy"
	InterfaceERC721Ticket       InterfaceKind = "erc721-ticket"
	InterfaceERC721Undetermined InterfaceKind = "erc721-undetermined"
	InterfaceERC1155            InterfaceKind = "erc1155"
	InterfaceUnknown            InterfaceKind = "unknown"
)

// IsConfirmedNFT reports whether the kind is one of the non-fungible variants the NFT flow must not replace
func (k InterfaceKind) IsConfirmedNFT() bool {
	switch k {
	case InterfaceERC721, InterfaceERC721Legacy, InterfaceERC721Ticket, InterfaceERC721Undetermined:
		return true
	default:
		return false
	}
}

// IsFungible reports whether the kind is a fungible token kind
func (k InterfaceKind) IsFungible() bool {
	return k == InterfaceERC20 || k == InterfaceMaybeERC20
}

// Asset is one owned non-fungible token id with its metadata
type Asset struct {
	TokenID      string          `json:"token_id"`
	Name         string          `json:"name,omitempty"`
	Description  string          `json:"description,omitempty"`
	ImageURL     string          `json:"image_url,omitempty"`
	Metadata     json.RawMessage `json:"metadata,omitempty"`
	MetadataHash string          `json:"metadata_hash,omitempty"`
	// Placeholder marks an asset whose metadata lookup failed and awaits enrichment
	Placeholder bool `json:"placeholder"`
}

// NewPlaceholderAsset returns a blank asset for a token id whose metadata is not known yet
func NewPlaceholderAsset(tokenID string) Asset {
	return Asset{TokenID: tokenID, Placeholder: true}
}

// TokenDescriptor is the registry entry of a token contract seen by a wallet on a chain
type TokenDescriptor struct {
	Wallet     string        `json:"wallet"`
	ChainID    ChainID       `json:"chain_id"`
	Address    string        `json:"address"`
	Name       string        `json:"name"`
	Symbol     string        `json:"symbol"`
	Decimals   int32         `json:"decimals"`
	Kind       InterfaceKind `json:"kind"`
	LastTxTime *time.Time    `json:"last_tx_time,omitempty"`
	Assets     []Asset       `json:"assets,omitempty"`
}

// AssetFor returns the asset recorded for a token id, or nil
func (t *TokenDescriptor) AssetFor(tokenID string) *Asset {
	for i := range t.Assets {
		if t.Assets[i].TokenID == tokenID {
			return &t.Assets[i]
		}
	}
	return nil
}

// AddAsset records an asset, replacing any asset with the same token id
func (t *TokenDescriptor) AddAsset(asset Asset) {
	for i := range t.Assets {
		if t.Assets[i].TokenID == asset.TokenID {
			t.Assets[i] = asset
			return
		}
	}
	t.Assets = append(t.Assets, asset)
}

// RemoveAsset drops the balance for a token id and reports whether it was present
func (t *TokenDescriptor) RemoveAsset(tokenID string) bool {
	for i := range t.Assets {
		if t.Assets[i].TokenID == tokenID {
			t.Assets = append(t.Assets[:i], t.Assets[i+1:]...)
			return true
		}
	}
	return false
}

// UnverifiedToken is a contract queued for out-of-band verification because its events carried no usable decimals
type UnverifiedToken struct {
	ChainID  ChainID `json:"chain_id"`
	Address  string  `json:"address"`
	Wallet   string  `json:"wallet"`
	Attempts int     `json:"attempts"`
}
