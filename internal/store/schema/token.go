package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Token represents the tokens table - the token registry entry of a contract seen by a wallet
type Token struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Wallet is the account the token was discovered for
	Wallet string `gorm:"column:wallet;not null;type:text;uniqueIndex:idx_tokens_wallet_chain_address,priority:1"`
	// ChainID is the EVM chain id
	ChainID int64 `gorm:"column:chain_id;not null;uniqueIndex:idx_tokens_wallet_chain_address,priority:2"`
	// Address is the lowercase contract address
	Address  string `gorm:"column:address;not null;type:text;uniqueIndex:idx_tokens_wallet_chain_address,priority:3"`
	Name     string `gorm:"column:name;type:text"`
	Symbol   string `gorm:"column:symbol;type:text"`
	Decimals int32  `gorm:"column:decimals;not null;default:0"`
	// Kind is the interface the contract was classified as (erc20, maybe-erc20, erc721, ...)
	Kind string `gorm:"column:kind;not null;type:text"`
	// LastTxTime records when the last event of this token was reconciled
	LastTxTime *time.Time `gorm:"column:last_tx_time"`
	CreatedAt  time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time  `gorm:"column:updated_at;autoUpdateTime"`

	// Associations
	Assets []TokenAsset `gorm:"foreignKey:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Token model
func (Token) TableName() string {
	return "tokens"
}

// TokenAsset represents the token_assets table - one non-fungible token id owned by the wallet
type TokenAsset struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	TokenID     int64  `gorm:"column:token_id;not null;uniqueIndex:idx_token_assets_token_number,priority:1"`
	Number      string `gorm:"column:number;not null;type:text;uniqueIndex:idx_token_assets_token_number,priority:2"`
	Name        string `gorm:"column:name;type:text"`
	Description string `gorm:"column:description;type:text"`
	ImageURL    string `gorm:"column:image_url;type:text"`
	// Metadata is the raw metadata document as fetched
	Metadata datatypes.JSON `gorm:"column:metadata"`
	// MetadataHash is the sha256 of the JCS canonical form of Metadata
	MetadataHash string `gorm:"column:metadata_hash;type:text"`
	// Placeholder marks assets whose metadata lookup failed
	Placeholder bool      `gorm:"column:placeholder;not null;default:false"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the TokenAsset model
func (TokenAsset) TableName() string {
	return "token_assets"
}

// UnverifiedToken represents the unverified_tokens table - contracts queued for RPC verification
type UnverifiedToken struct {
	ChainID   int64     `gorm:"column:chain_id;primaryKey"`
	Address   string    `gorm:"column:address;primaryKey;type:text"`
	Wallet    string    `gorm:"column:wallet;not null;type:text"`
	Attempts  int       `gorm:"column:attempts;not null;default:0"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for the UnverifiedToken model
func (UnverifiedToken) TableName() string {
	return "unverified_tokens"
}
