package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// AccountPathParams holds the path parameters of /accounts/:address/chains/:chain_id routes
type AccountPathParams struct {
	Address string `uri:"address" binding:"required"`
	ChainID string `uri:"chain_id" binding:"required"`
}

// ListTransactionsQueryParams holds query parameters for GET .../transactions
type ListTransactionsQueryParams struct {
	// Before is a unix timestamp; only transactions strictly older are returned
	Before *int64 `form:"before"`
}

// ParseAccountPath parses and validates the account path parameters
func ParseAccountPath(c *gin.Context) (string, domain.ChainID, error) {
	var params AccountPathParams
	if err := c.ShouldBindUri(&params); err != nil {
		return "", 0, err
	}

	chainID, err := domain.ParseChainID(params.ChainID)
	if err != nil {
		return "", 0, err
	}

	return params.Address, chainID, nil
}

// ParseListTransactionsQuery parses query parameters for GET .../transactions
func ParseListTransactionsQuery(c *gin.Context) (*ListTransactionsQueryParams, error) {
	var params ListTransactionsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
