package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-account-sync/internal/api/shared/dto"
	"github.com/feral-file/ff-account-sync/internal/api/shared/executor"
)

// Handler defines the REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// SyncAccounts starts sync workflows for accounts
	// POST /api/v1/accounts/sync
	SyncAccounts(c *gin.Context)

	// WatchAccounts registers accounts for periodic sync
	// POST /api/v1/accounts/watch
	WatchAccounts(c *gin.Context)

	// ListTransactions returns one page of account history older than ?before=<unix>
	// GET /api/v1/accounts/:address/chains/:chain_id/transactions
	ListTransactions(c *gin.Context)

	// GetCheckpoints returns the sync progress of an account
	// GET /api/v1/accounts/:address/chains/:chain_id/checkpoints
	GetCheckpoints(c *gin.Context)

	// ListTokens returns the token registry of an account
	// GET /api/v1/accounts/:address/chains/:chain_id/tokens
	ListTokens(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

type handler struct {
	executor executor.Executor
}

// NewHandler creates a REST handler backed by the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

func (h *handler) SyncAccounts(c *gin.Context) {
	var req dto.SyncAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.TriggerSync(c.Request.Context(), req.Accounts)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

func (h *handler) WatchAccounts(c *gin.Context) {
	var req dto.WatchAccountsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}

	resp, err := h.executor.WatchAccounts(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTransactions(c *gin.Context) {
	address, chainID, err := ParseAccountPath(c)
	if err != nil {
		respondBadRequest(c, "Invalid account path", err.Error())
		return
	}

	params, err := ParseListTransactionsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListTransactions(c.Request.Context(), address, chainID, params.Before)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) GetCheckpoints(c *gin.Context) {
	address, chainID, err := ParseAccountPath(c)
	if err != nil {
		respondBadRequest(c, "Invalid account path", err.Error())
		return
	}

	resp, err := h.executor.GetCheckpoints(c.Request.Context(), address, chainID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) ListTokens(c *gin.Context) {
	address, chainID, err := ParseAccountPath(c)
	if err != nil {
		respondBadRequest(c, "Invalid account path", err.Error())
		return
	}

	resp, err := h.executor.ListTokens(c.Request.Context(), address, chainID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "ff-account-sync-api",
	})
}
