package executor

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-account-sync/internal/api/shared/errors"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/providers/temporal"
	"github.com/feral-file/ff-account-sync/internal/registry"
	"github.com/feral-file/ff-account-sync/internal/store"
	"github.com/feral-file/ff-account-sync/internal/syncer"
)

// Executor holds the business logic behind the REST handlers.
// Every error it returns is an *apierrors.APIError.
//
//go:generate mockgen -source=executor.go -destination=../../../mocks/api_executor.go -package=mocks -mock_names=Executor=MockAPIExecutor,HistoryRunner=MockHistoryRunner
type Executor interface {
	// TriggerSync starts one sync workflow per distinct account
	TriggerSync(ctx context.Context, accounts []dto.AccountRequest) (*dto.SyncAccountsResponse, error)

	// WatchAccounts registers accounts for periodic sync, optionally starting a sync right away
	WatchAccounts(ctx context.Context, req dto.WatchAccountsRequest) (*dto.WatchAccountsResponse, error)

	// ListTransactions returns one page of cached history older than before, extending the cache when short.
	// A nil before starts from the newest transaction.
	ListTransactions(ctx context.Context, address string, chainID domain.ChainID, before *int64) (*dto.TransactionListResponse, error)

	// GetCheckpoints returns the sync progress of an account
	GetCheckpoints(ctx context.Context, address string, chainID domain.ChainID) (*dto.CheckpointListResponse, error)

	// ListTokens returns the token registry of an account
	ListTokens(ctx context.Context, address string, chainID domain.ChainID) (*dto.TokenListResponse, error)
}

// HistoryRunner submits older-history reads to the sync worker pool
type HistoryRunner interface {
	FetchOlderThan(ctx context.Context, network domain.Network, wallet string, before int64) (pond.Result[[]domain.TransactionMeta], error)
}

type executor struct {
	store     store.Store
	syncer    syncer.Syncer
	runner    HistoryRunner
	trigger   temporal.SyncTrigger
	networks  domain.Networks
	blacklist registry.BlacklistRegistry
}

// NewExecutor creates the API executor. blacklist may be nil.
func NewExecutor(st store.Store, s syncer.Syncer, runner HistoryRunner, trigger temporal.SyncTrigger, networks domain.Networks, blacklist registry.BlacklistRegistry) Executor {
	return &executor{
		store:     st,
		syncer:    s,
		runner:    runner,
		trigger:   trigger,
		networks:  networks,
		blacklist: blacklist,
	}
}

// resolveAccount validates an address and the chain it is requested on
func (e *executor) resolveAccount(address string, chainID domain.ChainID) (string, domain.Network, error) {
	wallet, err := domain.ValidateAddress(address)
	if err != nil {
		return "", domain.Network{}, apierrors.NewBadRequestError("Invalid address", address)
	}

	network, err := e.networks.Get(chainID)
	if err != nil {
		return "", domain.Network{}, apierrors.NewBadRequestError("Unsupported chain", chainID.String())
	}

	return wallet, network, nil
}

// resolveAccounts validates and deduplicates a list of accounts
func (e *executor) resolveAccounts(accounts []dto.AccountRequest) ([]domain.SyncRequest, error) {
	if len(accounts) == 0 {
		return nil, apierrors.NewValidationError("at least one account is required")
	}
	if len(accounts) > dto.MAX_ACCOUNTS_PER_REQUEST {
		return nil, apierrors.NewValidationError(fmt.Sprintf("at most %d accounts per request", dto.MAX_ACCOUNTS_PER_REQUEST))
	}

	seen := make(map[domain.SyncRequest]bool, len(accounts))
	reqs := make([]domain.SyncRequest, 0, len(accounts))
	for _, account := range accounts {
		wallet, network, err := e.resolveAccount(account.Address, account.ChainID)
		if err != nil {
			return nil, err
		}

		req := domain.SyncRequest{Wallet: wallet, ChainID: network.ChainID}
		if seen[req] {
			continue
		}
		seen[req] = true
		reqs = append(reqs, req)
	}

	return reqs, nil
}

func (e *executor) startSyncs(ctx context.Context, reqs []domain.SyncRequest) ([]dto.SyncJob, error) {
	jobs := make([]dto.SyncJob, 0, len(reqs))
	for _, req := range reqs {
		workflowID, err := e.trigger.StartSyncAccount(ctx, req)
		if err != nil {
			logger.ErrorCtx(ctx, err, zap.String("wallet", req.Wallet), zap.Int64("chainID", int64(req.ChainID)))
			return nil, apierrors.NewServiceError("Failed to start sync workflow", req.Wallet)
		}
		jobs = append(jobs, dto.SyncJob{
			Address:    req.Wallet,
			ChainID:    req.ChainID,
			WorkflowID: workflowID,
		})
	}
	return jobs, nil
}

func (e *executor) TriggerSync(ctx context.Context, accounts []dto.AccountRequest) (*dto.SyncAccountsResponse, error) {
	reqs, err := e.resolveAccounts(accounts)
	if err != nil {
		return nil, err
	}

	jobs, err := e.startSyncs(ctx, reqs)
	if err != nil {
		return nil, err
	}

	return &dto.SyncAccountsResponse{Jobs: jobs}, nil
}

func (e *executor) WatchAccounts(ctx context.Context, req dto.WatchAccountsRequest) (*dto.WatchAccountsResponse, error) {
	reqs, err := e.resolveAccounts(req.Accounts)
	if err != nil {
		return nil, err
	}

	for _, r := range reqs {
		if err := e.store.EnsureWatchedAccount(ctx, r.Wallet, r.ChainID); err != nil {
			logger.ErrorCtx(ctx, err, zap.String("wallet", r.Wallet))
			return nil, apierrors.NewDatabaseError("Failed to register watched account")
		}
	}

	resp := &dto.WatchAccountsResponse{Registered: len(reqs)}
	if !req.Sync {
		return resp, nil
	}

	jobs, err := e.startSyncs(ctx, reqs)
	if err != nil {
		return nil, err
	}
	resp.Jobs = jobs

	return resp, nil
}

func (e *executor) ListTransactions(ctx context.Context, address string, chainID domain.ChainID, before *int64) (*dto.TransactionListResponse, error) {
	wallet, network, err := e.resolveAccount(address, chainID)
	if err != nil {
		return nil, err
	}

	cursor := int64(math.MaxInt64)
	if before != nil {
		if *before <= 0 {
			return nil, apierrors.NewValidationError("before must be a positive unix timestamp")
		}
		cursor = *before
	}

	result, err := e.runner.FetchOlderThan(ctx, network, wallet, cursor)
	if err != nil {
		if errors.Is(err, syncer.ErrRunnerClosed) {
			return nil, apierrors.NewServiceError("Service is shutting down")
		}
		return nil, apierrors.NewInternalError("Failed to read transactions")
	}

	metas, err := result.Wait()
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet", wallet), zap.Int64("chainID", int64(chainID)))
		return nil, apierrors.NewDatabaseError("Failed to read transactions")
	}

	resp := &dto.TransactionListResponse{Transactions: metas}
	if resp.Transactions == nil {
		resp.Transactions = []domain.TransactionMeta{}
	}
	if len(metas) > 0 {
		next := metas[len(metas)-1].Timestamp
		resp.NextBefore = &next
	}

	return resp, nil
}

func (e *executor) GetCheckpoints(ctx context.Context, address string, chainID domain.ChainID) (*dto.CheckpointListResponse, error) {
	wallet, network, err := e.resolveAccount(address, chainID)
	if err != nil {
		return nil, err
	}

	state, err := e.syncer.GetSyncState(ctx, wallet, network.ChainID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet", wallet))
		return nil, apierrors.NewDatabaseError("Failed to read sync state")
	}

	checkpoints, err := e.store.ListCheckpoints(ctx, wallet, network.ChainID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet", wallet))
		return nil, apierrors.NewDatabaseError("Failed to list checkpoints")
	}

	resp := &dto.CheckpointListResponse{
		Address:     wallet,
		ChainID:     network.ChainID,
		State:       state,
		Checkpoints: make([]dto.CheckpointResponse, 0, len(checkpoints)),
	}
	for _, cp := range checkpoints {
		resp.Checkpoints = append(resp.Checkpoints, dto.CheckpointResponse{
			Scope:         cp.Scope,
			Kind:          cp.Kind,
			EarliestBlock: cp.EarliestBlock,
			LatestBlock:   cp.LatestBlock,
			LastSyncAt:    cp.LastSyncAt,
		})
	}

	return resp, nil
}

func (e *executor) ListTokens(ctx context.Context, address string, chainID domain.ChainID) (*dto.TokenListResponse, error) {
	wallet, network, err := e.resolveAccount(address, chainID)
	if err != nil {
		return nil, err
	}

	tokens, err := e.store.ListTokens(ctx, wallet, network.ChainID)
	if err != nil {
		logger.ErrorCtx(ctx, err, zap.String("wallet", wallet))
		return nil, apierrors.NewDatabaseError("Failed to list tokens")
	}

	visible := make([]domain.TokenDescriptor, 0, len(tokens))
	for _, token := range tokens {
		if e.blacklist != nil && e.blacklist.IsBlacklisted(token.ChainID, token.Address) {
			continue
		}
		visible = append(visible, token)
	}

	return &dto.TokenListResponse{Tokens: visible}, nil
}
