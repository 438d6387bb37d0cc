package reconciler

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metadata"
	"github.com/feral-file/ff-account-sync/internal/metrics"
	"github.com/feral-file/ff-account-sync/internal/store"
)

const (
	flavourFungible    = "fungible"
	flavourNonFungible = "non_fungible"
)

// Reconciler turns explorer transfer events into transfer rows, transaction skeletons and token registry entries
//
//go:generate mockgen -source=reconciler.go -destination=../mocks/reconciler.go -package=mocks -mock_names=Reconciler=MockReconciler
type Reconciler interface {
	// WriteEvents stores the transfer rows and transaction skeletons of events and returns the number of new rows.
	// Failures of single records are logged and skipped; only cancellation is returned.
	WriteEvents(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent, nft bool) (int, error)

	// ReconcileFungible registers or queues the fungible token contracts seen in events
	ReconcileFungible(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent) error

	// ReconcileNonFungible updates the owned token ids of the non-fungible contracts seen in events
	ReconcileNonFungible(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent) error
}

type reconciler struct {
	store    store.Store
	resolver metadata.Resolver
	clock    adapter.Clock
}

// New creates a reconciler. The resolver is the metadata lookup for newly received NFTs.
func New(st store.Store, resolver metadata.Resolver, clock adapter.Clock) Reconciler {
	return &reconciler{
		store:    st,
		resolver: resolver,
		clock:    clock,
	}
}

func (r *reconciler) WriteEvents(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent, nft bool) (int, error) {
	wallet = domain.NormalizeAddress(wallet)
	inserted := 0

	for i := range events {
		if err := ctx.Err(); err != nil {
			return inserted, err
		}

		ev := &events[i]
		created, err := r.writeEvent(ctx, network, wallet, ev, nft)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("chain_id", network.ChainID.String()),
				zap.String("wallet", wallet),
				zap.String("hash", ev.Hash),
				zap.String("contract", ev.ContractAddress),
			)
			metrics.ErrorsTotal.WithLabelValues("reconciler", "write_event").Inc()
			continue
		}
		if created {
			inserted++
		}
	}

	return inserted, nil
}

// writeEvent stores one transfer row and its transaction skeleton, each as its own write
func (r *reconciler) writeEvent(ctx context.Context, network domain.Network, wallet string, ev *domain.RawTransferEvent, nft bool) (bool, error) {
	tx, err := ev.ToTransaction(wallet, network.ChainID, nft)
	if err != nil {
		return false, fmt.Errorf("invalid transfer event: %w", err)
	}

	amount := domain.TokenAmountOne
	if !nft {
		decimals, _ := ev.Decimals()
		amount, err = domain.TokenAmount(ev.Value, decimals)
		if err != nil {
			logger.WarnCtx(ctx, "Unparseable transfer value", zap.String("hash", ev.Hash), zap.Error(err))
		}
	}

	event := domain.TransferEvent{
		Wallet:       wallet,
		ChainID:      network.ChainID,
		Hash:         tx.Hash,
		TokenAddress: domain.NormalizeAddress(ev.ContractAddress),
		EventName:    domain.TransferEventName(wallet, ev.From),
		Detail:       domain.TransferDetail(ev.From, ev.To, ev.Value, nft),
		BlockNumber:  tx.BlockNumber,
		Timestamp:    tx.Timestamp,
		Amount:       amount,
	}

	created, err := r.store.InsertTransferEvent(ctx, event)
	if err != nil {
		return false, fmt.Errorf("failed to insert transfer event: %w", err)
	}

	if _, err := r.store.UpsertTransactionSkeleton(ctx, *tx); err != nil {
		return created, fmt.Errorf("failed to upsert transaction skeleton: %w", err)
	}

	return created, nil
}

func (r *reconciler) ReconcileFungible(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent) error {
	wallet = domain.NormalizeAddress(wallet)
	chain := network.ChainID.String()

	for i := range events {
		if err := ctx.Err(); err != nil {
			return err
		}

		ev := &events[i]
		result, err := r.reconcileFungibleEvent(ctx, network, wallet, ev)
		if err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("chain_id", chain),
				zap.String("wallet", wallet),
				zap.String("contract", ev.ContractAddress),
			)
			result = "error"
		}
		metrics.EventsReconciled.WithLabelValues(chain, flavourFungible, result).Inc()
	}

	return nil
}

func (r *reconciler) reconcileFungibleEvent(ctx context.Context, network domain.Network, wallet string, ev *domain.RawTransferEvent) (string, error) {
	contract := domain.NormalizeAddress(ev.ContractAddress)
	checkpointKey := domain.CheckpointKey{
		Wallet:  wallet,
		ChainID: network.ChainID,
		Scope:   contract,
		Kind:    domain.CheckpointERC20Events,
	}

	block, err := ev.Block()
	if err != nil {
		return "", fmt.Errorf("invalid event block %q: %w", ev.BlockNumber, err)
	}

	checkpoint, err := r.store.GetCheckpoint(ctx, checkpointKey)
	if err != nil {
		return "", err
	}
	if checkpoint != nil && checkpoint.LatestBlock >= block {
		return "skipped", nil
	}

	token, err := r.store.GetToken(ctx, wallet, network.ChainID, contract)
	if err != nil {
		return "", err
	}

	// Non-fungible kinds and their assets belong to the NFT flow
	if token != nil && isNonFungible(token.Kind) {
		if err := r.store.SetLatestBlock(ctx, checkpointKey, block); err != nil {
			return "", fmt.Errorf("failed to advance contract checkpoint: %w", err)
		}
		return "non_fungible", nil
	}

	decimals, parseable := ev.Decimals()
	if needsRegistration(token, ev, decimals, parseable) {
		if !parseable {
			err := r.store.QueueUnverifiedToken(ctx, domain.UnverifiedToken{
				ChainID: network.ChainID,
				Address: contract,
				Wallet:  wallet,
			})
			if err != nil {
				return "", fmt.Errorf("failed to queue unverified token: %w", err)
			}
			return "queued", nil
		}

		kind := domain.InterfaceMaybeERC20
		if decimals > 0 {
			kind = domain.InterfaceERC20
		}
		descriptor := domain.TokenDescriptor{
			Wallet:   wallet,
			ChainID:  network.ChainID,
			Address:  contract,
			Name:     ev.TokenName,
			Symbol:   ev.TokenSymbol,
			Decimals: decimals,
			Kind:     kind,
		}
		if token != nil {
			descriptor.LastTxTime = token.LastTxTime
		}
		if err := r.store.StoreToken(ctx, descriptor); err != nil {
			return "", fmt.Errorf("failed to store token: %w", err)
		}
		metrics.TokensRegistered.WithLabelValues(network.ChainID.String(), string(kind)).Inc()
		return "registered", nil
	}

	// Known and current: advance the contract's read marker so its events are not re-examined
	if err := r.store.SetLatestBlock(ctx, checkpointKey, block); err != nil {
		return "", fmt.Errorf("failed to advance contract checkpoint: %w", err)
	}
	return "advanced", nil
}

func isNonFungible(kind domain.InterfaceKind) bool {
	return kind.IsConfirmedNFT() || kind == domain.InterfaceERC1155
}

// needsRegistration reports whether the registry entry of the event's contract is missing or stale
func needsRegistration(token *domain.TokenDescriptor, ev *domain.RawTransferEvent, decimals int32, parseable bool) bool {
	if token == nil || token.Kind != domain.InterfaceERC20 {
		return true
	}
	if parseable && decimals > 0 && decimals != token.Decimals {
		return true
	}
	return ev.TokenName != token.Name
}

func (r *reconciler) ReconcileNonFungible(ctx context.Context, network domain.Network, wallet string, events []domain.RawTransferEvent) error {
	wallet = domain.NormalizeAddress(wallet)

	for _, group := range groupByContract(events) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := r.reconcileContract(ctx, network, wallet, group); err != nil {
			logger.ErrorCtx(ctx, err,
				zap.String("chain_id", network.ChainID.String()),
				zap.String("wallet", wallet),
				zap.String("contract", group.contract),
			)
			metrics.ErrorsTotal.WithLabelValues("reconciler", "store_token").Inc()
		}
	}

	return nil
}

func (r *reconciler) reconcileContract(ctx context.Context, network domain.Network, wallet string, group contractEvents) error {
	chain := network.ChainID.String()

	token, err := r.store.GetToken(ctx, wallet, network.ChainID, group.contract)
	if err != nil {
		return err
	}
	if token == nil || !token.Kind.IsConfirmedNFT() {
		token = newNFTDescriptor(wallet, network.ChainID, group.events[0])
	}

	for i := range group.events {
		ev := &group.events[i]

		tokenID, ok := parseTokenID(ev.TokenID)
		if !ok {
			metrics.EventsReconciled.WithLabelValues(chain, flavourNonFungible, "invalid_token_id").Inc()
			continue
		}

		if !domain.SameAddress(ev.To, wallet) {
			token.RemoveAsset(tokenID)
			metrics.EventsReconciled.WithLabelValues(chain, flavourNonFungible, "removed").Inc()
			continue
		}

		if token.AssetFor(tokenID) != nil {
			metrics.EventsReconciled.WithLabelValues(chain, flavourNonFungible, "known").Inc()
			continue
		}

		asset, err := r.resolver.Resolve(ctx, network, group.contract, tokenID)
		if err != nil || asset == nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			logger.DebugCtx(ctx, "Metadata unavailable, storing placeholder",
				zap.String("contract", group.contract),
				zap.String("token_id", tokenID),
				zap.Error(err),
			)
			token.AddAsset(domain.NewPlaceholderAsset(tokenID))
			metrics.EventsReconciled.WithLabelValues(chain, flavourNonFungible, "placeholder").Inc()
			continue
		}

		// A resolvable tokenURI confirms the contract as erc721; existing assets are kept
		token.Kind = domain.InterfaceERC721
		token.AddAsset(*asset)
		metrics.EventsReconciled.WithLabelValues(chain, flavourNonFungible, "added").Inc()
	}

	now := r.clock.Now()
	token.LastTxTime = &now
	if err := r.store.StoreToken(ctx, *token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	metrics.TokensRegistered.WithLabelValues(chain, string(token.Kind)).Inc()
	return nil
}

func newNFTDescriptor(wallet string, chainID domain.ChainID, ev domain.RawTransferEvent) *domain.TokenDescriptor {
	return &domain.TokenDescriptor{
		Wallet:  wallet,
		ChainID: chainID,
		Address: domain.NormalizeAddress(ev.ContractAddress),
		Name:    ev.TokenName,
		Symbol:  ev.TokenSymbol,
		Kind:    domain.InterfaceERC721Undetermined,
	}
}

// parseTokenID returns the canonical decimal form of a token id
func parseTokenID(s string) (string, bool) {
	id, ok := new(big.Int).SetString(strings.TrimSpace(s), 10)
	if !ok || id.Sign() < 0 {
		return "", false
	}
	return id.String(), true
}

type contractEvents struct {
	contract string
	events   []domain.RawTransferEvent
}

// groupByContract groups events by contract, keeping the order in which contracts first appear
func groupByContract(events []domain.RawTransferEvent) []contractEvents {
	index := make(map[string]int)
	var groups []contractEvents
	for _, ev := range events {
		contract := domain.NormalizeAddress(ev.ContractAddress)
		i, ok := index[contract]
		if !ok {
			i = len(groups)
			index[contract] = i
			groups = append(groups, contractEvents{contract: contract})
		}
		groups[i].events = append(groups[i].events, ev)
	}
	return groups
}
