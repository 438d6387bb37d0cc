package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// =============================================================================
// Test Data Builders
// =============================================================================

const testChain = domain.ChainEthereumMainnet

// buildTestTransaction creates a cached transaction
func buildTestTransaction(wallet, hash string, block uint64, ts int64, input string) domain.Transaction {
	return domain.Transaction{
		Hash:        hash,
		ChainID:     testChain,
		Wallet:      wallet,
		BlockNumber: block,
		Timestamp:   ts,
		From:        wallet,
		To:          "0x00000000000000000000000000000000000000aa",
		Value:       "1000",
		Input:       input,
		Status:      domain.TransactionStatusSuccess,
	}
}

// buildTestTransferEvent creates a transfer event row
func buildTestTransferEvent(wallet, hash, token, from, to, value string) domain.TransferEvent {
	return domain.TransferEvent{
		Wallet:       wallet,
		ChainID:      testChain,
		Hash:         hash,
		TokenAddress: token,
		EventName:    domain.TransferEventName(wallet, from),
		Detail:       domain.TransferDetail(from, to, value, false),
		BlockNumber:  100,
		Timestamp:    1700000000,
		Amount:       decimal.RequireFromString("1.5"),
	}
}

// =============================================================================
// Transactions
// =============================================================================

func testTransactions(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("upsert replaces rather than duplicates", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000001"
		tx := buildTestTransaction(wallet, "0xhash1", 10, 1000, "0x")
		require.NoError(t, store.UpsertTransaction(ctx, tx))

		tx.BlockNumber = 11
		tx.Input = "0xa9059cbb000000000000"
		require.NoError(t, store.UpsertTransaction(ctx, tx))

		count, err := store.CountTransactions(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		got, err := store.GetTransaction(ctx, wallet, testChain, "0xhash1")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, uint64(11), got.BlockNumber)
		assert.Equal(t, "0xa9059cbb000000000000", got.Input)
		assert.Equal(t, domain.TransactionStatusSuccess, got.Status)
	})

	t.Run("get missing transaction returns nil", func(t *testing.T) {
		got, err := store.GetTransaction(ctx, "0x1000000000000000000000000000000000000002", testChain, "0xnone")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("skeleton does not overwrite a hydrated transaction", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000003"
		full := buildTestTransaction(wallet, "0xfull", 20, 2000, "0xa9059cbb0000000000000000")
		require.NoError(t, store.UpsertTransaction(ctx, full))

		skeleton := buildTestTransaction(wallet, "0xfull", 20, 2000, "")
		skeleton.To = "0x00000000000000000000000000000000000000bb"
		written, err := store.UpsertTransactionSkeleton(ctx, skeleton)
		require.NoError(t, err)
		assert.False(t, written)

		got, err := store.GetTransaction(ctx, wallet, testChain, "0xfull")
		require.NoError(t, err)
		assert.Equal(t, full.To, got.To)
	})

	t.Run("skeleton writes new and short-input transactions", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000004"
		written, err := store.UpsertTransactionSkeleton(ctx, buildTestTransaction(wallet, "0xnew", 30, 3000, ""))
		require.NoError(t, err)
		assert.True(t, written)

		update := buildTestTransaction(wallet, "0xnew", 30, 3000, "0x")
		update.Value = "7"
		written, err = store.UpsertTransactionSkeleton(ctx, update)
		require.NoError(t, err)
		assert.True(t, written)

		got, err := store.GetTransaction(ctx, wallet, testChain, "0xnew")
		require.NoError(t, err)
		assert.Equal(t, "7", got.Value)
	})

	t.Run("existing hashes", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000005"
		require.NoError(t, store.UpsertTransaction(ctx, buildTestTransaction(wallet, "0xa", 1, 1, "")))
		require.NoError(t, store.UpsertTransaction(ctx, buildTestTransaction(wallet, "0xb", 2, 2, "")))

		existing, err := store.ExistingTransactionHashes(ctx, wallet, testChain, []string{"0xa", "0xc"})
		require.NoError(t, err)
		assert.Equal(t, map[string]bool{"0xa": true}, existing)

		existing, err = store.ExistingTransactionHashes(ctx, wallet, testChain, nil)
		require.NoError(t, err)
		assert.Empty(t, existing)
	})

	t.Run("older than is bounded and ordered", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000006"
		for i := 1; i <= 5; i++ {
			tx := buildTestTransaction(wallet, "0xold"+string(rune('0'+i)), uint64(i*10), int64(i*100), "")
			require.NoError(t, store.UpsertTransaction(ctx, tx))
		}

		metas, err := store.GetTransactionsOlderThan(ctx, wallet, testChain, 450, 3)
		require.NoError(t, err)
		require.Len(t, metas, 3)
		assert.Equal(t, int64(400), metas[0].Timestamp)
		assert.Equal(t, int64(300), metas[1].Timestamp)
		assert.Equal(t, int64(200), metas[2].Timestamp)
		assert.Equal(t, uint64(40), metas[0].BlockNumber)

		oldest, err := store.GetOldestTransactionBlock(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, uint64(10), oldest)
	})

	t.Run("oldest block of empty cache is zero", func(t *testing.T) {
		oldest, err := store.GetOldestTransactionBlock(ctx, "0x1000000000000000000000000000000000000007", testChain)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), oldest)
	})

	t.Run("needing hydration and delete", func(t *testing.T) {
		wallet := "0x1000000000000000000000000000000000000008"
		require.NoError(t, store.UpsertTransaction(ctx, buildTestTransaction(wallet, "0xskeleton", 1, 1, "")))
		require.NoError(t, store.UpsertTransaction(ctx, buildTestTransaction(wallet, "0xplain", 2, 2, "0x")))
		require.NoError(t, store.UpsertTransaction(ctx, buildTestTransaction(wallet, "0xlong", 3, 3, "0xa9059cbb00000000")))

		txs, err := store.ListTransactionsNeedingHydration(ctx, wallet, testChain, 2, 10)
		require.NoError(t, err)
		require.Len(t, txs, 1)
		assert.Equal(t, "0xskeleton", txs[0].Hash)

		// Failed attempts survive a skeleton rewrite and exclude the row at the maximum
		require.NoError(t, store.IncrementHydrationAttempts(ctx, wallet, testChain, "0xskeleton"))
		_, err = store.UpsertTransactionSkeleton(ctx, buildTestTransaction(wallet, "0xskeleton", 1, 1, ""))
		require.NoError(t, err)
		txs, err = store.ListTransactionsNeedingHydration(ctx, wallet, testChain, 2, 10)
		require.NoError(t, err)
		require.Len(t, txs, 1)

		require.NoError(t, store.IncrementHydrationAttempts(ctx, wallet, testChain, "0xskeleton"))
		txs, err = store.ListTransactionsNeedingHydration(ctx, wallet, testChain, 2, 10)
		require.NoError(t, err)
		assert.Empty(t, txs)

		require.NoError(t, store.DeleteChainTransactions(ctx, wallet, testChain))
		count, err := store.CountTransactions(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)
	})
}

// =============================================================================
// Transfer events
// =============================================================================

func testTransferEvents(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0x2000000000000000000000000000000000000001"
	token := "0x2000000000000000000000000000000000000aaa"
	other := "0x2000000000000000000000000000000000000bbb"

	t.Run("dedup key prevents duplicates", func(t *testing.T) {
		event := buildTestTransferEvent(wallet, "0xt1", token, other, wallet, "1500")

		inserted, err := store.InsertTransferEvent(ctx, event)
		require.NoError(t, err)
		assert.True(t, inserted)

		inserted, err = store.InsertTransferEvent(ctx, event)
		require.NoError(t, err)
		assert.False(t, inserted)

		exists, err := store.TransferEventExists(ctx, event)
		require.NoError(t, err)
		assert.True(t, exists)

		count, err := store.CountTransferEvents(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("different detail is a different row", func(t *testing.T) {
		event := buildTestTransferEvent(wallet, "0xt1", token, other, wallet, "2500")
		inserted, err := store.InsertTransferEvent(ctx, event)
		require.NoError(t, err)
		assert.True(t, inserted)

		count, err := store.CountTransferEvents(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("missing event does not exist", func(t *testing.T) {
		exists, err := store.TransferEventExists(ctx, buildTestTransferEvent(wallet, "0xmissing", token, other, wallet, "1"))
		require.NoError(t, err)
		assert.False(t, exists)
	})
}

// =============================================================================
// Checkpoints and reset marker
// =============================================================================

func testCheckpoints(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("missing checkpoint returns nil", func(t *testing.T) {
		cp, err := store.GetCheckpoint(ctx, domain.AccountCheckpoint("0x3000000000000000000000000000000000000001", testChain, domain.CheckpointNativeTx))
		require.NoError(t, err)
		assert.Nil(t, cp)
	})

	t.Run("latest block never regresses", func(t *testing.T) {
		key := domain.AccountCheckpoint("0x3000000000000000000000000000000000000002", testChain, domain.CheckpointNativeTx)

		require.NoError(t, store.SetLatestBlock(ctx, key, 100))
		require.NoError(t, store.SetLatestBlock(ctx, key, 50))

		cp, err := store.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, cp)
		assert.Equal(t, uint64(100), cp.LatestBlock)
		assert.NotNil(t, cp.LastSyncAt)

		require.NoError(t, store.SetLatestBlock(ctx, key, 150))
		cp, err = store.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(150), cp.LatestBlock)
	})

	t.Run("earliest block and reset", func(t *testing.T) {
		key := domain.AccountCheckpoint("0x3000000000000000000000000000000000000003", testChain, domain.CheckpointNativeTx)

		require.NoError(t, store.SetEarliestBlock(ctx, key, 7))
		require.NoError(t, store.SetLatestBlock(ctx, key, 70))

		cp, err := store.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(7), cp.EarliestBlock)
		assert.Equal(t, uint64(70), cp.LatestBlock)

		require.NoError(t, store.ResetCheckpoint(ctx, key))
		cp, err = store.GetCheckpoint(ctx, key)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cp.EarliestBlock)
		assert.Equal(t, uint64(0), cp.LatestBlock)
	})

	t.Run("checkpoint kinds are independent rows", func(t *testing.T) {
		wallet := "0x3000000000000000000000000000000000000004"
		contract := "0x3000000000000000000000000000000000000ccc"
		require.NoError(t, store.SetLatestBlock(ctx, domain.AccountCheckpoint(wallet, testChain, domain.CheckpointERC20Events), 10))
		require.NoError(t, store.SetLatestBlock(ctx, domain.AccountCheckpoint(wallet, testChain, domain.CheckpointNFTEvents), 20))
		require.NoError(t, store.SetLatestBlock(ctx, domain.CheckpointKey{
			Wallet: wallet, ChainID: testChain, Scope: contract, Kind: domain.CheckpointERC20Events,
		}, 30))

		checkpoints, err := store.ListCheckpoints(ctx, wallet, testChain)
		require.NoError(t, err)
		require.Len(t, checkpoints, 3)

		erc20, err := store.GetCheckpoint(ctx, domain.AccountCheckpoint(wallet, testChain, domain.CheckpointERC20Events))
		require.NoError(t, err)
		assert.Equal(t, uint64(10), erc20.LatestBlock)
	})

	t.Run("reset marker purges exactly once", func(t *testing.T) {
		wallet := "0x3000000000000000000000000000000000000005"
		native := domain.AccountCheckpoint(wallet, testChain, domain.CheckpointNativeTx)
		nft := domain.AccountCheckpoint(wallet, testChain, domain.CheckpointNFTEvents)
		require.NoError(t, store.SetLatestBlock(ctx, native, 500))
		require.NoError(t, store.SetEarliestBlock(ctx, native, 5))
		require.NoError(t, store.SetLatestBlock(ctx, nft, 400))
		_, err := store.InsertTransferEvent(ctx, buildTestTransferEvent(wallet, "0xr1", "0xtoken", wallet, "0xother", "1"))
		require.NoError(t, err)

		state, err := store.GetSyncState(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStateResetPending, state)

		reset, err := store.ApplyResetMarker(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.True(t, reset)

		cp, err := store.GetCheckpoint(ctx, native)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cp.LatestBlock)
		assert.Equal(t, uint64(0), cp.EarliestBlock)
		cp, err = store.GetCheckpoint(ctx, nft)
		require.NoError(t, err)
		assert.Equal(t, uint64(0), cp.LatestBlock)

		count, err := store.CountTransferEvents(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(0), count)

		marker, err := store.GetKeyValue(ctx, ResetMarkerKey(wallet, testChain))
		require.NoError(t, err)
		assert.Equal(t, "5", marker)

		state, err = store.GetSyncState(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStateSynced, state)

		// A second check after the marker is current is a no-op
		require.NoError(t, store.SetLatestBlock(ctx, native, 600))
		_, err = store.InsertTransferEvent(ctx, buildTestTransferEvent(wallet, "0xr2", "0xtoken", wallet, "0xother", "1"))
		require.NoError(t, err)

		reset, err = store.ApplyResetMarker(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.False(t, reset)

		cp, err = store.GetCheckpoint(ctx, native)
		require.NoError(t, err)
		assert.Equal(t, uint64(600), cp.LatestBlock)
		count, err = store.CountTransferEvents(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		// A version bump resets again
		reset, err = store.ApplyResetMarker(ctx, wallet, testChain, 6)
		require.NoError(t, err)
		assert.True(t, reset)
	})

	t.Run("unsynced account only gets the marker", func(t *testing.T) {
		wallet := "0x3000000000000000000000000000000000000006"
		state, err := store.GetSyncState(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.Equal(t, domain.SyncStateUnsynced, state)

		reset, err := store.ApplyResetMarker(ctx, wallet, testChain, 5)
		require.NoError(t, err)
		assert.False(t, reset)

		marker, err := store.GetKeyValue(ctx, ResetMarkerKey(wallet, testChain))
		require.NoError(t, err)
		assert.Equal(t, "5", marker)
	})
}

// =============================================================================
// Token registry
// =============================================================================

func testTokens(t *testing.T, store Store) {
	ctx := context.Background()
	wallet := "0x4000000000000000000000000000000000000001"

	t.Run("unknown token returns nil", func(t *testing.T) {
		token, err := store.GetToken(ctx, wallet, testChain, "0x4000000000000000000000000000000000000fff")
		require.NoError(t, err)
		assert.Nil(t, token)
	})

	t.Run("store and update a fungible token", func(t *testing.T) {
		address := "0x4000000000000000000000000000000000000AAA"
		require.NoError(t, store.StoreToken(ctx, domain.TokenDescriptor{
			Wallet: wallet, ChainID: testChain, Address: address,
			Name: "Token", Symbol: "TKN", Decimals: 18, Kind: domain.InterfaceERC20,
		}))
		require.NoError(t, store.StoreToken(ctx, domain.TokenDescriptor{
			Wallet: wallet, ChainID: testChain, Address: address,
			Name: "Renamed", Symbol: "TKN", Decimals: 18, Kind: domain.InterfaceERC20,
		}))

		token, err := store.GetToken(ctx, wallet, testChain, address)
		require.NoError(t, err)
		require.NotNil(t, token)
		assert.Equal(t, "Renamed", token.Name)
		assert.Equal(t, "0x4000000000000000000000000000000000000aaa", token.Address)
		assert.Equal(t, int32(18), token.Decimals)
		assert.Equal(t, domain.InterfaceERC20, token.Kind)
	})

	t.Run("asset list is replaced", func(t *testing.T) {
		address := "0x4000000000000000000000000000000000000bbb"
		now := time.Now().UTC().Truncate(time.Second)
		metadata := json.RawMessage(`{"name":"One"}`)
		require.NoError(t, store.StoreToken(ctx, domain.TokenDescriptor{
			Wallet: wallet, ChainID: testChain, Address: address,
			Name: "NFT", Kind: domain.InterfaceERC721Undetermined, LastTxTime: &now,
			Assets: []domain.Asset{
				{TokenID: "1", Name: "One", Metadata: metadata, MetadataHash: "abc"},
				domain.NewPlaceholderAsset("2"),
			},
		}))

		token, err := store.GetToken(ctx, wallet, testChain, address)
		require.NoError(t, err)
		require.Len(t, token.Assets, 2)
		assert.Equal(t, "1", token.Assets[0].TokenID)
		assert.JSONEq(t, `{"name":"One"}`, string(token.Assets[0].Metadata))
		assert.True(t, token.Assets[1].Placeholder)
		require.NotNil(t, token.LastTxTime)

		token.RemoveAsset("1")
		token.Kind = domain.InterfaceERC721
		require.NoError(t, store.StoreToken(ctx, *token))

		token, err = store.GetToken(ctx, wallet, testChain, address)
		require.NoError(t, err)
		require.Len(t, token.Assets, 1)
		assert.Equal(t, "2", token.Assets[0].TokenID)
		assert.Equal(t, domain.InterfaceERC721, token.Kind)

		tokens, err := store.ListTokens(ctx, wallet, testChain)
		require.NoError(t, err)
		assert.Len(t, tokens, 2)
	})

	t.Run("unverified queue", func(t *testing.T) {
		chain := domain.ChainPolygonMainnet
		address := "0x4000000000000000000000000000000000000ccc"
		queued := domain.UnverifiedToken{ChainID: chain, Address: address, Wallet: wallet}
		require.NoError(t, store.QueueUnverifiedToken(ctx, queued))
		require.NoError(t, store.QueueUnverifiedToken(ctx, queued))

		tokens, err := store.ListUnverifiedTokens(ctx, chain, 3, 10)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, 0, tokens[0].Attempts)

		for range 3 {
			require.NoError(t, store.IncrementUnverifiedAttempts(ctx, chain, address))
		}
		tokens, err = store.ListUnverifiedTokens(ctx, chain, 3, 10)
		require.NoError(t, err)
		assert.Empty(t, tokens)

		tokens, err = store.ListUnverifiedTokens(ctx, chain, 5, 10)
		require.NoError(t, err)
		require.Len(t, tokens, 1)
		assert.Equal(t, 3, tokens[0].Attempts)

		require.NoError(t, store.DeleteUnverifiedToken(ctx, chain, address))
		tokens, err = store.ListUnverifiedTokens(ctx, chain, 5, 10)
		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}

// =============================================================================
// Watched accounts and key-value store
// =============================================================================

func testWatchedAccounts(t *testing.T, store Store) {
	ctx := context.Background()
	a := "0x5000000000000000000000000000000000000001"
	b := "0x5000000000000000000000000000000000000002"

	require.NoError(t, store.EnsureWatchedAccount(ctx, a, testChain))
	require.NoError(t, store.EnsureWatchedAccount(ctx, a, testChain))
	require.NoError(t, store.EnsureWatchedAccount(ctx, b, testChain))

	now := time.Now().UTC()
	due, err := store.ListWatchedAccountsDue(ctx, now, 10)
	require.NoError(t, err)
	require.Len(t, due, 2)

	require.NoError(t, store.MarkWatchedAccountsTriggered(ctx, []domain.SyncRequest{{Wallet: a, ChainID: testChain}}, now))

	due, err = store.ListWatchedAccountsDue(ctx, now.Add(-time.Minute), 10)
	require.NoError(t, err)
	require.Len(t, due, 1)
	assert.Equal(t, b, due[0].Wallet)

	due, err = store.ListWatchedAccountsDue(ctx, now.Add(time.Hour), 10)
	require.NoError(t, err)
	require.Len(t, due, 2)
	assert.Equal(t, b, due[0].Wallet, "never triggered accounts come first")

	require.NoError(t, store.MarkWatchedAccountSynced(ctx, a, testChain, now))
	due, err = store.ListWatchedAccountsDue(ctx, now.Add(time.Hour), 1)
	require.NoError(t, err)
	assert.Len(t, due, 1)
}

func testKeyValueStore(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetKeyValue(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, "", value)

	require.NoError(t, store.SetKeyValue(ctx, "k", "v1"))
	require.NoError(t, store.SetKeyValue(ctx, "k", "v2"))
	value, err = store.GetKeyValue(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v2", value)
}

// RunStoreTests runs every store test against an implementation
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"Transactions", testTransactions},
		{"TransferEvents", testTransferEvents},
		{"Checkpoints", testCheckpoints},
		{"Tokens", testTokens},
		{"WatchedAccounts", testWatchedAccounts},
		{"KeyValueStore", testKeyValueStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
