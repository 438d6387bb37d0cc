package registry

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
)

// BlacklistRegistry answers whether a token contract is known spam
//
//go:generate mockgen -source=blacklist.go -destination=../mocks/blacklist_registry.go -package=mocks -mock_names=BlacklistRegistry=MockBlacklistRegistry,BlacklistRegistryLoader=MockBlacklistRegistryLoader
type BlacklistRegistry interface {
	IsBlacklisted(chainID domain.ChainID, contractAddress string) bool
}

// BlacklistRegistryLoader reads a blacklist file
type BlacklistRegistryLoader interface {
	Load(path string) (BlacklistRegistry, error)
}

// BlacklistData is the file layout: chain id ("1" or "eip155:1") to contract addresses
type BlacklistData map[string][]string

type blacklistRegistry struct {
	// chain id -> lowercased contract address
	contracts map[domain.ChainID]map[string]struct{}
}

type blacklistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewBlacklistRegistryLoader creates a loader reading through fs
func NewBlacklistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) BlacklistRegistryLoader {
	return &blacklistRegistryLoader{fs: fs, json: json}
}

func (l *blacklistRegistryLoader) Load(path string) (BlacklistRegistry, error) {
	raw, err := l.fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read blacklist file: %w", err)
	}

	var data BlacklistData
	if err := l.json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse blacklist JSON: %w", err)
	}

	return NewBlacklistRegistry(data)
}

// NewBlacklistRegistry indexes data for lookups
func NewBlacklistRegistry(data BlacklistData) (BlacklistRegistry, error) {
	reg := &blacklistRegistry{contracts: make(map[domain.ChainID]map[string]struct{}, len(data))}

	for key, addresses := range data {
		chainID, err := parseChainKey(key)
		if err != nil {
			return nil, err
		}

		set, ok := reg.contracts[chainID]
		if !ok {
			set = make(map[string]struct{}, len(addresses))
			reg.contracts[chainID] = set
		}
		for _, addr := range addresses {
			set[strings.ToLower(strings.TrimSpace(addr))] = struct{}{}
		}
	}

	return reg, nil
}

func parseChainKey(key string) (domain.ChainID, error) {
	trimmed := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(key)), "eip155:")
	id, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid blacklist chain id %q", key)
	}
	return domain.ChainID(id), nil
}

func (b *blacklistRegistry) IsBlacklisted(chainID domain.ChainID, contractAddress string) bool {
	if b == nil {
		return false
	}
	_, ok := b.contracts[chainID][strings.ToLower(contractAddress)]
	return ok
}
