package metadata

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/domain"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/providers/ethereum"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
)

const PROVIDER_NAME = "metadata"

// ErrUnsupportedURI is returned for metadata uris with an unknown scheme
var ErrUnsupportedURI = errors.New("unsupported metadata uri")

// NormalizedMetadata represents the normalized metadata
type NormalizedMetadata struct {
	Raw         map[string]interface{}
	Name        string
	Description string
	Image       string
}

// Resolver looks up the metadata of a non-fungible token
//
//go:generate mockgen -source=resolver.go -destination=../mocks/metadata_resolver.go -package=mocks -mock_names=Resolver=MockMetadataResolver
type Resolver interface {
	// Resolve returns the asset of a token id with its metadata attached
	Resolve(ctx context.Context, network domain.Network, contractAddress, tokenNumber string) (*domain.Asset, error)
}

// Config holds the gateways used for content-addressed uris
type Config struct {
	IPFSGateways    []string
	ArweaveGateways []string
}

type resolver struct {
	config         Config
	ethPool        ethereum.Pool
	httpClient     adapter.HTTPClient
	rateLimitProxy ratelimit.Proxy
	json           adapter.JSON
	jcs            adapter.JCS
	base64         adapter.Base64
}

func NewResolver(
	config Config,
	ethPool ethereum.Pool,
	httpClient adapter.HTTPClient,
	rateLimitProxy ratelimit.Proxy,
	json adapter.JSON,
	jcs adapter.JCS,
	base64 adapter.Base64,
) Resolver {
	if len(config.IPFSGateways) == 0 {
		config.IPFSGateways = []string{domain.DEFAULT_IPFS_GATEWAY}
	}
	if len(config.ArweaveGateways) == 0 {
		config.ArweaveGateways = []string{domain.DEFAULT_ARWEAVE_GATEWAY}
	}
	return &resolver{
		config:         config,
		ethPool:        ethPool,
		httpClient:     httpClient,
		rateLimitProxy: rateLimitProxy,
		json:           json,
		jcs:            jcs,
		base64:         base64,
	}
}

func (r *resolver) Resolve(ctx context.Context, network domain.Network, contractAddress, tokenNumber string) (*domain.Asset, error) {
	client, err := r.ethPool.Client(ctx, network)
	if err != nil {
		return nil, err
	}

	metadataURI, err := client.TokenURI(ctx, contractAddress, tokenNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata URI: %w", err)
	}

	processedURI := processMetadataURI(metadataURI)
	raw, err := r.fetchMetadataFromURI(ctx, processedURI)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch metadata from URI %s: %w", processedURI, err)
	}

	normalized := r.normalize(raw)
	rawJSON, hash, err := r.rawHash(raw)
	if err != nil {
		return nil, err
	}

	logger.DebugCtx(ctx, "Resolved token metadata",
		zap.String("chain_id", network.ChainID.String()),
		zap.String("contract", contractAddress),
		zap.String("token_id", tokenNumber),
	)

	return &domain.Asset{
		TokenID:      tokenNumber,
		Name:         normalized.Name,
		Description:  normalized.Description,
		ImageURL:     normalized.Image,
		Metadata:     rawJSON,
		MetadataHash: hash,
	}, nil
}

// rawHash returns the raw metadata JSON and the hex sha256 of its canonical form
func (r *resolver) rawHash(raw map[string]interface{}) ([]byte, string, error) {
	metadataJSON, err := r.json.Marshal(raw)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal metadata: %w", err)
	}

	canonicalized, err := r.jcs.Transform(metadataJSON)
	if err != nil {
		return nil, "", fmt.Errorf("failed to canonicalize metadata: %w", err)
	}
	hash := sha256.Sum256(canonicalized)
	return metadataJSON, hex.EncodeToString(hash[:]), nil
}

// normalize reads the OpenSea metadata standard fields
// https://docs.opensea.io/docs/metadata-standards
func (r *resolver) normalize(metadata map[string]interface{}) NormalizedMetadata {
	n := NormalizedMetadata{Raw: metadata}
	if v, ok := metadata["name"].(string); ok {
		n.Name = v
	}
	if v, ok := metadata["description"].(string); ok {
		n.Description = v
	}
	if v, ok := metadata["image"].(string); ok {
		n.Image = v
	} else if v, ok := metadata["image_url"].(string); ok {
		n.Image = v
	}
	n.Image = r.uriToGateway(n.Image)
	return n
}

// processMetadataURI rewrites http urls of ipfs content to ipfs:// so configured gateways are used
func processMetadataURI(uri string) string {
	uri = strings.TrimSpace(uri)
	if strings.HasPrefix(uri, "http") && strings.Contains(uri, "/ipfs/") {
		parts := strings.SplitN(uri, "/ipfs/", 2)
		if len(parts) > 1 {
			uri = "ipfs://" + parts[1]
		}
	}
	return uri
}

// fetchMetadataFromURI fetches metadata from a given URI, handling different protocols
func (r *resolver) fetchMetadataFromURI(ctx context.Context, uri string) (map[string]interface{}, error) {
	switch {
	case strings.HasPrefix(uri, "data:"):
		return r.parseDataURI(uri)
	case strings.HasPrefix(uri, "ipfs://"):
		path := strings.TrimPrefix(strings.TrimPrefix(uri, "ipfs://"), "ipfs/")
		return r.fetchFromGateways(ctx, r.config.IPFSGateways, "/ipfs/"+path)
	case strings.HasPrefix(uri, "ar://"):
		return r.fetchFromGateways(ctx, r.config.ArweaveGateways, "/"+strings.TrimPrefix(uri, "ar://"))
	case strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://"):
		return r.fetchFromHTTP(ctx, uri)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedURI, uri)
	}
}

// parseDataURI parses data:application/json[;base64],<data>
func (r *resolver) parseDataURI(uri string) (map[string]interface{}, error) {
	parts := strings.SplitN(strings.TrimPrefix(uri, "data:"), ",", 2)
	if len(parts) != 2 {
		return nil, fmt.Errorf("invalid data URI format")
	}

	dataType, data := parts[0], []byte(parts[1])
	if strings.Contains(dataType, "base64") {
		decoded, err := r.base64.Decode(parts[1])
		if err != nil {
			return nil, fmt.Errorf("failed to decode base64: %w", err)
		}
		data = decoded
	}

	var metadata map[string]interface{}
	if err := r.json.Unmarshal(data, &metadata); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return metadata, nil
}

// fetchFromGateways races the gateways and returns the first successful result
func (r *resolver) fetchFromGateways(ctx context.Context, gateways []string, path string) (map[string]interface{}, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type result struct {
		metadata map[string]interface{}
		err      error
	}

	results := make(chan result, len(gateways))
	for _, gateway := range gateways {
		go func(gw string) {
			metadata, err := r.fetchFromHTTP(ctx, strings.TrimSuffix(gw, "/")+path)
			results <- result{metadata: metadata, err: err}
		}(gateway)
	}

	var lastErr error
	for range gateways {
		res := <-results
		if res.err == nil {
			return res.metadata, nil
		}
		lastErr = res.err
	}

	return nil, fmt.Errorf("failed to fetch from all gateways: %w", lastErr)
}

// fetchFromHTTP fetches metadata from an HTTP(S) URL
func (r *resolver) fetchFromHTTP(ctx context.Context, url string) (map[string]interface{}, error) {
	body, err := ratelimit.Request(ctx, r.rateLimitProxy, PROVIDER_NAME, func(ctx context.Context) ([]byte, error) {
		return r.httpClient.GetBytes(ctx, url)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	var metadata map[string]interface{}
	if err := r.json.Unmarshal(body, &metadata); err != nil {
		return nil, fmt.Errorf("failed to decode metadata: %w", err)
	}
	return metadata, nil
}

// uriToGateway converts a content-addressed uri to a url on the first configured gateway
func (r *resolver) uriToGateway(uri string) string {
	if after, ok := strings.CutPrefix(uri, "ipfs://"); ok {
		return fmt.Sprintf("%s/ipfs/%s", strings.TrimSuffix(r.config.IPFSGateways[0], "/"), strings.TrimPrefix(after, "ipfs/"))
	}
	if after, ok := strings.CutPrefix(uri, "ar://"); ok {
		return fmt.Sprintf("%s/%s", strings.TrimSuffix(r.config.ArweaveGateways[0], "/"), after)
	}
	return uri
}
