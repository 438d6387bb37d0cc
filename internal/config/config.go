package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/feral-file/ff-account-sync/internal/domain"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // "postgres" or "sqlite"
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	SSLMode         string        `mapstructure:"sslmode"`
	SQLitePath      string        `mapstructure:"sqlite_path"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// TemporalConfig holds Temporal configuration
type TemporalConfig struct {
	HostPort                           string  `mapstructure:"host_port"`
	Namespace                          string  `mapstructure:"namespace"`
	SyncTaskQueue                      string  `mapstructure:"sync_task_queue"`
	MaxConcurrentActivityExecutionSize int     `mapstructure:"max_concurrent_activity_execution_size"`
	WorkerActivitiesPerSecond          float64 `mapstructure:"worker_activities_per_second"`
}

// RedisConfig holds Redis configuration for the distributed rate limiter
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// RateLimitConfig holds the rate limit of one provider
type RateLimitConfig struct {
	RequestsPerSecond int           `mapstructure:"requests_per_second"`
	Burst             int           `mapstructure:"burst"`
	MaxQueueTime      time.Duration `mapstructure:"max_queue_time"`
}

// RateLimiterConfig holds the rate limiting proxy configuration
type RateLimiterConfig struct {
	Redis                   RedisConfig                `mapstructure:"redis"`
	RedisKeyPrefix          string                     `mapstructure:"redis_key_prefix"`
	EnableLocalFallback     bool                       `mapstructure:"enable_local_fallback"`
	LocalFallbackMultiplier float64                    `mapstructure:"local_fallback_multiplier"`
	MaxWorkers              int                        `mapstructure:"max_workers"`
	MaxQueueSize            int                        `mapstructure:"max_queue_size"`
	Providers               map[string]RateLimitConfig `mapstructure:"providers"`
}

// NetworkConfig describes one chain and the explorer serving it
type NetworkConfig struct {
	ChainID     int64  `mapstructure:"chain_id"`
	Name        string `mapstructure:"name"`
	Provider    string `mapstructure:"provider"`
	ExplorerURL string `mapstructure:"explorer_url"`
	APIKey      string `mapstructure:"api_key"`
	RPCURL      string `mapstructure:"rpc_url"`
}

// SyncConfig holds the paging parameters of the sync engine
type SyncConfig struct {
	PageSize           int           `mapstructure:"page_size"`
	PageBudget         int           `mapstructure:"page_budget"`
	TransferBatchSize  int           `mapstructure:"transfer_batch_size"`
	MaxTransferBatches int           `mapstructure:"max_transfer_batches"`
	ActivityTimeout    time.Duration `mapstructure:"activity_timeout"`
	ResetMarkerVersion int           `mapstructure:"reset_marker_version"`
	PoolSize           int           `mapstructure:"pool_size"`
	HTTPTimeout        time.Duration `mapstructure:"http_timeout"`
	VerifyBatchSize    int           `mapstructure:"verify_batch_size"`
}

// MetadataConfig holds NFT metadata lookup configuration
type MetadataConfig struct {
	IPFSGateways    []string      `mapstructure:"ipfs_gateways"`
	ArweaveGateways []string      `mapstructure:"arweave_gateways"`
	HTTPTimeout     time.Duration `mapstructure:"http_timeout"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	ReadTimeout  int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout  int    `mapstructure:"idle_timeout"`  // in seconds

	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// AuthConfig holds authentication configuration
type AuthConfig struct {
	JWTPublicKey string   `mapstructure:"jwt_public_key"`
	APIKeys      []string `mapstructure:"api_keys"`
}

// SchedulerConfig holds the watched account scheduler configuration
type SchedulerConfig struct {
	Interval    time.Duration `mapstructure:"interval"`
	BatchSize   int           `mapstructure:"batch_size"`
	MinInterval time.Duration `mapstructure:"min_interval"` // minimum time between two syncs of the same account
}

// SyncWorkerConfig holds configuration for sync-worker
type SyncWorkerConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	NATS        NATSConfig        `mapstructure:"nats"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Networks    []NetworkConfig   `mapstructure:"networks"`
	Sync        SyncConfig        `mapstructure:"sync"`
	Metadata    MetadataConfig    `mapstructure:"metadata"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig  `mapstructure:",squash"`
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Temporal    TemporalConfig    `mapstructure:"temporal"`
	Auth        AuthConfig        `mapstructure:"auth"`
	RateLimiter RateLimiterConfig `mapstructure:"rate_limiter"`
	Networks    []NetworkConfig   `mapstructure:"networks"`
	Sync        SyncConfig        `mapstructure:"sync"`
	Metadata    MetadataConfig    `mapstructure:"metadata"`

	// BlacklistPath points to a JSON file of spam token contracts hidden from token listings
	BlacklistPath string `mapstructure:"blacklist_path"`
}

// SchedulerServiceConfig holds configuration for the scheduler program
type SchedulerServiceConfig struct {
	BaseConfig `mapstructure:",squash"`
	Database   DatabaseConfig  `mapstructure:"database"`
	Temporal   TemporalConfig  `mapstructure:"temporal"`
	Scheduler  SchedulerConfig `mapstructure:"scheduler"`
}

// LoadSyncWorkerConfig loads configuration for sync-worker
func LoadSyncWorkerConfig(configFile string, envPath string) (*SyncWorkerConfig, error) {
	v := configureViper("sync-worker", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setSyncDefaults(v)
	setRateLimiterDefaults(v)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "ACCOUNT_SYNC")
	v.SetDefault("nats.connection_name", "sync-worker")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SyncWorkerConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateNetworks(cfg.Networks); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadAPIConfig loads configuration for the API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	setSyncDefaults(v)
	setRateLimiterDefaults(v)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 30)
	v.SetDefault("server.write_timeout", 120)
	v.SetDefault("server.idle_timeout", 120)

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateNetworks(cfg.Networks); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadSchedulerConfig loads configuration for the scheduler program
func LoadSchedulerConfig(configFile string, envPath string) (*SchedulerServiceConfig, error) {
	v := configureViper("scheduler", configFile, envPath)

	// Set defaults
	setDatabaseDefaults(v)
	setTemporalDefaults(v)
	v.SetDefault("database.max_open_conns", 5)
	v.SetDefault("database.max_idle_conns", 2)
	v.SetDefault("scheduler.interval", "1m")
	v.SetDefault("scheduler.batch_size", 100)
	v.SetDefault("scheduler.min_interval", "5m")

	if err := readConfig(v); err != nil {
		return nil, err
	}

	var cfg SchedulerServiceConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Driver == "postgres" && cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Scheduler.Interval <= 0 {
		return nil, errors.New("scheduler.interval must be positive")
	}

	return &cfg, nil
}

// Networks converts the configured networks into domain networks keyed by chain id
func Networks(cfgs []NetworkConfig) domain.Networks {
	networks := make(domain.Networks, len(cfgs))
	for _, n := range cfgs {
		networks[domain.ChainID(n.ChainID)] = domain.Network{
			ChainID:     domain.ChainID(n.ChainID),
			Name:        n.Name,
			Provider:    domain.ProviderKind(strings.ToLower(n.Provider)),
			ExplorerURL: n.ExplorerURL,
			APIKey:      n.APIKey,
			RPCURL:      n.RPCURL,
		}
	}
	return networks
}

func setDatabaseDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", "postgres")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.sqlite_path", "ff-account-sync.db")
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", "1h")
	v.SetDefault("database.conn_max_idle_time", "10m")
}

func setTemporalDefaults(v *viper.Viper) {
	v.SetDefault("temporal.host_port", "localhost:7233")
	v.SetDefault("temporal.namespace", "default")
	v.SetDefault("temporal.sync_task_queue", "account-sync-task-queue")
	v.SetDefault("temporal.max_concurrent_activity_execution_size", 50)
	v.SetDefault("temporal.worker_activities_per_second", 50)
}

func setSyncDefaults(v *viper.Viper) {
	v.SetDefault("sync.page_size", domain.DEFAULT_PAGE_SIZE)
	v.SetDefault("sync.page_budget", domain.DEFAULT_PAGE_BUDGET)
	v.SetDefault("sync.transfer_batch_size", domain.DEFAULT_TRANSFER_BATCH_SIZE)
	v.SetDefault("sync.max_transfer_batches", 10)
	v.SetDefault("sync.activity_timeout", "10m")
	v.SetDefault("sync.reset_marker_version", domain.DEFAULT_RESET_MARKER_VERSION)
	v.SetDefault("sync.pool_size", 16)
	v.SetDefault("sync.http_timeout", "30s")
	v.SetDefault("sync.verify_batch_size", 50)
	v.SetDefault("metadata.ipfs_gateways", []string{domain.DEFAULT_IPFS_GATEWAY})
	v.SetDefault("metadata.arweave_gateways", []string{domain.DEFAULT_ARWEAVE_GATEWAY})
	v.SetDefault("metadata.http_timeout", "20s")
}

func setRateLimiterDefaults(v *viper.Viper) {
	v.SetDefault("rate_limiter.enable_local_fallback", true)
	v.SetDefault("rate_limiter.local_fallback_multiplier", 0.5)
	v.SetDefault("rate_limiter.redis_key_prefix", "ff:account-sync:limiter:")
	v.SetDefault("rate_limiter.providers", map[string]interface{}{
		string(domain.ProviderEtherscan): map[string]interface{}{"requests_per_second": 5, "burst": 5},
		string(domain.ProviderCovalent):  map[string]interface{}{"requests_per_second": 4, "burst": 4},
		"metadata":                       map[string]interface{}{"requests_per_second": 10, "burst": 10},
		"rpc":                            map[string]interface{}{"requests_per_second": 20, "burst": 20},
	})
}

// readConfig reads the config file, tolerating a missing file so env-only deployments work
func readConfig(v *viper.Viper) error {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

func validateNetworks(networks []NetworkConfig) error {
	seen := make(map[int64]bool, len(networks))
	for _, n := range networks {
		if n.ChainID <= 0 {
			return fmt.Errorf("network %q: chain_id must be positive", n.Name)
		}
		if seen[n.ChainID] {
			return fmt.Errorf("network %d configured twice", n.ChainID)
		}
		seen[n.ChainID] = true

		switch domain.ProviderKind(strings.ToLower(n.Provider)) {
		case domain.ProviderEtherscan, domain.ProviderCovalent:
		default:
			return fmt.Errorf("network %d: %w: %s", n.ChainID, domain.ErrProviderNotConfigured, n.Provider)
		}
		if n.ExplorerURL == "" {
			return fmt.Errorf("network %d: explorer_url is required", n.ChainID)
		}
	}
	return nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_SYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.driver",
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.sqlite_path",
		"database.auto_migrate",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Temporal
		"temporal.host_port",
		"temporal.namespace",
		"temporal.sync_task_queue",
		"temporal.max_concurrent_activity_execution_size",
		"temporal.worker_activities_per_second",
		// Rate limiter
		"rate_limiter.redis.addr",
		"rate_limiter.redis.password",
		"rate_limiter.redis.db",
		"rate_limiter.redis_key_prefix",
		"rate_limiter.enable_local_fallback",
		"rate_limiter.local_fallback_multiplier",
		"rate_limiter.max_workers",
		"rate_limiter.max_queue_size",
		// Sync
		"sync.page_size",
		"sync.page_budget",
		"sync.transfer_batch_size",
		"sync.max_transfer_batches",
		"sync.activity_timeout",
		"sync.reset_marker_version",
		"sync.pool_size",
		"sync.http_timeout",
		"sync.verify_batch_size",
		// Metadata
		"metadata.ipfs_gateways",
		"metadata.arweave_gateways",
		"metadata.http_timeout",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.allowed_origins",
		// Auth
		"auth.jwt_public_key",
		"auth.api_keys",
		// Scheduler
		"scheduler.interval",
		"scheduler.batch_size",
		"scheduler.min_interval",
		// Token blacklist
		"blacklist_path",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	if c.Driver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
