package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/api/middleware"
	"github.com/feral-file/ff-account-sync/internal/api/server"
	"github.com/feral-file/ff-account-sync/internal/api/shared/executor"
	"github.com/feral-file/ff-account-sync/internal/config"
	"github.com/feral-file/ff-account-sync/internal/fetcher"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/metadata"
	"github.com/feral-file/ff-account-sync/internal/providers/covalent"
	"github.com/feral-file/ff-account-sync/internal/providers/ethereum"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
	temporal "github.com/feral-file/ff-account-sync/internal/providers/temporal"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
	"github.com/feral-file/ff-account-sync/internal/reconciler"
	"github.com/feral-file/ff-account-sync/internal/registry"
	"github.com/feral-file/ff-account-sync/internal/store"
	"github.com/feral-file/ff-account-sync/internal/syncer"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadAPIConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "api-server",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Account Sync API")

	// Connect to database
	db, err := store.Open(store.OpenOptions{
		Driver:          cfg.Database.Driver,
		DSN:             cfg.Database.DSN(),
		Debug:           cfg.Debug,
		AutoMigrate:     cfg.Database.AutoMigrate,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err), zap.String("driver", cfg.Database.Driver))
	}
	logger.InfoCtx(ctx, "Connected to database",
		zap.Int("max_open_conns", cfg.Database.MaxOpenConns),
		zap.Int("max_idle_conns", cfg.Database.MaxIdleConns),
	)

	// Initialize store
	dataStore := store.NewStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()

	// Initialize rate limiting proxy shared with the sync workers through redis
	var redisClient adapter.RedisClient
	if cfg.RateLimiter.Redis.Addr != "" {
		redisClient = adapter.NewRedisClient(adapter.RedisOptions{
			Addr:     cfg.RateLimiter.Redis.Addr,
			Password: cfg.RateLimiter.Redis.Password,
			DB:       cfg.RateLimiter.Redis.DB,
		})
	}
	rateLimitProxy, err := ratelimit.NewProxy(cfg.RateLimiter, redisClient, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create rate limit proxy", zap.Error(err))
	}
	defer func() {
		if err := rateLimitProxy.Close(); err != nil {
			logger.Error(err, zap.String("component", "rate_limit_proxy"))
		}
	}()

	// Initialize the syncer backing older-history reads
	ethPool := ethereum.NewPool(adapter.NewEthClientDialer(), rateLimitProxy)
	defer ethPool.Close()

	metadataResolver := metadata.NewResolver(
		metadata.Config{
			IPFSGateways:    cfg.Metadata.IPFSGateways,
			ArweaveGateways: cfg.Metadata.ArweaveGateways,
		},
		ethPool,
		adapter.NewHTTPClient(cfg.Metadata.HTTPTimeout),
		rateLimitProxy,
		jsonAdapter,
		adapter.NewJCS(),
		adapter.NewBase64(),
	)
	pageFetcher := fetcher.New(
		fetcher.Config{TransferBatchSize: cfg.Sync.TransferBatchSize},
		etherscan.NewClient(httpClient, rateLimitProxy, jsonAdapter),
		covalent.NewClient(httpClient, rateLimitProxy, jsonAdapter),
		dataStore,
	)
	accountSyncer := syncer.New(
		syncer.Config{
			PageSize:           cfg.Sync.PageSize,
			PageBudget:         cfg.Sync.PageBudget,
			ResetMarkerVersion: cfg.Sync.ResetMarkerVersion,
			VerifyBatchSize:    cfg.Sync.VerifyBatchSize,
		},
		pageFetcher,
		reconciler.New(dataStore, metadataResolver, clockAdapter),
		dataStore,
		ethPool,
		clockAdapter,
	)
	runner := syncer.NewRunner(accountSyncer, cfg.Sync.PoolSize)
	defer runner.Close()

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("host_port", cfg.Temporal.HostPort))

	// Load the token blacklist if configured
	var blacklist registry.BlacklistRegistry
	if cfg.BlacklistPath != "" {
		blacklist, err = registry.NewBlacklistRegistryLoader(adapter.NewFileSystem(), jsonAdapter).Load(cfg.BlacklistPath)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to load token blacklist", zap.Error(err), zap.String("path", cfg.BlacklistPath))
		}
		logger.InfoCtx(ctx, "Loaded token blacklist", zap.String("path", cfg.BlacklistPath))
	}

	syncTrigger := temporal.NewSyncTrigger(temporalClient, cfg.Temporal.SyncTaskQueue)
	apiExecutor := executor.NewExecutor(dataStore, accountSyncer, runner, syncTrigger, config.Networks(cfg.Networks), blacklist)

	// Create server config
	serverConfig := server.Config{
		Debug:          cfg.Debug,
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout:   time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:    time.Duration(cfg.Server.IdleTimeout) * time.Second,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Auth: middleware.AuthConfig{
			JWTPublicKey: cfg.Auth.JWTPublicKey,
			APIKeys:      cfg.Auth.APIKeys,
		},
	}

	srv := server.New(serverConfig, apiExecutor)

	// Start server in a goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil {
			errCh <- err
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
	case err := <-errCh:
		logger.ErrorCtx(ctx, err, zap.String("component", "server"))
		cancel()
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	logger.InfoCtx(shutdownCtx, "Shutting down server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.ErrorCtx(shutdownCtx, err, zap.String("component", "server"))
	}

	logger.Info("API server stopped")
}
