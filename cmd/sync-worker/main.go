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
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/ff-account-sync/internal/adapter"
	"github.com/feral-file/ff-account-sync/internal/config"
	"github.com/feral-file/ff-account-sync/internal/fetcher"
	"github.com/feral-file/ff-account-sync/internal/logger"
	"github.com/feral-file/ff-account-sync/internal/messaging"
	"github.com/feral-file/ff-account-sync/internal/metadata"
	"github.com/feral-file/ff-account-sync/internal/providers/covalent"
	"github.com/feral-file/ff-account-sync/internal/providers/ethereum"
	"github.com/feral-file/ff-account-sync/internal/providers/etherscan"
	"github.com/feral-file/ff-account-sync/internal/providers/jetstream"
	temporal "github.com/feral-file/ff-account-sync/internal/providers/temporal"
	"github.com/feral-file/ff-account-sync/internal/ratelimit"
	"github.com/feral-file/ff-account-sync/internal/reconciler"
	"github.com/feral-file/ff-account-sync/internal/store"
	"github.com/feral-file/ff-account-sync/internal/syncer"
	"github.com/feral-file/ff-account-sync/internal/workflows"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadSyncWorkerConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Debug:           cfg.Debug,
		Service:         "sync-worker",
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Sync Worker")

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
	logger.InfoCtx(ctx, "Connected to database", zap.String("driver", cfg.Database.Driver))

	// Initialize store
	dataStore := store.NewStore(db)

	// Initialize adapters
	httpClient := adapter.NewHTTPClient(cfg.Sync.HTTPTimeout)
	jsonAdapter := adapter.NewJSON()
	clockAdapter := adapter.NewClock()

	// Initialize rate limiting proxy, distributed when redis is configured
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

	// Initialize explorer and RPC clients
	etherscanClient := etherscan.NewClient(httpClient, rateLimitProxy, jsonAdapter)
	covalentClient := covalent.NewClient(httpClient, rateLimitProxy, jsonAdapter)
	ethPool := ethereum.NewPool(adapter.NewEthClientDialer(), rateLimitProxy)
	defer ethPool.Close()

	// Initialize metadata resolver and reconciler
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
	eventReconciler := reconciler.New(dataStore, metadataResolver, clockAdapter)

	// Initialize syncer
	pageFetcher := fetcher.New(fetcher.Config{TransferBatchSize: cfg.Sync.TransferBatchSize}, etherscanClient, covalentClient, dataStore)
	accountSyncer := syncer.New(
		syncer.Config{
			PageSize:           cfg.Sync.PageSize,
			PageBudget:         cfg.Sync.PageBudget,
			ResetMarkerVersion: cfg.Sync.ResetMarkerVersion,
			VerifyBatchSize:    cfg.Sync.VerifyBatchSize,
		},
		pageFetcher,
		eventReconciler,
		dataStore,
		ethPool,
		clockAdapter,
	)

	// Connect to NATS JetStream for sync completed events
	var publisher messaging.Publisher
	if cfg.NATS.URL != "" {
		publisher, err = jetstream.NewPublisher(ctx,
			jetstream.Config{
				URL:            cfg.NATS.URL,
				StreamName:     cfg.NATS.StreamName,
				MaxReconnects:  cfg.NATS.MaxReconnects,
				ReconnectWait:  cfg.NATS.ReconnectWait,
				ConnectionName: cfg.NATS.ConnectionName,
			},
			adapter.NewNatsJetStream(),
			jsonAdapter,
		)
		if err != nil {
			logger.FatalCtx(ctx, "Failed to connect to NATS", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer publisher.Close()
		logger.InfoCtx(ctx, "Connected to NATS JetStream", zap.String("stream", cfg.NATS.StreamName))
	} else {
		logger.WarnCtx(ctx, "NATS not configured, sync completed events will not be published")
	}

	networks := config.Networks(cfg.Networks)
	for _, network := range networks {
		logger.InfoCtx(ctx, "Configured network",
			zap.String("name", network.Name),
			zap.Int64("chainID", int64(network.ChainID)),
			zap.String("provider", string(network.Provider)),
		)
	}

	// Initialize executor for activities
	executor := workflows.NewExecutor(accountSyncer, networks, publisher, dataStore, clockAdapter)

	// Connect to Temporal with logger integration
	temporalClient, err := client.Dial(client.Options{
		HostPort:  cfg.Temporal.HostPort,
		Namespace: cfg.Temporal.Namespace,
		Logger:    temporal.NewZapLoggerAdapter(logger.Default()),
	})
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to Temporal", zap.Error(err), zap.String("host_port", cfg.Temporal.HostPort))
	}
	defer temporalClient.Close()
	logger.InfoCtx(ctx, "Connected to Temporal", zap.String("namespace", cfg.Temporal.Namespace))

	// Create Temporal worker
	temporalWorker := worker.New(
		temporalClient,
		cfg.Temporal.SyncTaskQueue,
		worker.Options{
			MaxConcurrentActivityExecutionSize: cfg.Temporal.MaxConcurrentActivityExecutionSize,
			WorkerActivitiesPerSecond:          cfg.Temporal.WorkerActivitiesPerSecond,
			Interceptors: []interceptor.WorkerInterceptor{
				temporal.NewSentryActivityInterceptor(),
			},
		})
	logger.InfoCtx(ctx, "Created Temporal worker", zap.String("taskQueue", cfg.Temporal.SyncTaskQueue))

	syncWorker := workflows.NewSyncWorker(executor, workflows.SyncWorkerConfig{
		TransferBatchSize:  cfg.Sync.TransferBatchSize,
		MaxTransferBatches: cfg.Sync.MaxTransferBatches,
		ActivityTimeout:    cfg.Sync.ActivityTimeout,
	})

	// Register workflows under the names used by the sync trigger
	temporalWorker.RegisterWorkflowWithOptions(syncWorker.SyncAccount, workflow.RegisterOptions{Name: temporal.SyncAccountWorkflow})
	temporalWorker.RegisterWorkflowWithOptions(syncWorker.SyncAccounts, workflow.RegisterOptions{Name: temporal.SyncAccountsWorkflow})
	logger.InfoCtx(ctx, "Registered workflows")

	// Register activities
	temporalWorker.RegisterActivity(executor.CheckResetMarker)
	temporalWorker.RegisterActivity(executor.SyncTransactions)
	temporalWorker.RegisterActivity(executor.ReadTransfers)
	temporalWorker.RegisterActivity(executor.HydrateTransactions)
	temporalWorker.RegisterActivity(executor.VerifyUnknownTokens)
	temporalWorker.RegisterActivity(executor.PublishSyncCompleted)
	temporalWorker.RegisterActivity(executor.MarkAccountSynced)
	logger.InfoCtx(ctx, "Registered activities")

	// Start worker
	if err := temporalWorker.Start(); err != nil {
		logger.FatalCtx(ctx, "Failed to start worker", zap.Error(err))
	}
	logger.InfoCtx(ctx, "Worker started and listening for tasks")

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))

	cancel()
	temporalWorker.Stop()
	logger.Info("Sync worker stopped")
}
