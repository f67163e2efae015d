package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"private-tips/config"
	"private-tips/internal/adapter/chain/ethereum"
	httpHandler "private-tips/internal/adapter/http/handler"
	memStorage "private-tips/internal/adapter/storage/memory"
	pgStorage "private-tips/internal/adapter/storage/postgres"
	redisStorage "private-tips/internal/adapter/storage/redis"
	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/internal/service"
	"private-tips/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// stores groups the persistence ports selected by storage.driver.
type stores struct {
	balances    ports.BalanceStore
	tips        ports.TipRepository
	guard       ports.RelayGuard
	idempotency ports.IdempotencyCache
	audit       ports.AuditRepository // nil unless postgres
	rateLimiter ports.RateLimiter
	health      []ports.HealthChecker
	closers     []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

func main() {
	if err := config.LoadDotEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Load configuration
	cfg, err := config.Load(os.Getenv("TIPS_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("storage", cfg.Storage.Driver).
		Str("strategy", cfg.Workflow.Strategy).
		Str("encryption", cfg.Encryption.Backend).
		Msg("Starting Private Tips API")

	ctx := context.Background()

	st, err := openStores(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer st.close()

	// Chain client
	chain, err := ethereum.Dial(ctx, cfg.Chain.RPCURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to dial Ethereum RPC")
	}
	defer chain.Close()

	// Initialize core services
	enc, err := service.NewEncryptor(cfg.Encryption.Backend, cfg.Encryption.Key)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize encryption backend")
	}
	kols, err := service.LoadKolDirectory(cfg.Kols.File)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load KOL directory")
	}

	relaySvc, err := service.NewRelayService(chain, st.guard, st.idempotency, enc, service.RelayOptions{
		PrivateKey:      cfg.Chain.PrivateKey,
		ChainID:         cfg.Chain.ChainID,
		NetworkName:     cfg.Chain.NetworkName,
		ExplorerURL:     cfg.Chain.ExplorerURL,
		ContractAddress: cfg.Chain.ContractAddress,
		ConfirmTimeout:  cfg.Relay.ConfirmTimeout,
		PollInterval:    cfg.Relay.PollInterval,
		VerifyBinding:   cfg.Relay.VerifyBinding,
		IdempotencyTTL:  cfg.Relay.IdempotencyTTL,
		HandleClaimTTL:  cfg.Relay.HandleClaimTTL,
	}, logger.Component(log, "relay"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize relay")
	}
	if cfg.Chain.PrivateKey == "" {
		log.Warn().Msg("No relay private key configured, relayed transactions are disabled")
	} else {
		log.Info().Str("signer", relaySvc.SignerAddress().Hex()).Msg("Relay signer loaded")
	}

	balanceSvc := service.NewBalanceService(st.balances, kols, enc, logger.Component(log, "balance"))
	tipSvc := service.NewTipWorkflow(kols, enc, relaySvc, balanceSvc, st.tips, st.guard, service.WorkflowOptions{
		Strategy:        domain.TipStrategy(cfg.Workflow.Strategy),
		ContractAddress: cfg.Chain.ContractAddress,
		ConfirmTimeout:  cfg.Workflow.ConfirmTimeout,
		NoticeTTL:       cfg.Workflow.NoticeTTL,
		BusyTTL:         cfg.Workflow.BusyTTL,
	}, logger.Component(log, "workflow"))
	decryptSvc := service.NewDecryptService(enc, service.DecryptOptions{
		ChainID:           cfg.Chain.ChainID,
		VerifyingContract: cfg.Chain.ContractAddress,
		PublicContracts:   cfg.Decrypt.PublicContracts,
	}, logger.Component(log, "decrypt"))
	auditSvc := service.NewAuditService(st.audit, logger.Component(log, "audit"))

	// Initialize health checkers
	healthCheckers := append([]ports.HealthChecker{ethereum.NewHealthCheck(chain)}, st.health...)

	// Load OpenAPI spec for Swagger UI
	if specBytes, err := os.ReadFile("docs/api/openapi.yaml"); err == nil {
		httpHandler.SetSwaggerSpec(specBytes)
		log.Info().Msg("OpenAPI spec loaded for Swagger UI at /swagger")
	} else {
		log.Warn().Err(err).Msg("OpenAPI spec not found, Swagger UI will be unavailable")
	}

	// Setup Gin router with all routes
	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Kols:           kols,
		Tips:           tipSvc,
		Balances:       balanceSvc,
		Relayer:        relaySvc,
		Decrypt:        decryptSvc,
		RateLimiter:    st.rateLimiter,
		AuditSvc:       auditSvc,
		HealthCheckers: healthCheckers,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Logger:         log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// openStores connects the storage driver and, when enabled, Redis. Rate
// limiting uses Redis when it is available and process memory otherwise.
func openStores(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*stores, error) {
	st := &stores{}

	var rdb goredis.UniversalClient
	if cfg.Redis.Enabled {
		client, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return nil, err
		}
		rdb = client
		st.closers = append(st.closers, func() { _ = client.Close() })
		st.health = append(st.health, redisStorage.NewHealthCheck(client))
		st.rateLimiter = redisStorage.NewRateLimitStore(client)
	} else {
		st.rateLimiter = memStorage.NewRateLimitStore()
	}

	switch cfg.Storage.Driver {
	case "redis":
		st.balances = redisStorage.NewBalanceStore(rdb)
		st.tips = redisStorage.NewTipRepository(rdb, redisStorage.DefaultTipTTL)
		st.guard = redisStorage.NewRelayGuard(rdb)
		st.idempotency = redisStorage.NewIdempotencyCache(rdb)

	case "postgres":
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			st.close()
			return nil, err
		}
		st.closers = append(st.closers, pool.Close)
		if err := pgStorage.Migrate(ctx, pool); err != nil {
			st.close()
			return nil, err
		}
		st.balances = pgStorage.NewBalanceRepo(pool)
		st.tips = pgStorage.NewTipRepo(pool)
		st.guard = pgStorage.NewRelayGuard(pool)
		st.idempotency = pgStorage.NewIdempotencyRepo(pool)
		st.audit = pgStorage.NewAuditRepo(pool)
		st.health = append(st.health, pgStorage.NewHealthCheck(pool))

	default:
		st.balances = memStorage.NewBalanceStore()
		st.tips = memStorage.NewTipRepository()
		st.guard = memStorage.NewRelayGuard()
		st.idempotency = memStorage.NewIdempotencyCache()
	}

	log.Info().Str("driver", cfg.Storage.Driver).Bool("redis", cfg.Redis.Enabled).Msg("Storage initialized")
	return st, nil
}
