package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "golang.org/x/crypto/x509roots/fallback" // Embed CA certs for scratch container

	"github.com/ericfisherdev/nichescript/internal/adapter/driven/gemini"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/kvcollection"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/memory"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/postgres"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/sealed"
	sqliteadapter "github.com/ericfisherdev/nichescript/internal/adapter/driven/sqlite"
	"github.com/ericfisherdev/nichescript/internal/adapter/driven/stub"
	httphandler "github.com/ericfisherdev/nichescript/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/nichescript/internal/adapter/driving/web"
	"github.com/ericfisherdev/nichescript/internal/application"
	"github.com/ericfisherdev/nichescript/internal/config"
	"github.com/ericfisherdev/nichescript/internal/domain/model"
	"github.com/ericfisherdev/nichescript/internal/domain/port/driven"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load .env (optional) and configuration.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("failed to read .env", "error", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	slog.Info("config loaded",
		"listen_addr", cfg.ListenAddr,
		"store", cfg.Store,
		"db_path", cfg.DBPath,
		"sealed", cfg.SecretKey != nil,
		"provider_timeout", cfg.ProviderTimeout,
	)

	// 2. Setup signal-based context (SIGINT, SIGTERM).
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Open the key-value store.
	kv, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// 4. Seal stored values when a secret key is configured.
	if cfg.SecretKey != nil {
		if kv, err = sealed.New(kv, cfg.SecretKey); err != nil {
			return err
		}
	}

	logger := slog.Default()

	// 5. Wire providers.
	registry := application.NewProviderRegistry()
	registry.Replace(model.ProviderGemini, application.WrapProvider(
		gemini.NewClient(gemini.Options{
			BaseURL:         cfg.GeminiBaseURL,
			ValidationModel: cfg.GeminiValidationModel,
			Timeout:         cfg.ProviderTimeout,
		}),
		application.WithLogging(logger, model.ProviderGemini),
	))
	registry.Replace(model.ProviderChatGPT, application.WrapProvider(
		stub.NewClient(cfg.StubDelay, cfg.StubValidateDelay),
		application.WithLogging(logger, model.ProviderChatGPT),
	))
	gateway := application.NewProviderGateway(registry)

	// 6. Create services.
	credentialSvc := application.NewCredentialService(kvcollection.NewCredentialStore(kv, logger), gateway, logger)
	sessionSvc := application.NewSessionService(kvcollection.NewSessionStore(kv, logger), logger)
	workspace := application.NewWorkspace(credentialSvc, gateway, sessionSvc, logger)

	// 7. Register API routes.
	apiHandler := httphandler.NewHandler(credentialSvc, sessionSvc, workspace, registry, logger)
	mux := http.NewServeMux()
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	// 8. Register GUI routes.
	renderer, err := webhandler.NewScriptRenderer(webhandler.DefaultRenderCacheSize)
	if err != nil {
		return err
	}
	webHandler := webhandler.NewHandler(credentialSvc, sessionSvc, workspace, registry, renderer, logger)
	webhandler.RegisterRoutes(mux, webHandler)

	// Apply middleware.
	handler := httphandler.ApplyMiddleware(mux, logger)

	// Provider calls run inside the request, so writes wait for them.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.ProviderTimeout + 30*time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			stop()
		}
	}()

	// 9. Log startup complete.
	slog.Info("nichescript started",
		"listen_addr", cfg.ListenAddr,
		"providers", registry.Registered(),
	)

	// 10. Wait for shutdown signal.
	<-ctx.Done()
	slog.Info("shutting down")

	// 11. Graceful shutdown with 10s timeout.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

// openStore opens the configured backend and returns a close func that logs
// its own errors.
func openStore(ctx context.Context, cfg *config.Config) (driven.KeyValueStore, func(), error) {
	switch cfg.Store {
	case config.StoreMemory:
		slog.Info("using in-memory store; data is lost on exit")
		return memory.NewKVStore(), func() {}, nil

	case config.StorePostgres:
		repo, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		slog.Info("postgres store opened")
		return repo, repo.Close, nil

	case config.StoreSQLite:
		db, err := sqliteadapter.NewDB(ctx, cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() {
			if closeErr := db.Close(); closeErr != nil {
				slog.Error("error closing database", "error", closeErr)
			}
		}
		slog.Info("database opened", "path", cfg.DBPath)

		version, err := sqliteadapter.RunMigrations(db.Writer)
		if err != nil {
			closeDB()
			return nil, nil, err
		}
		slog.Info("migrations complete", "version", version)
		return sqliteadapter.NewKVRepo(db), closeDB, nil

	default:
		return nil, nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}
