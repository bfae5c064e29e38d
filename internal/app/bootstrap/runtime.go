package bootstrap

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

	"github.com/google/uuid"

	cacheadapter "github.com/petitpas/storefront/internal/adapters/cache"
	"github.com/petitpas/storefront/internal/adapters/commerce"
	eventadapter "github.com/petitpas/storefront/internal/adapters/events"
	"github.com/petitpas/storefront/internal/adapters/fx"
	httpadapter "github.com/petitpas/storefront/internal/adapters/http"
	"github.com/petitpas/storefront/internal/adapters/security"
	"github.com/petitpas/storefront/internal/application"
	"github.com/petitpas/storefront/internal/ports"
)

// activityTopic is the single Kafka topic carrying all storefront events.
const activityTopic = "storefront.activity"

type Runtime struct {
	cfg        Config
	logger     *slog.Logger
	service    *application.Service
	httpServer *http.Server
	cleanupFn  func(context.Context)
}

func NewRuntime(ctx context.Context, configPath string) (*Runtime, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)
	logger.Info("bootstrapping storefront api", "http_port", cfg.HTTPPort)

	redisClient, err := cacheadapter.Connect(ctx, cfg.RedisURL)
	if err != nil {
		return nil, fmt.Errorf("connect redis: %w", err)
	}

	secret := cfg.SessionSecret
	if secret == "" {
		logger.Warn("using ephemeral session secret for local/dev runtime")
		secret = uuid.NewString()
	}
	signer, err := security.NewSessionSigner(secret)
	if err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("init session signer: %w", err)
	}

	gateway := commerce.NewClient(cfg.GatewayEndpoint, cfg.GatewayToken, &http.Client{
		Timeout: cfg.GatewayTimeout,
	})
	rates := fx.NewProvider(cfg.RatesURLTemplate, &http.Client{
		Timeout: cfg.RatesTimeout,
	})

	var publisher ports.EventPublisher
	var closePublisher func() error
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher, err := eventadapter.NewKafkaPublisher(cfg.KafkaBrokers, map[string]string{
			"customer.registered": activityTopic,
			"customer.logged_in":  activityTopic,
			"cart.line_added":     activityTopic,
		})
		if err != nil {
			_ = redisClient.Close()
			return nil, fmt.Errorf("init kafka publisher: %w", err)
		}
		publisher = kafkaPublisher
		closePublisher = kafkaPublisher.Close
	} else {
		logger.Warn("no kafka brokers configured, events go to the log")
		publisher = eventadapter.NewLoggingPublisher(logger)
	}

	svc := application.NewService(application.Dependencies{
		Config: application.Config{
			SessionTTL:          cfg.SessionTTL,
			RateStaleness:       cfg.RateStaleness,
			RateRefreshInterval: cfg.RateRefreshInterval,
			SearchIndexTTL:      cfg.SearchIndexTTL,
		},
		Logger:    logger,
		Gateway:   gateway,
		Rates:     rates,
		RateStore: cacheadapter.NewRedisRateStore(redisClient),
		Sessions:  cacheadapter.NewRedisSessionStore(redisClient),
		Signer:    signer,
		Events:    publisher,
	})

	handler := httpadapter.NewHandler(svc)
	router := httpadapter.NewRouter(handler)
	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Runtime{
		cfg:        cfg,
		logger:     logger,
		service:    svc,
		httpServer: httpServer,
		cleanupFn: func(ctx context.Context) {
			if closePublisher != nil {
				_ = closePublisher()
			}
			_ = redisClient.Close()
		},
	}, nil
}

func (r *Runtime) RunAPI(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Seed the rate table before serving so the first render never waits
	// on the FX provider, then keep it fresh in the background.
	r.service.LoadRates(ctx)
	go r.service.RunRateRefresher(ctx)

	errCh := make(chan error, 1)
	go func() {
		r.logger.Info("http server started", "addr", r.httpServer.Addr)
		if err := r.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		r.logger.Info("shutdown signal received")
	case err := <-errCh:
		r.logger.Error("server failure", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = r.httpServer.Shutdown(shutdownCtx)
	r.cleanupFn(shutdownCtx)
	return nil
}
