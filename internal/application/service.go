package application

import (
	"log/slog"
	"sync"
	"time"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

type Config struct {
	// SessionTTL bounds both the signed visitor token and the Redis record.
	SessionTTL time.Duration
	// RateStaleness is the window inside which a persisted snapshot is
	// adopted without a provider call.
	RateStaleness time.Duration
	// RateRefreshInterval drives the periodic refresher.
	RateRefreshInterval time.Duration
	// SearchIndexTTL bounds how long the in-memory search index is served
	// before being rebuilt from the gateway.
	SearchIndexTTL time.Duration
}

// Service implements the storefront use-cases over the injected ports.
// The composition root owns construction and lifecycle; nothing here is
// looked up ambiently.
type Service struct {
	cfg       Config
	logger    *slog.Logger
	gateway   ports.CommerceGateway
	rates     ports.RateProvider
	rateStore ports.RateStore
	sessions  ports.SessionStore
	signer    ports.SessionTokenSigner
	events    ports.EventPublisher
	nowFn     func() time.Time

	// Exchange-rate cache state. The table is replaced wholesale under the
	// write lock; Convert and FormatPrice only ever take the read lock.
	rateMu      sync.RWMutex
	rateTable   domain.RateTable
	rateFetched time.Time

	// Search index state, rebuilt lazily when older than SearchIndexTTL.
	searchMu      sync.RWMutex
	searchIndex   []domain.SearchItem
	searchBuiltAt time.Time
}

type Dependencies struct {
	Config    Config
	Logger    *slog.Logger
	Gateway   ports.CommerceGateway
	Rates     ports.RateProvider
	RateStore ports.RateStore
	Sessions  ports.SessionStore
	Signer    ports.SessionTokenSigner
	Events    ports.EventPublisher
}

func NewService(deps Dependencies) *Service {
	cfg := deps.Config
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 30 * 24 * time.Hour
	}
	if cfg.RateStaleness <= 0 {
		cfg.RateStaleness = time.Hour
	}
	if cfg.RateRefreshInterval <= 0 {
		cfg.RateRefreshInterval = time.Hour
	}
	if cfg.SearchIndexTTL <= 0 {
		cfg.SearchIndexTTL = 5 * time.Minute
	}
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		cfg:       cfg,
		logger:    logger,
		gateway:   deps.Gateway,
		rates:     deps.Rates,
		rateStore: deps.RateStore,
		sessions:  deps.Sessions,
		signer:    deps.Signer,
		events:    deps.Events,
		nowFn:     func() time.Time { return time.Now().UTC() },
		rateTable: domain.FallbackRates.Clone(),
	}
}
