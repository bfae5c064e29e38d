package ports

import (
	"context"

	"github.com/petitpas/storefront/internal/domain"
)

// RateProvider fetches a full exchange-rate table for the given base
// currency; consumed once per refresh cycle, unauthenticated.
type RateProvider interface {
	FetchRates(ctx context.Context, base string) (domain.RateTable, error)
}

// RateStore persists the {rates, timestamp} snapshot between runs so a warm
// start within the staleness window needs no network call.
type RateStore interface {
	Load(ctx context.Context) (domain.RateSnapshot, error)
	Save(ctx context.Context, snapshot domain.RateSnapshot) error
}
