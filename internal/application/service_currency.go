package application

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

// LoadRates initializes the rate cache: a persisted snapshot younger than
// the staleness window is adopted without any network call; anything else
// triggers exactly one refresh. Never returns an error — price display must
// not block on FX availability.
func (s *Service) LoadRates(ctx context.Context) {
	snapshot, err := s.rateStore.Load(ctx)
	if err == nil && len(snapshot.Rates) > 0 && s.nowFn().Sub(snapshot.FetchedAt) < s.cfg.RateStaleness {
		s.adoptRates(snapshot.Rates, snapshot.FetchedAt)
		return
	}
	if err != nil {
		s.logger.Warn("rate snapshot load failed", "operation", "fx_load", "error", err.Error())
	}
	s.RefreshRates(ctx)
}

// RefreshRates fetches a fresh table and replaces the cached one wholesale.
// A failed refresh is logged and absorbed: callers keep converting with the
// last-known (possibly fallback) table, and nothing is persisted.
func (s *Service) RefreshRates(ctx context.Context) {
	table, err := s.rates.FetchRates(ctx, domain.BaseCurrency)
	if err != nil {
		s.logger.Warn("rate refresh failed, keeping last-known table",
			"operation", "fx_refresh",
			"outcome", "failure",
			"error", err.Error(),
		)
		return
	}
	table[domain.BaseCurrency] = 1

	now := s.nowFn()
	s.adoptRates(table, now)
	if err := s.rateStore.Save(ctx, domain.RateSnapshot{Rates: table, FetchedAt: now}); err != nil {
		s.logger.Warn("rate snapshot save failed", "operation", "fx_refresh", "error", err.Error())
	}
}

// RunRateRefresher re-invokes RefreshRates on the configured interval until
// ctx is cancelled.
func (s *Service) RunRateRefresher(ctx context.Context) {
	ticker := time.NewTicker(s.cfg.RateRefreshInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RefreshRates(ctx)
		}
	}
}

func (s *Service) adoptRates(table domain.RateTable, fetchedAt time.Time) {
	s.rateMu.Lock()
	s.rateTable = table.Clone()
	s.rateFetched = fetchedAt
	s.rateMu.Unlock()
}

// Convert turns a base-currency amount into the target currency, rounded to
// two decimals. Pure function of current cache state; no I/O.
func (s *Service) Convert(amountInBase float64, target string) (float64, error) {
	target = strings.ToUpper(target)
	if !domain.SupportedCurrency(target) {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, target)
	}
	s.rateMu.RLock()
	rate := s.rateTable[target]
	s.rateMu.RUnlock()
	return math.Round(amountInBase*rate*100) / 100, nil
}

// FormatPrice renders a base-currency amount as a display string in the
// target currency ("Rs1234.00", "$26.54"). Unsupported codes fall back to
// the base currency so price rendering never fails.
func (s *Service) FormatPrice(amountInBase float64, target string) string {
	target = strings.ToUpper(target)
	if !domain.SupportedCurrency(target) {
		target = domain.BaseCurrency
	}
	converted, _ := s.Convert(amountInBase, target)
	return fmt.Sprintf("%s%.2f", domain.CurrencySymbol(target), converted)
}

// Quote is FormatPrice plus the numeric pieces, for API consumers.
func (s *Service) Quote(amountInBase float64, target string) (PriceQuote, error) {
	target = strings.ToUpper(target)
	converted, err := s.Convert(amountInBase, target)
	if err != nil {
		return PriceQuote{}, err
	}
	return PriceQuote{
		Amount:    converted,
		Currency:  target,
		Formatted: fmt.Sprintf("%s%.2f", domain.CurrencySymbol(target), converted),
	}, nil
}

// SetCurrency stores the visitor's currency preference; only explicit user
// selection mutates it.
func (s *Service) SetCurrency(ctx context.Context, sessionID, currency string) error {
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if !domain.SupportedCurrency(currency) {
		return fmt.Errorf("%w: %s", domain.ErrUnsupportedCurrency, currency)
	}
	return s.sessions.SetCurrency(ctx, sessionID, currency, s.cfg.SessionTTL)
}

// CurrencyInfo reports the visitor's selected currency and the current
// rate table.
func (s *Service) CurrencyInfo(ctx context.Context, sessionID string) (CurrencyInfo, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return CurrencyInfo{}, fmt.Errorf("load session: %w", err)
	}
	currency := record.Currency
	if currency == "" {
		currency = domain.BaseCurrency
	}

	s.rateMu.RLock()
	table := s.rateTable.Clone()
	fetched := s.rateFetched
	s.rateMu.RUnlock()

	info := CurrencyInfo{
		Currency:  currency,
		Symbol:    domain.CurrencySymbol(currency),
		Supported: domain.SupportedCurrencies(),
		Rates:     table,
	}
	if !fetched.IsZero() {
		info.FetchedAt = fetched.Format(time.RFC3339)
	}
	return info, nil
}
