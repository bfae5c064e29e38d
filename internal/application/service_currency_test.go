package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

func TestLoadRatesAdoptsFreshSnapshotWithoutFetching(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.rateStore.snapshot = domain.RateSnapshot{
		Rates:     domain.RateTable{"MUR": 1, "USD": 0.025, "AUD": 0.03, "CAD": 0.03, "EUR": 0.02, "GBP": 0.017},
		FetchedAt: f.now.Add(-10 * time.Minute),
	}

	f.service.LoadRates(context.Background())

	if f.rates.calls != 0 {
		t.Fatalf("expected no provider call for a fresh snapshot, got %d", f.rates.calls)
	}
	got, err := f.service.Convert(1000, "USD")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if got != 25.00 {
		t.Fatalf("expected snapshot rate to be used, got %v", got)
	}
}

func TestLoadRatesRefreshesStaleSnapshot(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.rateStore.snapshot = domain.RateSnapshot{
		Rates:     domain.RateTable{"MUR": 1, "USD": 0.025},
		FetchedAt: f.now.Add(-2 * time.Hour),
	}
	f.rates.table = domain.RateTable{"MUR": 1, "USD": 0.020, "AUD": 0.03, "CAD": 0.03, "EUR": 0.02, "GBP": 0.017}

	f.service.LoadRates(context.Background())

	if f.rates.calls != 1 {
		t.Fatalf("expected exactly one provider call for a stale snapshot, got %d", f.rates.calls)
	}
	if len(f.rateStore.saved) != 1 {
		t.Fatalf("expected refreshed table to be persisted once, got %d saves", len(f.rateStore.saved))
	}
	if f.rateStore.saved[0].FetchedAt != f.now {
		t.Fatalf("persisted snapshot should carry the fetch time")
	}
	got, err := f.service.Convert(1000, "USD")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if got != 20.00 {
		t.Fatalf("expected refreshed rate to be used, got %v", got)
	}
}

func TestRefreshFailureKeepsLastKnownTable(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.rates.err = errors.New("provider timeout")

	f.service.LoadRates(context.Background())

	if len(f.rateStore.saved) != 0 {
		t.Fatalf("failed refresh must not persist a snapshot")
	}
	// Fallback table still serves conversions and price rendering.
	got, err := f.service.Convert(1234, "USD")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if got != 26.53 {
		t.Fatalf("expected fallback conversion 26.53, got %v", got)
	}
	if price := f.service.FormatPrice(1234, "USD"); price != "$26.53" {
		t.Fatalf("unexpected formatted price: %q", price)
	}
}

func TestConvertRejectsUnsupportedCurrency(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.Convert(100, "JPY"); !errors.Is(err, domain.ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
}

func TestFormatPriceFallsBackToBaseCurrency(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if price := f.service.FormatPrice(1234, "JPY"); price != "Rs1234.00" {
		t.Fatalf("expected base-currency fallback, got %q", price)
	}
	if price := f.service.FormatPrice(1234, "mur"); price != "Rs1234.00" {
		t.Fatalf("expected case-insensitive code handling, got %q", price)
	}
}

func TestSetCurrencyValidatesAndPersists(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()

	if err := f.service.SetCurrency(ctx, "sid-1", "JPY"); !errors.Is(err, domain.ErrUnsupportedCurrency) {
		t.Fatalf("expected ErrUnsupportedCurrency, got %v", err)
	}
	if err := f.service.SetCurrency(ctx, "sid-1", " eur "); err != nil {
		t.Fatalf("set currency failed: %v", err)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.Currency != "EUR" {
		t.Fatalf("expected normalized EUR, got %q", record.Currency)
	}
}

func TestCurrencyInfoDefaultsToBase(t *testing.T) {
	t.Parallel()

	f := newFixture()
	info, err := f.service.CurrencyInfo(context.Background(), "sid-unset")
	if err != nil {
		t.Fatalf("currency info failed: %v", err)
	}
	if info.Currency != domain.BaseCurrency || info.Symbol != "Rs" {
		t.Fatalf("expected base currency default, got %+v", info)
	}
	if info.Rates["MUR"] != 1 {
		t.Fatalf("expected base rate of exactly 1")
	}
}

func TestRunRateRefresherStopsOnCancel(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.service.cfg.RateRefreshInterval = 5 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		f.service.RunRateRefresher(ctx)
		close(done)
	}()

	time.Sleep(25 * time.Millisecond)
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("refresher did not stop on context cancel")
	}
	if f.rates.calls == 0 {
		t.Fatal("expected at least one periodic refresh")
	}
}
