package application

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

// fakeGateway implements the commerce port with overridable behavior and
// call counters. Unconfigured calls fail loudly so a test never passes by
// silently exercising a path it did not set up.
type fakeGateway struct {
	mu sync.Mutex

	listProductsFn    func(first int, after string) (ports.ProductPage, error)
	listProductsCalls int

	productByHandleFn func(handle string) (domain.Product, error)

	createCartFn    func(variantID string, quantity int) (domain.Cart, error)
	createCartCalls int

	addCartLinesFn      func(cartID, variantID string, quantity int) (domain.Cart, error)
	addCartLinesCartIDs []string

	getCartFn         func(cartID string) (domain.Cart, error)
	removeCartLinesFn func(cartID string, lineIDs []string) (domain.Cart, error)
	updateCartLinesFn func(cartID string, lines []ports.CartLineUpdate) (domain.Cart, error)
	checkoutURLFn     func(cartID string) (string, error)

	loginFn        func(email, password string) (ports.AccessToken, error)
	loginCalls     int
	logoutFn       func(accessToken string) error
	logoutCalls    int
	createFn       func(input ports.CustomerCreateInput) (domain.Customer, error)
	customerFn     func(accessToken string) (domain.Customer, error)
	customerCalls  int
	orderDetailsFn func(accessToken, orderID string) (domain.Order, error)
}

var errFakeNotConfigured = errors.New("fake gateway call not configured")

func (g *fakeGateway) ListProducts(_ context.Context, first int, after string) (ports.ProductPage, error) {
	g.mu.Lock()
	g.listProductsCalls++
	g.mu.Unlock()
	if g.listProductsFn == nil {
		return ports.ProductPage{}, errFakeNotConfigured
	}
	return g.listProductsFn(first, after)
}

func (g *fakeGateway) ProductByHandle(_ context.Context, handle string) (domain.Product, error) {
	if g.productByHandleFn == nil {
		return domain.Product{}, errFakeNotConfigured
	}
	return g.productByHandleFn(handle)
}

func (g *fakeGateway) ListCollections(context.Context, int) ([]domain.Collection, error) {
	return nil, errFakeNotConfigured
}

func (g *fakeGateway) ProductsByCollection(context.Context, string, int) (domain.Collection, []domain.Product, error) {
	return domain.Collection{}, nil, errFakeNotConfigured
}

func (g *fakeGateway) CreateCart(_ context.Context, variantID string, quantity int) (domain.Cart, error) {
	g.mu.Lock()
	g.createCartCalls++
	g.mu.Unlock()
	if g.createCartFn == nil {
		return domain.Cart{}, errFakeNotConfigured
	}
	return g.createCartFn(variantID, quantity)
}

func (g *fakeGateway) AddCartLines(_ context.Context, cartID, variantID string, quantity int) (domain.Cart, error) {
	g.mu.Lock()
	g.addCartLinesCartIDs = append(g.addCartLinesCartIDs, cartID)
	g.mu.Unlock()
	if g.addCartLinesFn == nil {
		return domain.Cart{}, errFakeNotConfigured
	}
	return g.addCartLinesFn(cartID, variantID, quantity)
}

func (g *fakeGateway) GetCart(_ context.Context, cartID string) (domain.Cart, error) {
	if g.getCartFn == nil {
		return domain.Cart{}, errFakeNotConfigured
	}
	return g.getCartFn(cartID)
}

func (g *fakeGateway) RemoveCartLines(_ context.Context, cartID string, lineIDs []string) (domain.Cart, error) {
	if g.removeCartLinesFn == nil {
		return domain.Cart{}, errFakeNotConfigured
	}
	return g.removeCartLinesFn(cartID, lineIDs)
}

func (g *fakeGateway) UpdateCartLines(_ context.Context, cartID string, lines []ports.CartLineUpdate) (domain.Cart, error) {
	if g.updateCartLinesFn == nil {
		return domain.Cart{}, errFakeNotConfigured
	}
	return g.updateCartLinesFn(cartID, lines)
}

func (g *fakeGateway) CheckoutURL(_ context.Context, cartID string) (string, error) {
	if g.checkoutURLFn == nil {
		return "", errFakeNotConfigured
	}
	return g.checkoutURLFn(cartID)
}

func (g *fakeGateway) CustomerLogin(_ context.Context, email, password string) (ports.AccessToken, error) {
	g.mu.Lock()
	g.loginCalls++
	g.mu.Unlock()
	if g.loginFn == nil {
		return ports.AccessToken{}, errFakeNotConfigured
	}
	return g.loginFn(email, password)
}

func (g *fakeGateway) CustomerLogout(_ context.Context, accessToken string) error {
	g.mu.Lock()
	g.logoutCalls++
	g.mu.Unlock()
	if g.logoutFn == nil {
		return nil
	}
	return g.logoutFn(accessToken)
}

func (g *fakeGateway) CustomerCreate(_ context.Context, input ports.CustomerCreateInput) (domain.Customer, error) {
	if g.createFn == nil {
		return domain.Customer{}, errFakeNotConfigured
	}
	return g.createFn(input)
}

func (g *fakeGateway) Customer(_ context.Context, accessToken string) (domain.Customer, error) {
	g.mu.Lock()
	g.customerCalls++
	g.mu.Unlock()
	if g.customerFn == nil {
		return domain.Customer{}, errFakeNotConfigured
	}
	return g.customerFn(accessToken)
}

func (g *fakeGateway) OrderDetails(_ context.Context, accessToken, orderID string) (domain.Order, error) {
	if g.orderDetailsFn == nil {
		return domain.Order{}, errFakeNotConfigured
	}
	return g.orderDetailsFn(accessToken, orderID)
}

// fakeSessions is an in-memory session store honoring the same fencing
// contract as the Redis adapter.
type fakeSessions struct {
	mu             sync.Mutex
	records        map[string]domain.SessionRecord
	seq            map[string]int64
	clearCartCalls int
}

func newFakeSessions() *fakeSessions {
	return &fakeSessions{
		records: map[string]domain.SessionRecord{},
		seq:     map[string]int64{},
	}
}

func (s *fakeSessions) Get(_ context.Context, sessionID string) (domain.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.records[sessionID], nil
}

func (s *fakeSessions) SetAccessToken(_ context.Context, sessionID, token string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[sessionID]
	record.AccessToken = token
	s.records[sessionID] = record
	return nil
}

func (s *fakeSessions) ClearAccessToken(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[sessionID]
	record.AccessToken = ""
	s.records[sessionID] = record
	return nil
}

func (s *fakeSessions) SetCurrency(_ context.Context, sessionID, currency string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[sessionID]
	record.Currency = currency
	s.records[sessionID] = record
	return nil
}

func (s *fakeSessions) NextCartSeq(_ context.Context, sessionID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq[sessionID]++
	return s.seq[sessionID], nil
}

func (s *fakeSessions) SetCartIfLatest(_ context.Context, sessionID, cartID string, seq int64, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record := s.records[sessionID]
	if seq < record.CartSeq {
		return false, nil
	}
	record.CartID = cartID
	record.CartSeq = seq
	s.records[sessionID] = record
	return true, nil
}

func (s *fakeSessions) ClearCart(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearCartCalls++
	record := s.records[sessionID]
	record.CartID = ""
	record.CartSeq = 0
	s.records[sessionID] = record
	return nil
}

type fakeRates struct {
	mu    sync.Mutex
	table domain.RateTable
	err   error
	calls int
}

func (r *fakeRates) FetchRates(context.Context, string) (domain.RateTable, error) {
	r.mu.Lock()
	r.calls++
	r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	return r.table.Clone(), nil
}

type fakeRateStore struct {
	mu       sync.Mutex
	snapshot domain.RateSnapshot
	loadErr  error
	saved    []domain.RateSnapshot
}

func (s *fakeRateStore) Load(context.Context) (domain.RateSnapshot, error) {
	if s.loadErr != nil {
		return domain.RateSnapshot{}, s.loadErr
	}
	return s.snapshot, nil
}

func (s *fakeRateStore) Save(_ context.Context, snapshot domain.RateSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, snapshot)
	return nil
}

type fakeSigner struct {
	mu     sync.Mutex
	tokens map[string]string
}

func (s *fakeSigner) Sign(sessionID string, _ time.Time, _ time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tokens == nil {
		s.tokens = map[string]string{}
	}
	token := "tok-" + sessionID
	s.tokens[token] = sessionID
	return token, nil
}

func (s *fakeSigner) Verify(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sessionID, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return sessionID, nil
}

type publishedEvent struct {
	eventType    string
	payload      []byte
	partitionKey string
}

type fakeEvents struct {
	mu     sync.Mutex
	events []publishedEvent
	err    error
}

func (e *fakeEvents) Publish(_ context.Context, eventType string, payload []byte, partitionKey string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err != nil {
		return e.err
	}
	e.events = append(e.events, publishedEvent{eventType: eventType, payload: payload, partitionKey: partitionKey})
	return nil
}

type fixture struct {
	service   *Service
	gateway   *fakeGateway
	sessions  *fakeSessions
	rates     *fakeRates
	rateStore *fakeRateStore
	signer    *fakeSigner
	events    *fakeEvents
	now       time.Time
}

func newFixture() *fixture {
	f := &fixture{
		gateway:   &fakeGateway{},
		sessions:  newFakeSessions(),
		rates:     &fakeRates{table: domain.FallbackRates.Clone()},
		rateStore: &fakeRateStore{},
		signer:    &fakeSigner{},
		events:    &fakeEvents{},
		now:       time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
	f.service = NewService(Dependencies{
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		Gateway:   f.gateway,
		Rates:     f.rates,
		RateStore: f.rateStore,
		Sessions:  f.sessions,
		Signer:    f.signer,
		Events:    f.events,
	})
	f.service.nowFn = func() time.Time { return f.now }
	return f
}

func (f *fixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

// testProduct builds a product with one variant at the given base price.
func testProduct(id, title string, price float64, tags []string, colors ...string) domain.Product {
	options := make([]domain.SelectedOption, 0, len(colors))
	for _, c := range colors {
		options = append(options, domain.SelectedOption{Name: "Color", Value: c})
	}
	return domain.Product{
		ID:               id,
		Title:            title,
		Handle:           handleFor(title),
		Description:      title + " description",
		Tags:             tags,
		AvailableForSale: true,
		Images:           []domain.Image{{URL: "https://img.example/" + id + ".jpg"}},
		Variants: []domain.Variant{{
			ID:               id + "-v1",
			AvailableForSale: true,
			Price:            domain.Money{Amount: price, CurrencyCode: domain.BaseCurrency},
			SelectedOptions:  options,
		}},
	}
}

func handleFor(title string) string {
	out := make([]rune, 0, len(title))
	for _, r := range title {
		switch {
		case r >= 'A' && r <= 'Z':
			out = append(out, r+'a'-'A')
		case r == ' ':
			out = append(out, '-')
		default:
			out = append(out, r)
		}
	}
	return string(out)
}
