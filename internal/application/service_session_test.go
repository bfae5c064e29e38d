package application

import (
	"context"
	"errors"
	"testing"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

func TestStartAndResolveSession(t *testing.T) {
	t.Parallel()

	f := newFixture()
	sessionID, token, err := f.service.StartSession(context.Background())
	if err != nil {
		t.Fatalf("start session failed: %v", err)
	}
	if sessionID == "" || token == "" {
		t.Fatal("expected session id and token")
	}

	resolved, err := f.service.ResolveSession(token)
	if err != nil {
		t.Fatalf("resolve session failed: %v", err)
	}
	if resolved != sessionID {
		t.Fatalf("resolved %q, want %q", resolved, sessionID)
	}
	if _, err := f.service.ResolveSession("bogus"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized for bad token, got %v", err)
	}
}

func TestLoginPersistsTokenAndConfirmsProfile(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.gateway.loginFn = func(email, password string) (ports.AccessToken, error) {
		if email != "shopper@example.com" {
			t.Fatalf("expected normalized email, got %q", email)
		}
		return ports.AccessToken{Token: "cat-1"}, nil
	}
	f.gateway.customerFn = func(accessToken string) (domain.Customer, error) {
		if accessToken != "cat-1" {
			t.Fatalf("profile fetched with wrong token %q", accessToken)
		}
		return domain.Customer{ID: "cust-1", Email: "shopper@example.com"}, nil
	}

	res, err := f.service.Login(ctx, "sid-1", LoginRequest{Email: " Shopper@Example.com ", Password: "pw"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if res.Customer.ID != "cust-1" {
		t.Fatalf("unexpected customer %+v", res.Customer)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "cat-1" {
		t.Fatalf("expected persisted token, got %q", record.AccessToken)
	}
	if len(f.events.events) != 1 || f.events.events[0].eventType != "customer.logged_in" {
		t.Fatalf("expected customer.logged_in event, got %+v", f.events.events)
	}
}

func TestLoginBadCredentialsLeavesSessionAnonymous(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.gateway.loginFn = func(string, string) (ports.AccessToken, error) {
		return ports.AccessToken{}, domain.ErrInvalidCredentials
	}

	_, err := f.service.Login(ctx, "sid-1", LoginRequest{Email: "a@b.com", Password: "wrong"})
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "" {
		t.Fatalf("no token must be persisted on a failed login")
	}
	state, err := f.service.SessionStateFor(ctx, "sid-1")
	if err != nil {
		t.Fatalf("session state failed: %v", err)
	}
	if state.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous state, got %q", state.State)
	}
}

func TestLoginProfileFailureRollsBackToken(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.gateway.loginFn = func(string, string) (ports.AccessToken, error) {
		return ports.AccessToken{Token: "cat-1"}, nil
	}
	f.gateway.customerFn = func(string) (domain.Customer, error) {
		return domain.Customer{}, domain.ErrGatewayUnavailable
	}

	_, err := f.service.Login(ctx, "sid-1", LoginRequest{Email: "a@b.com", Password: "pw"})
	if err == nil {
		t.Fatal("expected login to fail when the profile cannot be confirmed")
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "" {
		t.Fatalf("unconfirmed token must be cleared, got %q", record.AccessToken)
	}
}

func TestRefreshProfileClearsStaleCredential(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	_ = f.sessions.SetAccessToken(ctx, "sid-1", "cat-stale", 0)
	f.gateway.customerFn = func(string) (domain.Customer, error) {
		return domain.Customer{}, domain.ErrUnauthorized
	}

	if _, err := f.service.RefreshProfile(ctx, "sid-1"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "" {
		t.Fatalf("stale token must be cleared, got %q", record.AccessToken)
	}
}

func TestLogoutClearsLocallyEvenWhenRemoteFails(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	_ = f.sessions.SetAccessToken(ctx, "sid-1", "cat-1", 0)
	f.gateway.logoutFn = func(string) error {
		return domain.ErrGatewayUnavailable
	}

	if err := f.service.Logout(ctx, "sid-1"); err != nil {
		t.Fatalf("logout must absorb remote failure, got %v", err)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "" {
		t.Fatalf("local token must be cleared unconditionally")
	}
	if f.gateway.logoutCalls != 1 {
		t.Fatalf("expected one remote logout attempt, got %d", f.gateway.logoutCalls)
	}
}

func TestRegisterPendingVerificationIsPseudoSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.gateway.createFn = func(ports.CustomerCreateInput) (domain.Customer, error) {
		return domain.Customer{}, domain.ErrEmailVerificationRequired
	}

	res, err := f.service.Register(context.Background(), "sid-1", RegisterRequest{Email: "new@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("pending verification must not be an error, got %v", err)
	}
	if !res.EmailVerificationRequired || res.Customer != nil {
		t.Fatalf("expected pending-verification response, got %+v", res)
	}
	if f.gateway.loginCalls != 0 {
		t.Fatal("no auto-login attempt expected while verification is pending")
	}
}

func TestRegisterAutoLogsInOnFullSuccess(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.gateway.createFn = func(input ports.CustomerCreateInput) (domain.Customer, error) {
		return domain.Customer{ID: "cust-1", Email: input.Email}, nil
	}
	f.gateway.loginFn = func(string, string) (ports.AccessToken, error) {
		return ports.AccessToken{Token: "cat-1"}, nil
	}
	f.gateway.customerFn = func(string) (domain.Customer, error) {
		return domain.Customer{ID: "cust-1"}, nil
	}

	res, err := f.service.Register(context.Background(), "sid-1", RegisterRequest{Email: "new@b.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if res.Customer == nil || res.Customer.ID != "cust-1" {
		t.Fatalf("expected logged-in customer, got %+v", res)
	}
	if f.gateway.loginCalls != 1 {
		t.Fatalf("expected one auto-login, got %d", f.gateway.loginCalls)
	}

	var sawRegistered bool
	for _, event := range f.events.events {
		if event.eventType == "customer.registered" {
			sawRegistered = true
		}
	}
	if !sawRegistered {
		t.Fatalf("expected customer.registered event, got %+v", f.events.events)
	}
}

func TestAccountCallbackAdoptsDeliveredToken(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.gateway.customerFn = func(accessToken string) (domain.Customer, error) {
		if accessToken != "cat-cb" {
			t.Fatalf("unexpected token %q", accessToken)
		}
		return domain.Customer{ID: "cust-1"}, nil
	}

	res, err := f.service.AccountCallback(ctx, "sid-1", AccountCallbackParams{
		Verified:            true,
		CustomerAccessToken: "cat-cb",
	})
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if !res.LoggedIn || res.Customer == nil {
		t.Fatalf("expected logged-in result, got %+v", res)
	}
	if res.Message != "Your email has been verified." {
		t.Fatalf("unexpected message %q", res.Message)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "cat-cb" {
		t.Fatalf("expected adopted token, got %q", record.AccessToken)
	}
}

func TestAccountCallbackBadTokenStaysAnonymous(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	f.gateway.customerFn = func(string) (domain.Customer, error) {
		return domain.Customer{}, domain.ErrUnauthorized
	}

	res, err := f.service.AccountCallback(ctx, "sid-1", AccountCallbackParams{
		Reset:               true,
		CustomerAccessToken: "cat-bad",
	})
	if err != nil {
		t.Fatalf("callback failed: %v", err)
	}
	if res.LoggedIn {
		t.Fatal("unconfirmed token must not log the session in")
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "" {
		t.Fatalf("unconfirmed token must be cleared, got %q", record.AccessToken)
	}
}

func TestSessionStateDefaultsCurrencyToBase(t *testing.T) {
	t.Parallel()

	f := newFixture()
	state, err := f.service.SessionStateFor(context.Background(), "sid-fresh")
	if err != nil {
		t.Fatalf("session state failed: %v", err)
	}
	if state.Currency != domain.BaseCurrency {
		t.Fatalf("expected base currency default, got %q", state.Currency)
	}
	if state.State != domain.SessionAnonymous {
		t.Fatalf("expected anonymous, got %q", state.State)
	}
}

func TestSessionStateReportsAuthenticatingDuringOutage(t *testing.T) {
	t.Parallel()

	f := newFixture()
	ctx := context.Background()
	_ = f.sessions.SetAccessToken(ctx, "sid-1", "cat-1", 0)
	f.gateway.customerFn = func(string) (domain.Customer, error) {
		return domain.Customer{}, domain.ErrGatewayUnavailable
	}

	state, err := f.service.SessionStateFor(ctx, "sid-1")
	if err != nil {
		t.Fatalf("session state failed: %v", err)
	}
	if state.State != domain.SessionAuthenticating {
		t.Fatalf("expected authenticating, got %q", state.State)
	}
	record, _ := f.sessions.Get(ctx, "sid-1")
	if record.AccessToken != "cat-1" {
		t.Fatalf("expected token kept through the outage, got %q", record.AccessToken)
	}
}

func TestOrdersRequireAuthentication(t *testing.T) {
	t.Parallel()

	f := newFixture()
	if _, err := f.service.Orders(context.Background(), "sid-anon"); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}
