package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

// StartSession mints a new anonymous visitor session and its signed token.
func (s *Service) StartSession(ctx context.Context) (sessionID, token string, err error) {
	sessionID = uuid.NewString()
	token, err = s.signer.Sign(sessionID, s.nowFn(), s.cfg.SessionTTL)
	if err != nil {
		return "", "", fmt.Errorf("start session: %w", err)
	}
	return sessionID, token, nil
}

// ResolveSession verifies a visitor token and returns the session ID.
func (s *Service) ResolveSession(token string) (string, error) {
	return s.signer.Verify(token)
}

// Login exchanges credentials for a gateway customer token and confirms it
// with a profile fetch. The token is persisted as soon as it is received,
// before the profile confirms it; if the profile fetch then fails, both the
// in-flight and persisted copies are removed. A new login always supersedes
// whatever the session held before (last write wins).
func (s *Service) Login(ctx context.Context, sessionID string, req LoginRequest) (LoginResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return LoginResponse{}, err
	}
	if req.Password == "" {
		return LoginResponse{}, fmt.Errorf("%w: password must not be empty", domain.ErrInvalidInput)
	}

	token, err := s.gateway.CustomerLogin(ctx, email, req.Password)
	if err != nil {
		return LoginResponse{}, err
	}

	if err := s.sessions.SetAccessToken(ctx, sessionID, token.Token, s.cfg.SessionTTL); err != nil {
		return LoginResponse{}, fmt.Errorf("persist access token: %w", err)
	}

	customer, err := s.gateway.Customer(ctx, token.Token)
	if err != nil {
		// The credential could not be confirmed; roll the session back to
		// anonymous rather than keeping an unverified token around.
		_ = s.sessions.ClearAccessToken(ctx, sessionID)
		return LoginResponse{}, fmt.Errorf("confirm profile after login: %w", err)
	}

	s.publishEvent(ctx, "customer.logged_in", map[string]any{
		"customer_id":  customer.ID,
		"logged_in_at": s.nowFn(),
	}, customer.ID)

	return LoginResponse{Customer: customer}, nil
}

// RefreshProfile re-fetches the customer projection for the stored token.
// Any failure is treated as a stale credential: token and profile are
// discarded and the session falls back to anonymous.
func (s *Service) RefreshProfile(ctx context.Context, sessionID string) (domain.Customer, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Customer{}, fmt.Errorf("load session: %w", err)
	}
	if record.AccessToken == "" {
		return domain.Customer{}, domain.ErrUnauthorized
	}

	customer, err := s.gateway.Customer(ctx, record.AccessToken)
	if err != nil {
		s.logger.Warn("profile refresh failed, clearing credential",
			"operation", "refresh_profile",
			"outcome", "failure",
			"error", err.Error(),
		)
		_ = s.sessions.ClearAccessToken(ctx, sessionID)
		return domain.Customer{}, domain.ErrUnauthorized
	}
	return customer, nil
}

// Logout invalidates the gateway token best-effort, then unconditionally
// clears local state. Remote failures are logged, never surfaced.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	if record.AccessToken != "" {
		if err := s.gateway.CustomerLogout(ctx, record.AccessToken); err != nil {
			s.logger.Warn("remote logout failed",
				"operation", "logout",
				"outcome", "failure",
				"error", err.Error(),
			)
		}
	}
	return s.sessions.ClearAccessToken(ctx, sessionID)
}

// Register creates a remote customer. A gateway "pending email
// verification" response is reported as a pseudo-success; a full success
// immediately logs the new customer in.
func (s *Service) Register(ctx context.Context, sessionID string, req RegisterRequest) (RegisterResponse, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return RegisterResponse{}, err
	}
	if req.Password == "" {
		return RegisterResponse{}, fmt.Errorf("%w: password must not be empty", domain.ErrInvalidInput)
	}

	_, err = s.gateway.CustomerCreate(ctx, ports.CustomerCreateInput{
		Email:     email,
		Password:  req.Password,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
	})
	if errors.Is(err, domain.ErrEmailVerificationRequired) {
		return RegisterResponse{EmailVerificationRequired: true}, nil
	}
	if err != nil {
		return RegisterResponse{}, err
	}

	s.publishEvent(ctx, "customer.registered", map[string]any{
		"email":         email,
		"registered_at": s.nowFn(),
	}, email)

	login, err := s.Login(ctx, sessionID, LoginRequest{Email: email, Password: req.Password})
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("auto-login after registration: %w", err)
	}
	return RegisterResponse{Customer: &login.Customer}, nil
}

// AccountCallback interprets the query parameters the external account
// system appends when redirecting back (email verified, password reset,
// or a customer token minted during a hosted login). A delivered token is
// adopted exactly like a login token: persisted, then confirmed by a
// profile fetch.
func (s *Service) AccountCallback(ctx context.Context, sessionID string, params AccountCallbackParams) (AccountCallbackResult, error) {
	result := AccountCallbackResult{}
	switch {
	case params.Verified:
		result.Message = "Your email has been verified."
	case params.Reset:
		result.Message = "Password reset initiated."
	default:
		result.Message = "Redirecting to your account."
	}

	if params.CustomerAccessToken != "" {
		if err := s.sessions.SetAccessToken(ctx, sessionID, params.CustomerAccessToken, s.cfg.SessionTTL); err != nil {
			return AccountCallbackResult{}, fmt.Errorf("persist callback token: %w", err)
		}
		customer, err := s.gateway.Customer(ctx, params.CustomerAccessToken)
		if err != nil {
			_ = s.sessions.ClearAccessToken(ctx, sessionID)
			return result, nil
		}
		result.LoggedIn = true
		result.Customer = &customer
	}
	return result, nil
}

// SessionStateFor reports the session's auth state, currency and cart
// handle in one shot for page bootstrapping.
func (s *Service) SessionStateFor(ctx context.Context, sessionID string) (SessionState, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return SessionState{}, fmt.Errorf("load session: %w", err)
	}

	state := SessionState{
		State:    domain.SessionAnonymous,
		Currency: record.Currency,
		CartID:   record.CartID,
	}
	if state.Currency == "" {
		state.Currency = domain.BaseCurrency
	}
	if record.AccessToken == "" {
		return state, nil
	}

	customer, err := s.gateway.Customer(ctx, record.AccessToken)
	if err != nil {
		// An outage proves nothing about the token; keep it and report
		// the confirmation as pending so the next state read retries.
		if errors.Is(err, domain.ErrGatewayUnavailable) {
			state.State = domain.SessionAuthenticating
			return state, nil
		}
		_ = s.sessions.ClearAccessToken(ctx, sessionID)
		return state, nil
	}
	state.State = domain.SessionAuthenticated
	state.Customer = &customer
	return state, nil
}

// Orders returns the authenticated customer's order summaries.
func (s *Service) Orders(ctx context.Context, sessionID string) ([]domain.OrderSummary, error) {
	customer, err := s.RefreshProfile(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return customer.Orders, nil
}

// OrderDetails returns one order of the authenticated customer.
func (s *Service) OrderDetails(ctx context.Context, sessionID, orderID string) (domain.Order, error) {
	record, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("load session: %w", err)
	}
	if record.AccessToken == "" {
		return domain.Order{}, domain.ErrUnauthorized
	}
	return s.gateway.OrderDetails(ctx, record.AccessToken, orderID)
}

func (s *Service) publishEvent(ctx context.Context, eventType string, payload map[string]any, partitionKey string) {
	if s.events == nil {
		return
	}
	raw, _ := json.Marshal(payload)
	if err := s.events.Publish(ctx, eventType, raw, partitionKey); err != nil {
		s.logger.Warn("event publish failed",
			"operation", "event_publish",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func normalizeEmail(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email", domain.ErrInvalidInput)
	}
	return email, nil
}
