package domain

import "errors"

var (
	// ErrNotFound is returned when the requested resource does not exist.
	// Keeping this sentinel in domain allows adapters to map it consistently to 404/NOT_FOUND.
	ErrNotFound = errors.New("resource not found")
	// ErrInvalidCredentials hides whether email or password failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthorized covers missing/expired visitor sessions and customer tokens.
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidInput = errors.New("invalid input")
	// ErrGatewayUserError carries a human-readable message reported by the
	// commerce gateway (validation errors, rejected mutations). The wrapped
	// message is safe to show to the customer.
	ErrGatewayUserError = errors.New("gateway user error")
	// ErrGatewayUnavailable is a transport-level failure talking to the gateway.
	ErrGatewayUnavailable = errors.New("gateway unavailable")
	// ErrEmailVerificationRequired is a pseudo-success: the customer record was
	// created but the account system wants the email confirmed first.
	ErrEmailVerificationRequired = errors.New("email verification required")
	// ErrUnsupportedCurrency rejects currency codes outside the supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
)
