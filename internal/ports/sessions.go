package ports

import (
	"context"
	"time"

	"github.com/petitpas/storefront/internal/domain"
)

// SessionStore holds the per-visitor record: gateway access token, currency
// preference, and the remembered cart handle with its fencing sequence.
type SessionStore interface {
	Get(ctx context.Context, sessionID string) (domain.SessionRecord, error)

	SetAccessToken(ctx context.Context, sessionID, token string, ttl time.Duration) error
	ClearAccessToken(ctx context.Context, sessionID string) error

	SetCurrency(ctx context.Context, sessionID, currency string, ttl time.Duration) error

	// NextCartSeq returns a monotonically increasing sequence for this
	// session's cart mutations.
	NextCartSeq(ctx context.Context, sessionID string) (int64, error)
	// SetCartIfLatest remembers cartID only when seq is at least as new as
	// the last stored one, and reports whether the write happened. Stale
	// async completions therefore never overwrite a fresher handle.
	SetCartIfLatest(ctx context.Context, sessionID, cartID string, seq int64, ttl time.Duration) (bool, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// SessionTokenSigner mints and verifies the storefront's own visitor
// session tokens. The gateway customer token never leaves the server side.
type SessionTokenSigner interface {
	Sign(sessionID string, issuedAt time.Time, ttl time.Duration) (string, error)
	Verify(token string) (string, error)
}
