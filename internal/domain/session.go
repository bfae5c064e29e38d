package domain

// Session auth states. A visitor session is Anonymous until a customer
// token is stored, Authenticating while a held token awaits profile
// confirmation, Authenticated once the profile has been confirmed, and
// falls back to Anonymous on logout or on a rejected token.
const (
	SessionAnonymous      = "anonymous"
	SessionAuthenticating = "authenticating"
	SessionAuthenticated  = "authenticated"
)

// SessionRecord is the per-visitor state persisted in the session store.
// The customer access token is the gateway's opaque bearer credential; the
// cart fields implement the fenced remembered-handle scheme.
type SessionRecord struct {
	AccessToken string `json:"access_token,omitempty"`
	Currency    string `json:"currency,omitempty"`
	CartID      string `json:"cart_id,omitempty"`
	CartSeq     int64  `json:"cart_seq,omitempty"`
}
