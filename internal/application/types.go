package application

import "github.com/petitpas/storefront/internal/domain"

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Customer domain.Customer `json:"customer"`
}

type RegisterRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// RegisterResponse reports either a completed registration (logged in,
// Customer set) or the pending-verification pseudo-success.
type RegisterResponse struct {
	EmailVerificationRequired bool             `json:"email_verification_required"`
	Customer                  *domain.Customer `json:"customer,omitempty"`
}

// AccountCallbackParams are the URL query parameters the external account
// system appends when redirecting back to the storefront.
type AccountCallbackParams struct {
	Verified            bool
	Reset               bool
	CustomerAccessToken string
}

type AccountCallbackResult struct {
	Message  string           `json:"message"`
	LoggedIn bool             `json:"logged_in"`
	Customer *domain.Customer `json:"customer,omitempty"`
}

type SessionState struct {
	State    string           `json:"state"`
	Currency string           `json:"currency"`
	Customer *domain.Customer `json:"customer,omitempty"`
	CartID   string           `json:"cart_id,omitempty"`
}

type AddToCartRequest struct {
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartLinesRequest struct {
	Lines []CartLineUpdate `json:"lines"`
}

type CartLineUpdate struct {
	LineID   string `json:"line_id"`
	Quantity int    `json:"quantity"`
}

type RemoveCartLinesRequest struct {
	LineIDs []string `json:"line_ids"`
}

type ProductListResponse struct {
	Products    []domain.Product `json:"products"`
	HasNextPage bool             `json:"has_next_page"`
	EndCursor   string           `json:"end_cursor,omitempty"`
}

type CollectionProductsResponse struct {
	Collection domain.Collection `json:"collection"`
	Products   []domain.Product  `json:"products"`
}

// SearchFilter mirrors the storefront's search controls.
type SearchFilter struct {
	Query  string
	Type   string // "all", "products" or "models"
	Colors []string
	Sort   string // "relevance", "name", "price-asc", "price-desc"
	// Limit caps the result list; 0 means unbounded (full results page).
	Limit int
}

type SearchResponse struct {
	Results []domain.SearchItem `json:"results"`
	Total   int                 `json:"total"`
}

type PriceQuote struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

type CurrencyInfo struct {
	Currency  string           `json:"currency"`
	Symbol    string           `json:"symbol"`
	Supported []string         `json:"supported"`
	Rates     domain.RateTable `json:"rates"`
	FetchedAt string           `json:"fetched_at,omitempty"`
}
