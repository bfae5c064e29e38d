package ports

import (
	"context"

	"github.com/petitpas/storefront/internal/domain"
)

// ProductPage is one page of the gateway product listing.
type ProductPage struct {
	Products    []domain.Product
	HasNextPage bool
	EndCursor   string
}

// AccessToken is the gateway-issued customer credential. ExpiresAt is the
// gateway's declared validity; the token is treated as opaque otherwise.
type AccessToken struct {
	Token     string
	ExpiresAt string
}

// CommerceGateway is the sole source of product, cart, customer and order
// truth. Every method issues exactly one request; callers decide fallback.
//
// Rejected mutations surface as domain.ErrGatewayUserError wrapping the
// gateway's message; transport failures as domain.ErrGatewayUnavailable.
type CommerceGateway interface {
	// Catalog.
	ListProducts(ctx context.Context, first int, after string) (ProductPage, error)
	ProductByHandle(ctx context.Context, handle string) (domain.Product, error)
	ListCollections(ctx context.Context, first int) ([]domain.Collection, error)
	ProductsByCollection(ctx context.Context, handle string, first int) (domain.Collection, []domain.Product, error)

	// Cart.
	CreateCart(ctx context.Context, variantID string, quantity int) (domain.Cart, error)
	AddCartLines(ctx context.Context, cartID, variantID string, quantity int) (domain.Cart, error)
	GetCart(ctx context.Context, cartID string) (domain.Cart, error)
	RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error)
	UpdateCartLines(ctx context.Context, cartID string, lines []CartLineUpdate) (domain.Cart, error)
	CheckoutURL(ctx context.Context, cartID string) (string, error)

	// Customer accounts.
	CustomerLogin(ctx context.Context, email, password string) (AccessToken, error)
	CustomerLogout(ctx context.Context, accessToken string) error
	CustomerCreate(ctx context.Context, input CustomerCreateInput) (domain.Customer, error)
	Customer(ctx context.Context, accessToken string) (domain.Customer, error)
	OrderDetails(ctx context.Context, accessToken, orderID string) (domain.Order, error)
}

type CartLineUpdate struct {
	LineID   string
	Quantity int
}

type CustomerCreateInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}
