package commerce

import (
	"context"
	"fmt"
	"strings"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

func (c *Client) CustomerLogin(ctx context.Context, email, password string) (ports.AccessToken, error) {
	var data struct {
		CustomerAccessTokenCreate struct {
			CustomerAccessToken *struct {
				AccessToken string `json:"accessToken"`
				ExpiresAt   string `json:"expiresAt"`
			} `json:"customerAccessToken"`
			CustomerUserErrors []wireUserError `json:"customerUserErrors"`
		} `json:"customerAccessTokenCreate"`
	}
	variables := map[string]any{
		"input": map[string]any{"email": email, "password": password},
	}
	if err := c.query(ctx, mutationCustomerLogin, variables, &data); err != nil {
		return ports.AccessToken{}, fmt.Errorf("customer login: %w", err)
	}
	if errs := data.CustomerAccessTokenCreate.CustomerUserErrors; len(errs) > 0 {
		if strings.EqualFold(errs[0].Code, "UNIDENTIFIED_CUSTOMER") {
			return ports.AccessToken{}, domain.ErrInvalidCredentials
		}
		return ports.AccessToken{}, fmt.Errorf("customer login: %w", userError(errs))
	}
	token := data.CustomerAccessTokenCreate.CustomerAccessToken
	if token == nil || token.AccessToken == "" {
		return ports.AccessToken{}, domain.ErrInvalidCredentials
	}
	return ports.AccessToken{Token: token.AccessToken, ExpiresAt: token.ExpiresAt}, nil
}

func (c *Client) CustomerLogout(ctx context.Context, accessToken string) error {
	var data struct {
		CustomerAccessTokenDelete struct {
			DeletedAccessToken string          `json:"deletedAccessToken"`
			UserErrors         []wireUserError `json:"userErrors"`
		} `json:"customerAccessTokenDelete"`
	}
	variables := map[string]any{"customerAccessToken": accessToken}
	if err := c.query(ctx, mutationCustomerLogout, variables, &data); err != nil {
		return fmt.Errorf("customer logout: %w", err)
	}
	if err := userError(data.CustomerAccessTokenDelete.UserErrors); err != nil {
		return fmt.Errorf("customer logout: %w", err)
	}
	return nil
}

func (c *Client) CustomerCreate(ctx context.Context, input ports.CustomerCreateInput) (domain.Customer, error) {
	var data struct {
		CustomerCreate struct {
			Customer           *wireCustomer   `json:"customer"`
			CustomerUserErrors []wireUserError `json:"customerUserErrors"`
		} `json:"customerCreate"`
	}
	variables := map[string]any{
		"input": map[string]any{
			"email":     input.Email,
			"password":  input.Password,
			"firstName": input.FirstName,
			"lastName":  input.LastName,
		},
	}
	if err := c.query(ctx, mutationCustomerCreate, variables, &data); err != nil {
		return domain.Customer{}, fmt.Errorf("customer create: %w", err)
	}
	if errs := data.CustomerCreate.CustomerUserErrors; len(errs) > 0 {
		if isPendingVerificationMessage(errs[0].Message) {
			return domain.Customer{}, domain.ErrEmailVerificationRequired
		}
		return domain.Customer{}, fmt.Errorf("customer create: %w", userError(errs))
	}
	if data.CustomerCreate.Customer == nil {
		return domain.Customer{}, fmt.Errorf("customer create: %w: empty customer payload", domain.ErrGatewayUnavailable)
	}
	return mapCustomer(*data.CustomerCreate.Customer), nil
}

// isPendingVerificationMessage detects the gateway's "account created but
// email must be verified" response, which arrives as a user error rather
// than a typed code. The wording heuristic is isolated here so a future
// typed error from the gateway replaces a single predicate.
func isPendingVerificationMessage(message string) bool {
	lower := strings.ToLower(message)
	return strings.Contains(lower, "email") && strings.Contains(lower, "verify")
}

func (c *Client) Customer(ctx context.Context, accessToken string) (domain.Customer, error) {
	var data struct {
		Customer *wireCustomer `json:"customer"`
	}
	variables := map[string]any{"customerAccessToken": accessToken}
	if err := c.query(ctx, queryCustomer, variables, &data); err != nil {
		return domain.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	// A null customer means the token is stale or revoked.
	if data.Customer == nil {
		return domain.Customer{}, domain.ErrUnauthorized
	}
	return mapCustomer(*data.Customer), nil
}

func (c *Client) OrderDetails(ctx context.Context, accessToken, orderID string) (domain.Order, error) {
	var data struct {
		Customer *struct {
			Orders connection[wireOrder] `json:"orders"`
		} `json:"customer"`
	}
	variables := map[string]any{
		"customerAccessToken": accessToken,
		"orderId":             "gid://shopify/Order/" + orderID,
	}
	if err := c.query(ctx, queryOrderDetails, variables, &data); err != nil {
		return domain.Order{}, fmt.Errorf("order details: %w", err)
	}
	if data.Customer == nil {
		return domain.Order{}, domain.ErrUnauthorized
	}
	if len(data.Customer.Orders.Edges) == 0 {
		return domain.Order{}, fmt.Errorf("order %s: %w", orderID, domain.ErrNotFound)
	}
	return mapOrder(data.Customer.Orders.Edges[0].Node), nil
}
