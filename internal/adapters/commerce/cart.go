package commerce

import (
	"context"
	"fmt"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

func (c *Client) CreateCart(ctx context.Context, variantID string, quantity int) (domain.Cart, error) {
	var data struct {
		CartCreate struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartCreate"`
	}
	variables := map[string]any{
		"cartInput": map[string]any{
			"lines": []map[string]any{
				{"merchandiseId": variantID, "quantity": quantity},
			},
		},
	}
	if err := c.query(ctx, mutationCartCreate, variables, &data); err != nil {
		return domain.Cart{}, fmt.Errorf("create cart: %w", err)
	}
	if err := userError(data.CartCreate.UserErrors); err != nil {
		return domain.Cart{}, fmt.Errorf("create cart: %w", err)
	}
	if data.CartCreate.Cart == nil {
		return domain.Cart{}, fmt.Errorf("create cart: %w: empty cart payload", domain.ErrGatewayUnavailable)
	}
	return mapCart(*data.CartCreate.Cart), nil
}

func (c *Client) AddCartLines(ctx context.Context, cartID, variantID string, quantity int) (domain.Cart, error) {
	var data struct {
		CartLinesAdd struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesAdd"`
	}
	variables := map[string]any{
		"cartId": cartID,
		"lines": []map[string]any{
			{"merchandiseId": variantID, "quantity": quantity},
		},
	}
	if err := c.query(ctx, mutationCartLinesAdd, variables, &data); err != nil {
		return domain.Cart{}, fmt.Errorf("add cart lines: %w", err)
	}
	if err := userError(data.CartLinesAdd.UserErrors); err != nil {
		return domain.Cart{}, fmt.Errorf("add cart lines: %w", err)
	}
	if data.CartLinesAdd.Cart == nil {
		return domain.Cart{}, fmt.Errorf("add cart lines: %w: cart %s gone", domain.ErrNotFound, cartID)
	}
	return mapCart(*data.CartLinesAdd.Cart), nil
}

func (c *Client) GetCart(ctx context.Context, cartID string) (domain.Cart, error) {
	var data struct {
		Cart *wireCart `json:"cart"`
	}
	if err := c.query(ctx, queryCart, map[string]any{"cartId": cartID}, &data); err != nil {
		return domain.Cart{}, fmt.Errorf("get cart: %w", err)
	}
	if data.Cart == nil {
		return domain.Cart{}, fmt.Errorf("cart %s: %w", cartID, domain.ErrNotFound)
	}
	return mapCart(*data.Cart), nil
}

func (c *Client) RemoveCartLines(ctx context.Context, cartID string, lineIDs []string) (domain.Cart, error) {
	var data struct {
		CartLinesRemove struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesRemove"`
	}
	variables := map[string]any{"cartId": cartID, "lineIds": lineIDs}
	if err := c.query(ctx, mutationCartLinesRemove, variables, &data); err != nil {
		return domain.Cart{}, fmt.Errorf("remove cart lines: %w", err)
	}
	if err := userError(data.CartLinesRemove.UserErrors); err != nil {
		return domain.Cart{}, fmt.Errorf("remove cart lines: %w", err)
	}
	if data.CartLinesRemove.Cart == nil {
		return domain.Cart{}, fmt.Errorf("remove cart lines: %w: cart %s gone", domain.ErrNotFound, cartID)
	}
	return mapCart(*data.CartLinesRemove.Cart), nil
}

func (c *Client) UpdateCartLines(ctx context.Context, cartID string, lines []ports.CartLineUpdate) (domain.Cart, error) {
	var data struct {
		CartLinesUpdate struct {
			Cart       *wireCart       `json:"cart"`
			UserErrors []wireUserError `json:"userErrors"`
		} `json:"cartLinesUpdate"`
	}
	wireLines := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		wireLines = append(wireLines, map[string]any{"id": line.LineID, "quantity": line.Quantity})
	}
	variables := map[string]any{"cartId": cartID, "lines": wireLines}
	if err := c.query(ctx, mutationCartLinesUpdate, variables, &data); err != nil {
		return domain.Cart{}, fmt.Errorf("update cart lines: %w", err)
	}
	if err := userError(data.CartLinesUpdate.UserErrors); err != nil {
		return domain.Cart{}, fmt.Errorf("update cart lines: %w", err)
	}
	if data.CartLinesUpdate.Cart == nil {
		return domain.Cart{}, fmt.Errorf("update cart lines: %w: cart %s gone", domain.ErrNotFound, cartID)
	}
	return mapCart(*data.CartLinesUpdate.Cart), nil
}

func (c *Client) CheckoutURL(ctx context.Context, cartID string) (string, error) {
	var data struct {
		Cart *struct {
			CheckoutURL string `json:"checkoutUrl"`
		} `json:"cart"`
	}
	if err := c.query(ctx, queryCheckoutURL, map[string]any{"cartId": cartID}, &data); err != nil {
		return "", fmt.Errorf("checkout url: %w", err)
	}
	if data.Cart == nil || data.Cart.CheckoutURL == "" {
		return "", fmt.Errorf("checkout url for cart %s: %w", cartID, domain.ErrNotFound)
	}
	return data.Cart.CheckoutURL, nil
}
