package commerce

import (
	"context"
	"fmt"

	"github.com/petitpas/storefront/internal/domain"
	"github.com/petitpas/storefront/internal/ports"
)

// maxPageSize is the gateway's hard cap on products per page.
const maxPageSize = 250

func (c *Client) ListProducts(ctx context.Context, first int, after string) (ports.ProductPage, error) {
	if first <= 0 || first > maxPageSize {
		first = maxPageSize
	}
	variables := map[string]any{"first": first}
	if after != "" {
		variables["after"] = after
	}

	var data struct {
		Products connection[wireProduct] `json:"products"`
	}
	if err := c.query(ctx, queryProducts, variables, &data); err != nil {
		return ports.ProductPage{}, fmt.Errorf("list products: %w", err)
	}

	page := ports.ProductPage{
		HasNextPage: data.Products.PageInfo.HasNextPage,
		EndCursor:   data.Products.PageInfo.EndCursor,
	}
	for _, edge := range data.Products.Edges {
		page.Products = append(page.Products, mapProduct(edge.Node))
	}
	return page, nil
}

func (c *Client) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	var data struct {
		Product *wireProduct `json:"product"`
	}
	if err := c.query(ctx, queryProductByHandle, map[string]any{"handle": handle}, &data); err != nil {
		return domain.Product{}, fmt.Errorf("product by handle %q: %w", handle, err)
	}
	if data.Product == nil {
		return domain.Product{}, fmt.Errorf("product %q: %w", handle, domain.ErrNotFound)
	}
	return mapProduct(*data.Product), nil
}

func (c *Client) ListCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	if first <= 0 {
		first = 10
	}
	var data struct {
		Collections connection[wireCollection] `json:"collections"`
	}
	if err := c.query(ctx, queryCollections, map[string]any{"first": first}, &data); err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}

	collections := make([]domain.Collection, 0, len(data.Collections.Edges))
	for _, edge := range data.Collections.Edges {
		collections = append(collections, mapCollection(edge.Node))
	}
	return collections, nil
}

func (c *Client) ProductsByCollection(ctx context.Context, handle string, first int) (domain.Collection, []domain.Product, error) {
	if first <= 0 || first > maxPageSize {
		first = 50
	}
	var data struct {
		Collection *struct {
			wireCollection
			Products connection[wireProduct] `json:"products"`
		} `json:"collection"`
	}
	variables := map[string]any{"collection": handle, "first": first}
	if err := c.query(ctx, queryProductsByCollection, variables, &data); err != nil {
		return domain.Collection{}, nil, fmt.Errorf("products by collection %q: %w", handle, err)
	}
	if data.Collection == nil {
		return domain.Collection{}, nil, fmt.Errorf("collection %q: %w", handle, domain.ErrNotFound)
	}

	var products []domain.Product
	for _, edge := range data.Collection.Products.Edges {
		products = append(products, mapProduct(edge.Node))
	}
	return mapCollection(data.Collection.wireCollection), products, nil
}
