package application

import (
	"context"
	"fmt"

	"github.com/petitpas/storefront/internal/domain"
)

const defaultPageSize = 24

// maxCatalogPages bounds the fetch-all walk so a gateway that keeps
// reporting another page cannot spin us forever.
const maxCatalogPages = 20

// ListProducts returns one page of the catalog with derived presentation
// fields applied. first <= 0 falls back to the default page size.
func (s *Service) ListProducts(ctx context.Context, first int, after string) (ProductListResponse, error) {
	if first <= 0 {
		first = defaultPageSize
	}
	page, err := s.gateway.ListProducts(ctx, first, after)
	if err != nil {
		return ProductListResponse{}, err
	}
	return ProductListResponse{
		Products:    domain.EnrichAll(page.Products),
		HasNextPage: page.HasNextPage,
		EndCursor:   page.EndCursor,
	}, nil
}

// AllProducts walks the product listing to the last page. Used by the
// search index build, where a partial catalog would silently hide results.
func (s *Service) AllProducts(ctx context.Context) ([]domain.Product, error) {
	var (
		products []domain.Product
		after    string
	)
	for i := 0; i < maxCatalogPages; i++ {
		page, err := s.gateway.ListProducts(ctx, 250, after)
		if err != nil {
			return nil, fmt.Errorf("list products page %d: %w", i+1, err)
		}
		products = append(products, page.Products...)
		if !page.HasNextPage {
			return domain.EnrichAll(products), nil
		}
		after = page.EndCursor
	}
	s.logger.Warn("catalog walk stopped at page cap",
		"operation", "all_products",
		"pages", maxCatalogPages,
		"products", len(products),
	)
	return domain.EnrichAll(products), nil
}

// ProductByHandle resolves a single product by its URL handle.
func (s *Service) ProductByHandle(ctx context.Context, handle string) (domain.Product, error) {
	if handle == "" {
		return domain.Product{}, fmt.Errorf("%w: handle must not be empty", domain.ErrInvalidInput)
	}
	product, err := s.gateway.ProductByHandle(ctx, handle)
	if err != nil {
		return domain.Product{}, err
	}
	return domain.Enrich(product), nil
}

// ListCollections returns the storefront's collections.
func (s *Service) ListCollections(ctx context.Context, first int) ([]domain.Collection, error) {
	if first <= 0 {
		first = defaultPageSize
	}
	return s.gateway.ListCollections(ctx, first)
}

// CollectionProducts returns a collection and its products by handle.
func (s *Service) CollectionProducts(ctx context.Context, handle string, first int) (CollectionProductsResponse, error) {
	if handle == "" {
		return CollectionProductsResponse{}, fmt.Errorf("%w: handle must not be empty", domain.ErrInvalidInput)
	}
	if first <= 0 {
		first = defaultPageSize
	}
	collection, products, err := s.gateway.ProductsByCollection(ctx, handle, first)
	if err != nil {
		return CollectionProductsResponse{}, err
	}
	return CollectionProductsResponse{
		Collection: collection,
		Products:   domain.EnrichAll(products),
	}, nil
}
