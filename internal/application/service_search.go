package application

import (
	"context"
	"sort"
	"strings"

	"github.com/petitpas/storefront/internal/domain"
)

// PreviewLimit is how many results the quick-search dropdown shows.
const PreviewLimit = 8

// Search runs a query against the in-memory index, rebuilding it first if
// it has expired. Limit <= 0 returns every match; the preview endpoint
// passes PreviewLimit.
func (s *Service) Search(ctx context.Context, filter SearchFilter) (SearchResponse, error) {
	index, err := s.searchIndexSnapshot(ctx)
	if err != nil {
		return SearchResponse{}, err
	}

	query := strings.ToLower(strings.TrimSpace(filter.Query))
	colors := normalizeColors(filter.Colors)

	var matched []domain.SearchItem
	for _, item := range index {
		if !typeMatches(filter.Type, item.Type) {
			continue
		}
		if query != "" && !itemMatchesQuery(item, query) {
			continue
		}
		if len(colors) > 0 && !colorsIntersect(item.Colors, colors) {
			continue
		}
		matched = append(matched, item)
	}

	sortResults(matched, filter.Sort)

	total := len(matched)
	if filter.Limit > 0 && len(matched) > filter.Limit {
		matched = matched[:filter.Limit]
	}
	if matched == nil {
		matched = []domain.SearchItem{}
	}
	return SearchResponse{Results: matched, Total: total}, nil
}

// searchIndexSnapshot returns the current index, rebuilding it when the
// TTL has lapsed. Concurrent searches during a rebuild serve the rebuild
// result; there is no stale-while-revalidate here because a full catalog
// walk is cheap at this store's size.
func (s *Service) searchIndexSnapshot(ctx context.Context) ([]domain.SearchItem, error) {
	s.searchMu.RLock()
	fresh := s.searchIndex != nil && s.nowFn().Sub(s.searchBuiltAt) < s.cfg.SearchIndexTTL
	index := s.searchIndex
	s.searchMu.RUnlock()
	if fresh {
		return index, nil
	}

	s.searchMu.Lock()
	defer s.searchMu.Unlock()
	if s.searchIndex != nil && s.nowFn().Sub(s.searchBuiltAt) < s.cfg.SearchIndexTTL {
		return s.searchIndex, nil
	}

	products, err := s.AllProducts(ctx)
	if err != nil {
		// A stale index beats no results while the gateway is down.
		if s.searchIndex != nil {
			s.logger.Warn("search index rebuild failed, serving stale index",
				"operation", "search_index_build",
				"error", err.Error(),
			)
			return s.searchIndex, nil
		}
		return nil, err
	}

	s.searchIndex = buildSearchIndex(products)
	s.searchBuiltAt = s.nowFn()
	s.logger.Info("search index rebuilt",
		"operation", "search_index_build",
		"entries", len(s.searchIndex),
	)
	return s.searchIndex, nil
}

// buildSearchIndex flattens the catalog into searchable entries: one per
// product, plus one synthetic entry per distinct shoe model found in the
// products' model tags.
func buildSearchIndex(products []domain.Product) []domain.SearchItem {
	index := make([]domain.SearchItem, 0, len(products))
	type modelAgg struct {
		item  domain.SearchItem
		seen  map[string]struct{}
		order int
	}
	models := make(map[string]*modelAgg)

	for _, p := range products {
		item := domain.SearchItem{
			ID:          p.ID,
			Type:        domain.SearchTypeProduct,
			Title:       p.Title,
			Description: p.Description,
			URL:         "/products/" + p.Handle,
			Colors:      domain.Colors(p),
			Price:       p.Sale.SalePrice,
		}
		if len(p.Images) > 0 {
			item.Image = p.Images[0].URL
		}
		index = append(index, item)

		model := domain.ModelName(p)
		if model == "" {
			continue
		}
		agg, ok := models[model]
		if !ok {
			agg = &modelAgg{
				item: domain.SearchItem{
					ID:    "model:" + model,
					Type:  domain.SearchTypeModel,
					Title: model,
					URL:   "/search?type=models&q=" + model,
					Price: p.Sale.SalePrice,
				},
				seen:  make(map[string]struct{}),
				order: len(models),
			}
			if len(p.Images) > 0 {
				agg.item.Image = p.Images[0].URL
			}
			models[model] = agg
		}
		for _, c := range domain.Colors(p) {
			if _, dup := agg.seen[c]; dup {
				continue
			}
			agg.seen[c] = struct{}{}
			agg.item.Colors = append(agg.item.Colors, c)
		}
	}

	ordered := make([]*modelAgg, 0, len(models))
	for _, agg := range models {
		ordered = append(ordered, agg)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].order < ordered[j].order })
	for _, agg := range ordered {
		index = append(index, agg.item)
	}
	return index
}

func typeMatches(want, got string) bool {
	switch want {
	case "", "all":
		return true
	case "products":
		return got == domain.SearchTypeProduct
	case "models":
		return got == domain.SearchTypeModel
	default:
		return false
	}
}

func itemMatchesQuery(item domain.SearchItem, query string) bool {
	if strings.Contains(strings.ToLower(item.Title), query) {
		return true
	}
	return strings.Contains(strings.ToLower(item.Description), query)
}

func normalizeColors(colors []string) []string {
	out := make([]string, 0, len(colors))
	for _, c := range colors {
		c = strings.ToLower(strings.TrimSpace(c))
		if c != "" {
			out = append(out, c)
		}
	}
	return out
}

func colorsIntersect(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// sortResults orders matches in place. All sorts are stable so equal keys
// keep catalog order; the default relevance mode is index insertion order
// and leaves the slice untouched.
func sortResults(items []domain.SearchItem, mode string) {
	switch mode {
	case "name":
		sort.SliceStable(items, func(i, j int) bool {
			return strings.ToLower(items[i].Title) < strings.ToLower(items[j].Title)
		})
	case "price-asc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case "price-desc":
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	}
}
