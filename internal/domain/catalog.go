package domain

import (
	"math"
	"strings"
)

// Badge values understood by the storefront product cards.
const (
	BadgeBestseller = "bestseller"
	BadgeSale       = "sale"
	BadgeShoeSocks  = "shoe-socks"
)

// SaleInfo is the consolidated set of presentation fields previously
// recomputed ad hoc by every consuming view. It is derived exactly once,
// by Enrich, when products cross the fetch boundary.
type SaleInfo struct {
	OnSale             bool     `json:"on_sale"`
	SalePrice          float64  `json:"sale_price"`
	OriginalPrice      *float64 `json:"original_price,omitempty"`
	DiscountPercentage int      `json:"discount_percentage"`
	Badges             []string `json:"badges"`
	ComingSoon         bool     `json:"coming_soon"`
}

// Enrich populates the derived fields of a product in place and returns it.
// Pricing is taken from the first variant, matching what the product grid
// displays.
func Enrich(p Product) Product {
	info := SaleInfo{Badges: []string{}}

	if len(p.Variants) > 0 {
		v := p.Variants[0]
		info.SalePrice = v.Price.Amount
		if v.CompareAtPrice != nil && v.CompareAtPrice.Amount > 0 {
			original := v.CompareAtPrice.Amount
			info.OriginalPrice = &original
			info.OnSale = original > v.Price.Amount
			if info.OnSale {
				info.DiscountPercentage = int(math.Round((original - v.Price.Amount) / original * 100))
			}
		}
	}

	if hasTag(p.Tags, BadgeBestseller) {
		info.Badges = append(info.Badges, BadgeBestseller)
	}
	if info.OnSale {
		info.Badges = append(info.Badges, BadgeSale)
	}
	if hasTag(p.Tags, BadgeShoeSocks) {
		info.Badges = append(info.Badges, BadgeShoeSocks)
	}
	info.ComingSoon = !p.AvailableForSale

	p.Sale = info
	return p
}

// EnrichAll applies Enrich to every product of a freshly fetched list.
func EnrichAll(products []Product) []Product {
	out := make([]Product, len(products))
	for i, p := range products {
		out[i] = Enrich(p)
	}
	return out
}

// ModelName extracts the shoe model a product belongs to from its
// "model:<name>" tag, or "" when the product is not part of a model line.
func ModelName(p Product) string {
	for _, tag := range p.Tags {
		if rest, ok := strings.CutPrefix(strings.ToLower(tag), "model:"); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}

// Colors returns the distinct colour option values of a product's variants,
// lowercased, in first-seen order.
func Colors(p Product) []string {
	seen := make(map[string]struct{})
	var colors []string
	for _, v := range p.Variants {
		for _, opt := range v.SelectedOptions {
			if !strings.EqualFold(opt.Name, "color") && !strings.EqualFold(opt.Name, "colour") {
				continue
			}
			c := strings.ToLower(strings.TrimSpace(opt.Value))
			if c == "" {
				continue
			}
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			colors = append(colors, c)
		}
	}
	return colors
}

func hasTag(tags []string, want string) bool {
	for _, tag := range tags {
		if strings.EqualFold(tag, want) {
			return true
		}
	}
	return false
}
