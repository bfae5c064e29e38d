package domain

import "testing"

func variantAt(price float64, compareAt *float64) Variant {
	v := Variant{
		ID:    "v1",
		Price: Money{Amount: price, CurrencyCode: BaseCurrency},
	}
	if compareAt != nil {
		v.CompareAtPrice = &Money{Amount: *compareAt, CurrencyCode: BaseCurrency}
	}
	return v
}

func TestEnrichComputesDiscountFromFirstVariant(t *testing.T) {
	t.Parallel()

	original := 100.0
	p := Enrich(Product{
		AvailableForSale: true,
		Variants:         []Variant{variantAt(80, &original)},
	})

	if !p.Sale.OnSale {
		t.Fatal("expected product on sale")
	}
	if p.Sale.DiscountPercentage != 20 {
		t.Fatalf("expected 20%% discount, got %d", p.Sale.DiscountPercentage)
	}
	if p.Sale.SalePrice != 80 {
		t.Fatalf("expected sale price 80, got %v", p.Sale.SalePrice)
	}
	if p.Sale.OriginalPrice == nil || *p.Sale.OriginalPrice != 100 {
		t.Fatalf("expected original price 100, got %v", p.Sale.OriginalPrice)
	}
}

func TestEnrichDiscountRounding(t *testing.T) {
	t.Parallel()

	original := 900.0
	p := Enrich(Product{Variants: []Variant{variantAt(666, &original)}})
	// (900-666)/900*100 = 26.0
	if p.Sale.DiscountPercentage != 26 {
		t.Fatalf("expected rounded 26%%, got %d", p.Sale.DiscountPercentage)
	}
}

func TestEnrichEqualCompareAtIsNotASale(t *testing.T) {
	t.Parallel()

	original := 80.0
	p := Enrich(Product{Variants: []Variant{variantAt(80, &original)}})
	if p.Sale.OnSale || p.Sale.DiscountPercentage != 0 {
		t.Fatalf("equal compare-at must not read as a sale: %+v", p.Sale)
	}
}

func TestEnrichBadgesAndComingSoon(t *testing.T) {
	t.Parallel()

	original := 100.0
	p := Enrich(Product{
		Tags:             []string{"Bestseller", "shoe-socks", "model:aurora"},
		AvailableForSale: false,
		Variants:         []Variant{variantAt(80, &original)},
	})

	want := []string{BadgeBestseller, BadgeSale, BadgeShoeSocks}
	if len(p.Sale.Badges) != len(want) {
		t.Fatalf("expected badges %v, got %v", want, p.Sale.Badges)
	}
	for i, badge := range want {
		if p.Sale.Badges[i] != badge {
			t.Fatalf("expected badges %v, got %v", want, p.Sale.Badges)
		}
	}
	if !p.Sale.ComingSoon {
		t.Fatal("unavailable product should be coming soon")
	}
}

func TestEnrichNoVariantsIsInert(t *testing.T) {
	t.Parallel()

	p := Enrich(Product{AvailableForSale: true})
	if p.Sale.OnSale || p.Sale.SalePrice != 0 || len(p.Sale.Badges) != 0 {
		t.Fatalf("expected inert sale info, got %+v", p.Sale)
	}
}

func TestModelName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tags []string
		want string
	}{
		{[]string{"model:aurora"}, "aurora"},
		{[]string{"Model: Aurora "}, "aurora"},
		{[]string{"bestseller"}, ""},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := ModelName(Product{Tags: tc.tags}); got != tc.want {
			t.Fatalf("ModelName(%v) = %q, want %q", tc.tags, got, tc.want)
		}
	}
}

func TestColorsDeduplicatesAcrossVariants(t *testing.T) {
	t.Parallel()

	p := Product{Variants: []Variant{
		{SelectedOptions: []SelectedOption{{Name: "Color", Value: "Sky Blue"}, {Name: "Size", Value: "21"}}},
		{SelectedOptions: []SelectedOption{{Name: "Colour", Value: "sky blue"}}},
		{SelectedOptions: []SelectedOption{{Name: "Color", Value: "White"}}},
	}}
	colors := Colors(p)
	if len(colors) != 2 || colors[0] != "sky blue" || colors[1] != "white" {
		t.Fatalf("unexpected colors %v", colors)
	}
}

func TestRateTableCloneIsIndependent(t *testing.T) {
	t.Parallel()

	clone := FallbackRates.Clone()
	clone["USD"] = 99
	if FallbackRates["USD"] == 99 {
		t.Fatal("clone must not alias the source table")
	}
}
