package domain

// Search item types.
const (
	SearchTypeProduct = "product"
	SearchTypeModel   = "model"
)

// SearchItem is one entry of the in-memory search index: either a product
// or a shoe model derived from the products carrying its model tag.
type SearchItem struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url"`
	Image       string   `json:"image,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	// Price is the normalized base-currency price used for price sorting.
	// Zero for model entries without a representative price.
	Price float64 `json:"price"`
}
