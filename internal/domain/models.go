package domain

import "time"

// Money is a gateway amount in a named currency. Amounts arrive from the
// gateway as decimal strings and are parsed once at the adapter boundary.
type Money struct {
	Amount       float64 `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
}

type Image struct {
	URL     string `json:"url"`
	AltText string `json:"alt_text,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

type SelectedOption struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Variant is a purchasable SKU of a product (size/colour combination).
type Variant struct {
	ID                string           `json:"id"`
	Title             string           `json:"title"`
	SKU               string           `json:"sku,omitempty"`
	AvailableForSale  bool             `json:"available_for_sale"`
	QuantityAvailable int              `json:"quantity_available"`
	Price             Money            `json:"price"`
	CompareAtPrice    *Money           `json:"compare_at_price,omitempty"`
	SelectedOptions   []SelectedOption `json:"selected_options,omitempty"`
	Image             *Image           `json:"image,omitempty"`
}

type Metafield struct {
	Namespace string `json:"namespace"`
	Key       string `json:"key"`
	Value     string `json:"value"`
	Type      string `json:"type"`
}

// Product is the gateway's product record plus the derived presentation
// fields computed once at the fetch boundary (see Enrich).
type Product struct {
	ID               string      `json:"id"`
	Title            string      `json:"title"`
	Handle           string      `json:"handle"`
	Description      string      `json:"description"`
	ProductType      string      `json:"product_type"`
	Vendor           string      `json:"vendor"`
	Tags             []string    `json:"tags"`
	CreatedAt        time.Time   `json:"created_at"`
	AvailableForSale bool        `json:"available_for_sale"`
	TotalInventory   int         `json:"total_inventory"`
	Images           []Image     `json:"images"`
	Variants         []Variant   `json:"variants"`
	Metafields       []Metafield `json:"metafields,omitempty"`

	// Derived fields, populated by Enrich.
	Sale SaleInfo `json:"sale"`
}

type Collection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
}

// CartLine mirrors one line of the remote cart.
type CartLine struct {
	ID            string `json:"id"`
	Quantity      int    `json:"quantity"`
	VariantID     string `json:"variant_id"`
	VariantTitle  string `json:"variant_title"`
	Price         Money  `json:"price"`
	ProductID     string `json:"product_id"`
	ProductTitle  string `json:"product_title"`
	ProductHandle string `json:"product_handle"`
	Image         *Image `json:"image,omitempty"`
}

type CartCost struct {
	Total    Money  `json:"total"`
	Subtotal Money  `json:"subtotal"`
	TotalTax *Money `json:"total_tax,omitempty"`
}

// Cart is a projection of the gateway's cart object. The gateway owns the
// authoritative state; the only thing remembered locally is the handle.
type Cart struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Lines     []CartLine `json:"lines"`
	Cost      CartCost   `json:"cost"`
}

type Address struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Company   string `json:"company,omitempty"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2,omitempty"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone,omitempty"`
}

type OrderSummary struct {
	ID                string    `json:"id"`
	OrderNumber       int       `json:"order_number"`
	TotalPrice        Money     `json:"total_price"`
	ProcessedAt       time.Time `json:"processed_at"`
	FulfillmentStatus string    `json:"fulfillment_status,omitempty"`
	FinancialStatus   string    `json:"financial_status"`
}

type OrderLineItem struct {
	Title         string `json:"title"`
	Quantity      int    `json:"quantity"`
	VariantTitle  string `json:"variant_title"`
	Price         Money  `json:"price"`
	ProductHandle string `json:"product_handle"`
	Image         *Image `json:"image,omitempty"`
}

type Fulfillment struct {
	TrackingCompany string   `json:"tracking_company,omitempty"`
	TrackingNumbers []string `json:"tracking_numbers,omitempty"`
	TrackingURLs    []string `json:"tracking_urls,omitempty"`
	Status          string   `json:"status"`
}

type Order struct {
	OrderSummary
	Name            string          `json:"name"`
	Email           string          `json:"email"`
	SubtotalPrice   Money           `json:"subtotal_price"`
	TotalTax        Money           `json:"total_tax"`
	TotalShipping   Money           `json:"total_shipping"`
	ShippingAddress *Address        `json:"shipping_address,omitempty"`
	BillingAddress  *Address        `json:"billing_address,omitempty"`
	LineItems       []OrderLineItem `json:"line_items"`
	Fulfillments    []Fulfillment   `json:"fulfillments,omitempty"`
	CancelReason    string          `json:"cancel_reason,omitempty"`
}

// Customer is a read-only projection of the gateway's customer record.
// It is never persisted locally; it lives and dies with the session token.
type Customer struct {
	ID               string         `json:"id"`
	FirstName        string         `json:"first_name,omitempty"`
	LastName         string         `json:"last_name,omitempty"`
	DisplayName      string         `json:"display_name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone,omitempty"`
	AcceptsMarketing bool           `json:"accepts_marketing"`
	Addresses        []Address      `json:"addresses,omitempty"`
	Orders           []OrderSummary `json:"orders,omitempty"`
}
