package commerce

// Wire types mirroring the gateway's edge/node response shape. Amounts are
// decimal strings on the wire and parsed once in the mappers.

type wireUserError struct {
	Field   []string `json:"field"`
	Message string   `json:"message"`
	Code    string   `json:"code,omitempty"`
}

type connection[T any] struct {
	Edges []struct {
		Node T `json:"node"`
	} `json:"edges"`
	PageInfo struct {
		HasNextPage bool   `json:"hasNextPage"`
		EndCursor   string `json:"endCursor"`
	} `json:"pageInfo"`
}

type wireMoney struct {
	Amount       string `json:"amount"`
	CurrencyCode string `json:"currencyCode"`
}

type wireImage struct {
	URL     string `json:"url"`
	AltText string `json:"altText"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
}

type wireVariant struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	SKU               string     `json:"sku"`
	AvailableForSale  bool       `json:"availableForSale"`
	QuantityAvailable int        `json:"quantityAvailable"`
	Price             wireMoney  `json:"price"`
	CompareAtPrice    *wireMoney `json:"compareAtPrice"`
	SelectedOptions   []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"selectedOptions"`
	Image *wireImage `json:"image"`
}

type wireProduct struct {
	ID               string                   `json:"id"`
	Title            string                   `json:"title"`
	Handle           string                   `json:"handle"`
	Description      string                   `json:"description"`
	ProductType      string                   `json:"productType"`
	Vendor           string                   `json:"vendor"`
	Tags             []string                 `json:"tags"`
	CreatedAt        string                   `json:"createdAt"`
	AvailableForSale bool                     `json:"availableForSale"`
	TotalInventory   int                      `json:"totalInventory"`
	Images           connection[wireImage]    `json:"images"`
	Variants         connection[wireVariant]  `json:"variants"`
	Metafields       []*struct {
		Namespace string `json:"namespace"`
		Key       string `json:"key"`
		Value     string `json:"value"`
		Type      string `json:"type"`
	} `json:"metafields"`
}

type wireCollection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Handle      string `json:"handle"`
	Description string `json:"description"`
}

type wireCartLine struct {
	ID          string `json:"id"`
	Quantity    int    `json:"quantity"`
	Merchandise struct {
		ID      string    `json:"id"`
		Title   string    `json:"title"`
		Price   wireMoney `json:"price"`
		Product struct {
			ID            string     `json:"id"`
			Title         string     `json:"title"`
			Handle        string     `json:"handle"`
			FeaturedImage *wireImage `json:"featuredImage"`
		} `json:"product"`
	} `json:"merchandise"`
}

type wireCart struct {
	ID        string                   `json:"id"`
	CreatedAt string                   `json:"createdAt"`
	UpdatedAt string                   `json:"updatedAt"`
	Lines     connection[wireCartLine] `json:"lines"`
	Cost      struct {
		TotalAmount    wireMoney  `json:"totalAmount"`
		SubtotalAmount wireMoney  `json:"subtotalAmount"`
		TotalTaxAmount *wireMoney `json:"totalTaxAmount"`
	} `json:"cost"`
}

type wireAddress struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Company   string `json:"company"`
	Address1  string `json:"address1"`
	Address2  string `json:"address2"`
	City      string `json:"city"`
	Province  string `json:"province"`
	Country   string `json:"country"`
	Zip       string `json:"zip"`
	Phone     string `json:"phone"`
}

type wireOrderSummary struct {
	ID                string    `json:"id"`
	OrderNumber       int       `json:"orderNumber"`
	TotalPrice        wireMoney `json:"totalPrice"`
	ProcessedAt       string    `json:"processedAt"`
	FulfillmentStatus string    `json:"fulfillmentStatus"`
	FinancialStatus   string    `json:"financialStatus"`
}

type wireCustomer struct {
	ID               string                       `json:"id"`
	FirstName        string                       `json:"firstName"`
	LastName         string                       `json:"lastName"`
	DisplayName      string                       `json:"displayName"`
	Email            string                       `json:"email"`
	Phone            string                       `json:"phone"`
	AcceptsMarketing bool                         `json:"acceptsMarketing"`
	Addresses        connection[wireAddress]      `json:"addresses"`
	Orders           connection[wireOrderSummary] `json:"orders"`
}

type wireOrder struct {
	wireOrderSummary
	Name               string       `json:"name"`
	Email              string       `json:"email"`
	CancelReason       string       `json:"cancelReason"`
	SubtotalPrice      wireMoney    `json:"subtotalPrice"`
	TotalTax           wireMoney    `json:"totalTax"`
	TotalShippingPrice wireMoney    `json:"totalShippingPrice"`
	ShippingAddress    *wireAddress `json:"shippingAddress"`
	BillingAddress     *wireAddress `json:"billingAddress"`
	LineItems          connection[struct {
		Title    string `json:"title"`
		Quantity int    `json:"quantity"`
		Variant  struct {
			Title   string    `json:"title"`
			Price   wireMoney `json:"price"`
			Product struct {
				Handle        string     `json:"handle"`
				FeaturedImage *wireImage `json:"featuredImage"`
			} `json:"product"`
		} `json:"variant"`
	}] `json:"lineItems"`
	Fulfillments []struct {
		TrackingCompany string `json:"trackingCompany"`
		TrackingInfo    []struct {
			Number string `json:"number"`
			URL    string `json:"url"`
		} `json:"trackingInfo"`
		TrackingURLs []string `json:"trackingUrls"`
		Status       string   `json:"status"`
	} `json:"fulfillments"`
}
