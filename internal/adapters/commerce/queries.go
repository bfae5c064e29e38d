package commerce

// Shared selection fragments keep catalog queries consistent; the gateway
// caps page sizes at 250 products and 100 variants.
const productFields = `
	id
	title
	handle
	description
	productType
	vendor
	tags
	createdAt
	availableForSale
	totalInventory
	priceRange {
		minVariantPrice { amount currencyCode }
		maxVariantPrice { amount currencyCode }
	}
	images(first: 10) {
		edges { node { url altText width height } }
	}
	variants(first: 100) {
		edges {
			node {
				id
				title
				sku
				availableForSale
				quantityAvailable
				price { amount currencyCode }
				compareAtPrice { amount currencyCode }
				selectedOptions { name value }
				image { url altText width height }
			}
		}
	}
	metafields(
		identifiers: [
			{ namespace: "custom", key: "upper_material" }
			{ namespace: "custom", key: "sole_material" }
			{ namespace: "custom", key: "weight" }
			{ namespace: "custom", key: "size_guide" }
		]
	) {
		key
		value
		type
		namespace
	}
`

const queryProducts = `
query getAllProducts($first: Int!, $after: String) {
	products(first: $first, after: $after) {
		edges { node {` + productFields + `} }
		pageInfo { hasNextPage endCursor }
	}
}`

const queryProductByHandle = `
query getProductByHandle($handle: String!) {
	product(handle: $handle) {` + productFields + `}
}`

const queryCollections = `
query getAllCollections($first: Int!) {
	collections(first: $first) {
		edges { node { id title handle description } }
	}
}`

const queryProductsByCollection = `
query getProductsByCollection($collection: String!, $first: Int!) {
	collection(handle: $collection) {
		id
		title
		handle
		description
		products(first: $first) {
			edges { node {` + productFields + `} }
		}
	}
}`

const cartFields = `
	id
	createdAt
	updatedAt
	lines(first: 100) {
		edges {
			node {
				id
				quantity
				merchandise {
					... on ProductVariant {
						id
						title
						price { amount currencyCode }
						product {
							id
							title
							handle
							featuredImage { url altText width height }
						}
					}
				}
			}
		}
	}
	cost {
		totalAmount { amount currencyCode }
		subtotalAmount { amount currencyCode }
		totalTaxAmount { amount currencyCode }
	}
`

const mutationCartCreate = `
mutation createCart($cartInput: CartInput) {
	cartCreate(input: $cartInput) {
		cart {` + cartFields + `}
		userErrors { field message }
	}
}`

const mutationCartLinesAdd = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
	cartLinesAdd(cartId: $cartId, lines: $lines) {
		cart {` + cartFields + `}
		userErrors { field message }
	}
}`

const mutationCartLinesRemove = `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
	cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
		cart {` + cartFields + `}
		userErrors { field message }
	}
}`

const mutationCartLinesUpdate = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
	cartLinesUpdate(cartId: $cartId, lines: $lines) {
		cart {` + cartFields + `}
		userErrors { field message }
	}
}`

const queryCart = `
query getCart($cartId: ID!) {
	cart(id: $cartId) {` + cartFields + `}
}`

const queryCheckoutURL = `
query checkoutURL($cartId: ID!) {
	cart(id: $cartId) { checkoutUrl }
}`

const mutationCustomerLogin = `
mutation customerAccessTokenCreate($input: CustomerAccessTokenCreateInput!) {
	customerAccessTokenCreate(input: $input) {
		customerAccessToken { accessToken expiresAt }
		customerUserErrors { field message code }
	}
}`

const mutationCustomerLogout = `
mutation customerAccessTokenDelete($customerAccessToken: String!) {
	customerAccessTokenDelete(customerAccessToken: $customerAccessToken) {
		deletedAccessToken
		userErrors { field message }
	}
}`

const mutationCustomerCreate = `
mutation customerCreate($input: CustomerCreateInput!) {
	customerCreate(input: $input) {
		customer { id firstName lastName email }
		customerUserErrors { field message code }
	}
}`

const queryCustomer = `
query getCustomer($customerAccessToken: String!) {
	customer(customerAccessToken: $customerAccessToken) {
		id
		firstName
		lastName
		displayName
		email
		phone
		acceptsMarketing
		addresses(first: 10) {
			edges {
				node {
					firstName lastName company
					address1 address2 city province country zip phone
				}
			}
		}
		orders(first: 10) {
			edges {
				node {
					id
					orderNumber
					totalPrice { amount currencyCode }
					processedAt
					fulfillmentStatus
					financialStatus
				}
			}
		}
	}
}`

const queryOrderDetails = `
query getOrder($customerAccessToken: String!, $orderId: ID!) {
	customer(customerAccessToken: $customerAccessToken) {
		orders(first: 1, query: $orderId) {
			edges {
				node {
					id
					orderNumber
					name
					email
					processedAt
					fulfillmentStatus
					financialStatus
					cancelReason
					totalPrice { amount currencyCode }
					subtotalPrice { amount currencyCode }
					totalTax { amount currencyCode }
					totalShippingPrice { amount currencyCode }
					shippingAddress { firstName lastName company address1 address2 city province country zip phone }
					billingAddress { firstName lastName company address1 address2 city province country zip phone }
					lineItems(first: 50) {
						edges {
							node {
								title
								quantity
								variant {
									title
									price { amount currencyCode }
									product {
										handle
										featuredImage { url altText }
									}
								}
							}
						}
					}
					fulfillments(first: 10) {
						trackingCompany
						trackingInfo { number url }
						trackingUrls
						status
					}
				}
			}
		}
	}
}`
