package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter registers storefront HTTP routes and the middleware stack.
// Centralizing routes here keeps session and error behavior consistent
// across endpoints.
func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware)

	r.Get("/healthz", handler.healthz)
	r.Get("/readyz", handler.readyz)

	r.Route("/storefront/v1", func(r chi.Router) {
		r.Post("/session", handler.startSession)

		r.Get("/products", handler.listProducts)
		r.Get("/products/{handle}", handler.productByHandle)
		r.Get("/collections", handler.listCollections)
		r.Get("/collections/{handle}", handler.collectionProducts)
		r.Get("/search", handler.search)
		r.Get("/currencies", handler.listCurrencies)

		r.Group(func(r chi.Router) {
			r.Use(handler.sessionMiddleware)

			r.Get("/session", handler.sessionState)

			r.Post("/auth/login", handler.login)
			r.Post("/auth/logout", handler.logout)
			r.Post("/auth/register", handler.register)
			r.Get("/auth/callback", handler.accountCallback)

			r.Get("/account", handler.account)
			r.Get("/account/orders", handler.orders)
			r.Get("/account/orders/{order_id}", handler.orderDetails)

			r.Get("/cart", handler.cart)
			r.Post("/cart/lines", handler.addToCart)
			r.Patch("/cart/lines", handler.updateCartLines)
			r.Delete("/cart/lines", handler.removeCartLines)
			r.Get("/cart/checkout-url", handler.checkoutURL)

			r.Get("/currency", handler.currency)
			r.Put("/currency", handler.setCurrency)
			r.Get("/currency/quote", handler.quote)
		})
	})

	return r
}
