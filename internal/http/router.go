package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter assembles the API surface. Every route under /api/v1 sees the
// identity header middleware; handlers decide per-route whether a user is
// required.
func NewRouter(
	books *BookHandler,
	posts *PostHandler,
	cart *CartHandler,
	checkout *CheckoutHandler,
	requestTimeout time.Duration,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(RequestIDMiddleware)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(middleware.Compress(5))
	r.Use(AuthMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/books", func(r chi.Router) {
			r.Get("/", books.List)
			r.Post("/", books.Create)
			r.Get("/search", books.Search)
			r.Get("/mine", books.ListMine)
			r.Get("/{bookID}", books.Get)
			r.Put("/{bookID}", books.Update)
			r.Delete("/{bookID}", books.Delete)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Post("/", posts.Create)
			r.Get("/mine", posts.ListMine)
			r.Get("/{postID}", posts.Get)
			r.Put("/{postID}", posts.Update)
			r.Delete("/{postID}", posts.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cart.GetCart)
			r.Post("/items", cart.AddItem)
			r.Delete("/items/{bookID}", cart.RemoveItem)
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Post("/orders", checkout.CreatePaymentOrder)
			r.Post("/orders/{providerOrderID}/capture", checkout.CapturePaymentOrder)
		})

		r.Get("/orders/{orderID}", checkout.GetOrder)
	})

	return r
}
