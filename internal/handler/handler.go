// Package handler exposes the storefront HTTP API.
package handler

import (
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/compustore/backend/internal/cart"
	"github.com/compustore/backend/internal/catalog"
	"github.com/compustore/backend/internal/content"
	"github.com/compustore/backend/internal/enquiry"
)

// Config holds non-dependency configuration for the Handler.
type Config struct {
	// ImageBaseURL is prepended to relative image paths in responses. When
	// empty, image paths are returned as stored.
	ImageBaseURL string
}

// Handler serves the storefront API, delegating to the domain services.
type Handler struct {
	products  catalog.Repository
	carts     *cart.Service
	enquiries *enquiry.Service
	content   content.Repository

	imageBaseURL string
}

// New constructs a Handler with the required domain dependencies.
func New(cfg Config, products catalog.Repository, carts *cart.Service, enquiries *enquiry.Service, contentRepo content.Repository) *Handler {
	return &Handler{
		products:     products,
		carts:        carts,
		enquiries:    enquiries,
		content:      contentRepo,
		imageBaseURL: cfg.ImageBaseURL,
	}
}

// Routes registers the API routes on a fresh chi router.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{productID}", h.getProduct)
		r.Get("/categories", h.listCategories)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.getCart)
			r.Delete("/", h.clearCart)
			r.Post("/items", h.addCartItem)
			r.Put("/items/{productID}", h.updateCartItem)
			r.Delete("/items/{productID}", h.removeCartItem)
		})

		r.Post("/enquiries", h.submitEnquiry)

		r.Get("/gallery", h.listGallery)
		r.Get("/team", h.listTeam)
		r.Get("/testimonials", h.listTestimonials)
	})

	return r
}

// imageURL resolves a stored image path against the configured base URL.
func (h *Handler) imageURL(path string) string {
	if path == "" || h.imageBaseURL == "" || strings.HasPrefix(path, "http") {
		return path
	}
	return h.imageBaseURL + "/" + strings.TrimPrefix(path, "/")
}
