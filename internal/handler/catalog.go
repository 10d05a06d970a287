package handler

import (
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-faster/errors"

	"github.com/compustore/backend/internal/catalog"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// productResponse is the JSON shape for one product.
type productResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Price          int64           `json:"price"`
	Brand          string          `json:"brand,omitempty"`
	Description    string          `json:"description,omitempty"`
	Image          string          `json:"image,omitempty"`
	Specifications []specification `json:"specifications,omitempty"`
}

type specification struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// productListResponse is one page of catalog results.
type productListResponse struct {
	Items        []productResponse `json:"items"`
	TotalMatches int               `json:"total_matches"`
	TotalPages   int               `json:"total_pages"`
	Page         int               `json:"page"`
	PageSize     int               `json:"page_size"`
}

func (h *Handler) toProductResponse(p catalog.Product) productResponse {
	specs := make([]specification, 0, len(p.Specifications))
	for _, s := range p.Specifications {
		specs = append(specs, specification{Key: s.Key, Value: s.Value})
	}
	return productResponse{
		ID:             p.ID,
		Name:           p.Name,
		Category:       p.Category,
		Price:          p.Price,
		Brand:          p.Brand,
		Description:    p.Description,
		Image:          h.imageURL(p.Image),
		Specifications: specs,
	}
}

// listProducts handles GET /api/v1/products.
//
// Query parameters: category, search, min_price, max_price (minor units),
// sort (default, price_asc, price_desc, name_asc, name_desc), page,
// page_size. A page past the last one is clamped to the last page.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	spec, err := parseFilterSpec(r)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "INVALID_QUERY", err.Error())
		return
	}

	products, err := h.products.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := catalog.Query(products, spec)
	if err != nil {
		writeError(w, r, err)
		return
	}

	// The engine reports an empty page for out-of-range requests; serve the
	// last page instead so "page=999" links degrade gracefully.
	if spec.Page > result.TotalPages {
		spec.Page = result.TotalPages
		if result, err = catalog.Query(products, spec); err != nil {
			writeError(w, r, err)
			return
		}
	}

	items := make([]productResponse, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, h.toProductResponse(p))
	}

	writeData(w, http.StatusOK, productListResponse{
		Items:        items,
		TotalMatches: result.TotalMatches,
		TotalPages:   result.TotalPages,
		Page:         spec.Page,
		PageSize:     spec.PageSize,
	})
}

// parseFilterSpec builds a catalog.FilterSpec from the request query string.
func parseFilterSpec(r *http.Request) (catalog.FilterSpec, error) {
	q := r.URL.Query()

	spec := catalog.FilterSpec{
		Category:   q.Get("category"),
		SearchTerm: q.Get("search"),
		MaxPrice:   math.MaxInt64,
		Sort:       catalog.SortDefault,
		Page:       1,
		PageSize:   defaultPageSize,
	}
	if spec.Category == "" {
		spec.Category = catalog.CategoryAll
	}
	if s := q.Get("sort"); s != "" {
		spec.Sort = catalog.SortKey(s)
	}

	var err error
	if v := q.Get("min_price"); v != "" {
		if spec.MinPrice, err = strconv.ParseInt(v, 10, 64); err != nil {
			return spec, errors.New("min_price must be an integer")
		}
	}
	if v := q.Get("max_price"); v != "" {
		if spec.MaxPrice, err = strconv.ParseInt(v, 10, 64); err != nil {
			return spec, errors.New("max_price must be an integer")
		}
	}
	if v := q.Get("page"); v != "" {
		if spec.Page, err = strconv.Atoi(v); err != nil {
			return spec, errors.New("page must be an integer")
		}
	}
	if v := q.Get("page_size"); v != "" {
		if spec.PageSize, err = strconv.Atoi(v); err != nil {
			return spec, errors.New("page_size must be an integer")
		}
		if spec.PageSize > maxPageSize {
			spec.PageSize = maxPageSize
		}
	}

	return spec, nil
}

// getProduct handles GET /api/v1/products/{productID}.
func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	p, err := h.products.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, h.toProductResponse(*p))
}

// listCategories handles GET /api/v1/categories. The "All" pseudo-category
// leads the list so storefront filters can render it first.
func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.products.Categories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, append([]string{catalog.CategoryAll}, categories...))
}
