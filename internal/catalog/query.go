package catalog

import (
	"slices"
	"strings"

	"github.com/go-faster/errors"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrInvalidFilterSpec is returned when a FilterSpec violates its contract.
// It is a caller error, never recovered internally.
var ErrInvalidFilterSpec = errors.New("invalid filter spec")

// SortKey enumerates the supported catalog orderings.
type SortKey string

const (
	// SortDefault preserves the input order of the product list.
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNameAsc   SortKey = "name_asc"
	SortNameDesc  SortKey = "name_desc"
)

// IsValid reports whether k is one of the supported sort keys.
func (k SortKey) IsValid() bool {
	switch k {
	case SortDefault, SortPriceAsc, SortPriceDesc, SortNameAsc, SortNameDesc:
		return true
	}
	return false
}

// FilterSpec is the complete set of catalog query parameters. MinPrice and
// MaxPrice are inclusive bounds in minor currency units.
type FilterSpec struct {
	Category   string
	SearchTerm string
	MinPrice   int64
	MaxPrice   int64
	Sort       SortKey
	Page       int
	PageSize   int
}

// Validate checks the filter's contract: non-negative price bounds with
// MinPrice <= MaxPrice, positive page and page size, and a known sort key.
func (s FilterSpec) Validate() error {
	if s.MinPrice < 0 || s.MaxPrice < 0 {
		return errors.Wrap(ErrInvalidFilterSpec, "price bounds must be non-negative")
	}
	if s.MinPrice > s.MaxPrice {
		return errors.Wrap(ErrInvalidFilterSpec, "min price exceeds max price")
	}
	if s.PageSize <= 0 {
		return errors.Wrap(ErrInvalidFilterSpec, "page size must be positive")
	}
	if s.Page <= 0 {
		return errors.Wrap(ErrInvalidFilterSpec, "page must be positive")
	}
	if !s.Sort.IsValid() {
		return errors.Wrapf(ErrInvalidFilterSpec, "unknown sort key %q", s.Sort)
	}
	return nil
}

// QueryResult holds one page of matching products plus match totals.
type QueryResult struct {
	Items        []Product
	TotalMatches int
	TotalPages   int
}

// Query runs the filter/sort/paginate pipeline over the full product list.
// It is pure: the input slice is never modified and the result is
// deterministic for a given input.
//
// Pipeline order is fixed: category filter, text search, price range,
// stable sort, pagination. When Page exceeds the last page the items slice
// is empty; clamping the page is the caller's responsibility.
func Query(products []Product, spec FilterSpec) (QueryResult, error) {
	if err := spec.Validate(); err != nil {
		return QueryResult{}, err
	}

	search := strings.ToLower(spec.SearchTerm)

	filtered := make([]Product, 0, len(products))
	for _, p := range products {
		if spec.Category != CategoryAll && p.Category != spec.Category {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		if p.Price < spec.MinPrice || p.Price > spec.MaxPrice {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, spec.Sort)

	totalMatches := len(filtered)
	totalPages := (totalMatches + spec.PageSize - 1) / spec.PageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (spec.Page - 1) * spec.PageSize
	if start >= totalMatches {
		return QueryResult{Items: []Product{}, TotalMatches: totalMatches, TotalPages: totalPages}, nil
	}
	end := min(start+spec.PageSize, totalMatches)

	return QueryResult{
		Items:        filtered[start:end],
		TotalMatches: totalMatches,
		TotalPages:   totalPages,
	}, nil
}

// matchesSearch reports whether the lowercased search term occurs in the
// product's name, description, or brand.
func matchesSearch(p Product, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search) ||
		strings.Contains(strings.ToLower(p.Brand), search)
}

// sortProducts orders the filtered slice in place. All orderings are stable:
// products comparing equal keep their original relative order.
func sortProducts(products []Product, key SortKey) {
	switch key {
	case SortDefault:
		// Input order already holds.
	case SortPriceAsc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return compareInt64(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(products, func(a, b Product) int {
			return compareInt64(b.Price, a.Price)
		})
	case SortNameAsc:
		byName(products, false)
	case SortNameDesc:
		byName(products, true)
	}
}

// byName applies a locale-aware name ordering. A collator is not safe for
// concurrent use, so each call builds its own; the catalog is small enough
// (tens to low hundreds of products) that this does not matter.
func byName(products []Product, desc bool) {
	c := collate.New(language.English, collate.Loose)
	slices.SortStableFunc(products, func(a, b Product) int {
		cmp := c.CompareString(a.Name, b.Name)
		if desc {
			return -cmp
		}
		return cmp
	})
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
