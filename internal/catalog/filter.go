package catalog

import (
	"strings"

	"cafestore/internal/domain"
)

const (
	noticeEmptyCategory = "No products found in this category!"
	noticeEmptySearch   = "No products found for this search!"
)

// Result is the derived visible subset of the catalog.
type Result struct {
	Products []domain.Product
	Category string // selected category after derivation; empty means "All Products"
	Notice   string // non-fatal "no results" message, empty when anything matched
}

// Derive filters the catalog by the selected category and an optional free-text
// search term. A term that exactly names an existing category (case-insensitive)
// switches the selection to that category; any other term matches title or
// category as a substring and clears the category selection.
func Derive(products []domain.Product, category, term string) Result {
	if len(products) == 0 {
		return Result{}
	}

	term = strings.TrimSpace(term)
	if term == "" {
		if category == "" {
			return Result{Products: products}
		}
		var out []domain.Product
		for _, p := range products {
			if strings.EqualFold(p.Category, category) {
				out = append(out, p)
			}
		}
		return Result{Products: out, Category: category}
	}

	lower := strings.ToLower(term)

	// Category search takes priority over text search.
	isCategory := false
	for _, p := range products {
		if strings.ToLower(p.Category) == lower {
			isCategory = true
			break
		}
	}
	if isCategory {
		var out []domain.Product
		for _, p := range products {
			if strings.ToLower(p.Category) == lower {
				out = append(out, p)
			}
		}
		r := Result{Products: out, Category: lower}
		if len(out) == 0 {
			r.Notice = noticeEmptyCategory
		}
		return r
	}

	var out []domain.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), lower) ||
			strings.Contains(strings.ToLower(p.Category), lower) {
			out = append(out, p)
		}
	}
	r := Result{Products: out}
	if len(out) == 0 {
		r.Notice = noticeEmptySearch
	}
	return r
}

// Categories returns the distinct categories of the catalog in first-seen order.
func Categories(products []domain.Product) []string {
	seen := map[string]bool{}
	var out []string
	for _, p := range products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
