package catalog

import (
	"math/rand"
	"strings"
	"time"
)

// FilterParams holds the optional constraints for Filter. A zero Category
// means no category constraint; a nil MaxPrice means no price ceiling.
type FilterParams struct {
	Category string
	MaxPrice *float64
}

// Filter returns all products matching the given constraints, in catalog
// order. Both constraints are ANDed when both present; with no constraints
// the full catalog is returned unchanged. Category is an exact match against
// the normalized stored category.
func Filter(products []Product, params FilterParams) []Product {
	if params.Category == "" && params.MaxPrice == nil {
		return products
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if params.Category != "" && p.Category != params.Category {
			continue
		}
		if params.MaxPrice != nil && p.Price > *params.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	return matched
}

// Search returns all products whose name, brand, or description contains the
// given term, case-insensitively. An empty term matches everything.
func Search(products []Product, term string) []Product {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return products
	}

	matched := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ByID returns the first product with the given id, or false if none.
func ByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Sample returns min(n, len(products)) products chosen uniformly at random
// without replacement. Each call uses its own RNG, so there is no shared
// mutable state between calls. An empty input yields an empty slice.
func Sample(products []Product, n int) []Product {
	if n <= 0 || len(products) == 0 {
		return []Product{}
	}
	if n > len(products) {
		n = len(products)
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	picked := make([]Product, 0, n)
	for _, idx := range rng.Perm(len(products))[:n] {
		picked = append(picked, products[idx])
	}
	return picked
}
