package inventory

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Product is a stocked item.
//
// The JSON field names are the ones used by the persisted inventory and must
// not change.
type Product struct {
	ID         string    `json:"id"`
	Name       string    `json:"nombre"`
	Supplier   string    `json:"empresa"`
	Quantity   int       `json:"cantidad"`
	Registered time.Time `json:"fechaRegistro"`
}

// Label returns the display label used in cart lines and selectors, e.g. "Widget (PROD-001)".
func (p Product) Label() string { return fmt.Sprintf("%s (%s)", p.Name, p.ID) }

// Critical reports whether the product is below the general low-stock threshold.
func (p Product) Critical() bool { return IsCritical(p.Quantity) }

// find returns the index of the product with the given id, or -1.
func find(products []Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// findByName returns the index of the first product whose name matches name
// case-insensitively, or -1.
func findByName(products []Product, name string) int {
	for i, p := range products {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}

// Find returns the product with the given id.
func Find(products []Product, id string) (Product, bool) {
	if i := find(products, id); i >= 0 {
		return products[i], true
	}
	return Product{}, false
}

// Search returns the products whose id, name or supplier contains filter,
// ignoring case. A blank filter returns all products.
func Search(products []Product, filter string) []Product {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return products
	}
	var found []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.ID), f) ||
			strings.Contains(strings.ToLower(p.Name), f) ||
			strings.Contains(strings.ToLower(p.Supplier), f) {
			found = append(found, p)
		}
	}
	return found
}

// SearchByID returns the products whose id contains filter, ignoring case.
// This is the search used by the stock view.
func SearchByID(products []Product, filter string) []Product {
	f := strings.ToLower(strings.TrimSpace(filter))
	if f == "" {
		return products
	}
	var found []Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.ID), f) {
			found = append(found, p)
		}
	}
	return found
}

// ParseQuantity parses a user supplied quantity.
// It only checks that s is an integer, callers apply their own bounds.
func ParseQuantity(s string) (int, error) {
	q, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidQuantity, "parse %q", s)
	}
	return q, nil
}

func clone(products []Product) []Product {
	if products == nil {
		return []Product{}
	}
	c := make([]Product, len(products))
	copy(c, products)
	return c
}
