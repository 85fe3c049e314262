package catalog

import "strings"

// Filter returns the products whose name or category contains query,
// ignoring case. An empty query returns every product in order.
func Filter(products []Product, query string) []Product {
	needle := strings.ToLower(query)
	if needle == "" {
		return Clone(products)
	}

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Category), needle) {
			out = append(out, p)
		}
	}
	return out
}
