package catalog

import "strconv"

// Product is a single catalog entry.
type Product struct {
	ID       int64  `json:"id"`
	Name     string `json:"nombre"`
	Category string `json:"categoria"`
	Price    int64  `json:"precio"`
}

// Draft holds form input before validation. Price is kept as typed.
type Draft struct {
	Name     string
	Category string
	Price    string
}

// Patch is a validated set of product fields.
type Patch struct {
	Name     string
	Category string
	Price    int64
}

// DraftFrom pre-fills a draft with an existing product, for editing.
func DraftFrom(p Product) Draft {
	return Draft{
		Name:     p.Name,
		Category: p.Category,
		Price:    strconv.FormatInt(p.Price, 10),
	}
}

// Apply merges the patch over p and returns the result.
func (p Product) Apply(patch Patch) Product {
	p.Name = patch.Name
	p.Category = patch.Category
	p.Price = patch.Price
	return p
}

// Clone returns an independent copy of products. A nil or empty input yields nil.
func Clone(products []Product) []Product {
	if len(products) == 0 {
		return nil
	}
	dup := make([]Product, len(products))
	copy(dup, products)
	return dup
}
