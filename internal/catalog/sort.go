package catalog

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the product field used for ordering.
type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByPrice    SortKey = "price"
)

var sortKeyOrder = []SortKey{SortByName, SortByCategory, SortByPrice}

// ParseSortKey converts user input into a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	key := SortKey(strings.ToLower(strings.TrimSpace(s)))
	if slices.Contains(sortKeyOrder, key) {
		return key, nil
	}
	return "", fmt.Errorf("unknown sort key %q (want name, category or price)", s)
}

// Next returns the key after k in the UI cycle.
func (k SortKey) Next() SortKey {
	for i, key := range sortKeyOrder {
		if key == k {
			return sortKeyOrder[(i+1)%len(sortKeyOrder)]
		}
	}
	return sortKeyOrder[0]
}

// Label returns a display label for the key.
func (k SortKey) Label() string {
	switch k {
	case SortByCategory:
		return "Category"
	case SortByPrice:
		return "Price"
	default:
		return "Name"
	}
}

// Direction is the sort direction.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

// Toggle flips the direction.
func (d Direction) Toggle() Direction {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Arrow returns ▲ for ascending and ▼ for descending.
func (d Direction) Arrow() string {
	if d == Descending {
		return "▼"
	}
	return "▲"
}

// Sorter orders products. Text fields go through a collator for the
// configured language; a Sorter is not safe for concurrent use.
type Sorter struct {
	collator *collate.Collator
}

// NewSorter builds a sorter for the given BCP 47 locale. Unparseable locales
// fall back to the root collation.
func NewSorter(locale string) *Sorter {
	tag, err := language.Parse(strings.TrimSpace(locale))
	if err != nil {
		tag = language.Und
	}
	return &Sorter{collator: collate.New(tag, collate.IgnoreCase)}
}

// Sort returns a new slice ordered by key and direction. Ties keep their
// relative order.
func (s *Sorter) Sort(products []Product, key SortKey, dir Direction) []Product {
	out := Clone(products)
	compare := s.comparator(key)
	if dir == Descending {
		asc := compare
		compare = func(a, b Product) int { return asc(b, a) }
	}
	slices.SortStableFunc(out, compare)
	return out
}

func (s *Sorter) comparator(key SortKey) func(a, b Product) int {
	switch key {
	case SortByCategory:
		return func(a, b Product) int {
			return s.collator.CompareString(strings.ToLower(a.Category), strings.ToLower(b.Category))
		}
	case SortByPrice:
		return func(a, b Product) int { return cmp.Compare(a.Price, b.Price) }
	case SortByName:
		return func(a, b Product) int {
			return s.collator.CompareString(strings.ToLower(a.Name), strings.ToLower(b.Name))
		}
	default:
		return func(Product, Product) int { return 0 }
	}
}
