// Package catalog holds the product model and the list pipeline that turns a
// stored collection into what the user sees.
//
// # Pipeline
//
// Rendering always runs the same three steps over the store snapshot:
//
//	products ──> Filter(query) ──> Sorter.Sort(key, dir) ──> Paginate(page, PageSize)
//
// Each step returns a new slice and never mutates its input, so the store's
// insertion order stays canonical no matter what the UI shows.
//
// # Validation
//
// User input arrives as a Draft (three free-text fields). Validate checks the
// fields in a fixed order and reports only the first failure:
//
//  1. every field is non-empty after trimming (ErrFieldsRequired)
//  2. name is letters and spaces only (ErrNameLetters)
//  3. category is letters and spaces only (ErrCategoryLetters)
//  4. price is a strict base-10 integer greater than zero (ErrPriceInvalid)
//
// A successful Validate returns a Patch with trimmed text and an integer price.
// The price stays a string in the Draft until then so the error message can
// describe what the user actually typed.
//
// # Wire format
//
// Product JSON uses the Spanish field names of existing catalog data
// (id, nombre, categoria, precio) so stored data loads unchanged.
package catalog
