package app

import (
	"context"
	"fmt"

	"github.com/five82/catalog/internal/catalog"
	"github.com/five82/catalog/internal/state"
)

// ListOptions select what List returns.
type ListOptions struct {
	Search string
	Sort   catalog.SortKey
	Desc   bool
	Page   int // 1-based; zero means every product on one page
}

// Listing is the result of List.
type Listing struct {
	Total    int // products in the store
	Matches  int // products after the search
	Page     catalog.Page
	Products []catalog.Product
}

// List runs the filter, sort and paginate pipeline over the store.
func (e *Env) List(opts ListOptions) Listing {
	key := opts.Sort
	if key == "" {
		key = catalog.SortByName
	}
	dir := catalog.Ascending
	if opts.Desc {
		dir = catalog.Descending
	}

	all := e.Store.Products()
	sorted := e.Sorter.Sort(catalog.Filter(all, opts.Search), key, dir)
	out := Listing{Total: len(all), Matches: len(sorted)}
	if opts.Page <= 0 {
		out.Products = sorted
		return out
	}
	out.Page = catalog.Paginate(sorted, opts.Page, catalog.PageSize)
	out.Products = out.Page.Items
	return out
}

// Add validates d and appends a new product.
func (e *Env) Add(ctx context.Context, d catalog.Draft) (catalog.Product, error) {
	patch, err := catalog.Validate(d)
	if err != nil {
		return catalog.Product{}, err
	}
	p, _, err := e.Store.Add(ctx, patch)
	return p, err
}

// Edit applies d over the product with id. Blank draft fields keep the
// current values, so callers can change one field at a time.
func (e *Env) Edit(ctx context.Context, id int64, d catalog.Draft) (catalog.Product, error) {
	current, ok := e.Store.Get(id)
	if !ok {
		return catalog.Product{}, fmt.Errorf("edit %d: %w", id, state.ErrNotFound)
	}

	merged := catalog.DraftFrom(current)
	if d.Name != "" {
		merged.Name = d.Name
	}
	if d.Category != "" {
		merged.Category = d.Category
	}
	if d.Price != "" {
		merged.Price = d.Price
	}

	patch, err := catalog.Validate(merged)
	if err != nil {
		return catalog.Product{}, err
	}
	if _, err := e.Store.Edit(ctx, id, patch); err != nil {
		return catalog.Product{}, err
	}
	updated, _ := e.Store.Get(id)
	return updated, nil
}

// Remove deletes the product with id.
func (e *Env) Remove(ctx context.Context, id int64) (catalog.Product, error) {
	current, _ := e.Store.Get(id)
	_, err := e.Store.Remove(ctx, id)
	return current, err
}
