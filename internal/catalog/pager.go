package catalog

// PageSize is the number of products shown per page.
const PageSize = 3

// Page is one slice of a paginated list. Number is 1-based.
type Page struct {
	Number     int
	TotalPages int
	Items      []Product
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages returns ceil(count/size). An empty list has zero pages.
func TotalPages(count, size int) int {
	if count <= 0 || size <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate returns page number (1-based) of products. Pages outside
// [1, TotalPages] are empty; the requested number is reported unchanged.
func Paginate(products []Product, number, size int) Page {
	page := Page{Number: number, TotalPages: TotalPages(len(products), size)}
	if number < 1 || number > page.TotalPages {
		return page
	}
	start := (number - 1) * size
	end := min(start+size, len(products))
	page.Items = Clone(products[start:end])
	return page
}

// ClampPage pulls page back into [1, max(total, 1)].
func ClampPage(page, total int) int {
	if page > total {
		page = total
	}
	if page < 1 {
		page = 1
	}
	return page
}
