package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProducts() []Product {
	return []Product{
		{ID: 1, Name: "Chair", Category: "Furniture", Price: 40},
		{ID: 2, Name: "apple", Category: "Fruit", Price: 2},
		{ID: 3, Name: "Desk", Category: "Furniture", Price: 120},
		{ID: 4, Name: "Banana", Category: "Fruit", Price: 1},
		{ID: 5, Name: "Lamp", Category: "Lighting", Price: 15},
	}
}

func ids(products []Product) []int64 {
	out := make([]int64, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	products := sampleProducts()

	t.Run("empty query returns everything in order", func(t *testing.T) {
		assert.Equal(t, products, Filter(products, ""))
	})

	t.Run("case insensitive on name", func(t *testing.T) {
		assert.Equal(t, []int64{1}, ids(Filter(products, "chair")))
		assert.Equal(t, []int64{1}, ids(Filter(products, "CHAIR")))
	})

	t.Run("matches category", func(t *testing.T) {
		assert.Equal(t, []int64{1, 3}, ids(Filter(products, "furn")))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, Filter(products, "zzz"))
	})

	t.Run("missing fields never match but do not fail", func(t *testing.T) {
		withBlank := append(sampleProducts(), Product{ID: 9})
		assert.Equal(t, []int64{5}, ids(Filter(withBlank, "light")))
		assert.Len(t, Filter(withBlank, ""), len(withBlank))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		before := sampleProducts()
		_ = Filter(products, "a")
		assert.Equal(t, before, products)
	})
}

func TestSorter_Sort(t *testing.T) {
	s := NewSorter("en")
	products := sampleProducts()

	t.Run("name ascending ignores case", func(t *testing.T) {
		got := s.Sort(products, SortByName, Ascending)
		assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(got))
	})

	t.Run("price ascending then descending reverses", func(t *testing.T) {
		asc := ids(s.Sort(products, SortByPrice, Ascending))
		desc := ids(s.Sort(products, SortByPrice, Descending))
		require.Len(t, desc, len(asc))
		for i := range asc {
			assert.Equal(t, asc[i], desc[len(desc)-1-i])
		}
		assert.Equal(t, []int64{4, 2, 5, 1, 3}, asc)
	})

	t.Run("category keeps insertion order for ties", func(t *testing.T) {
		got := s.Sort(products, SortByCategory, Ascending)
		assert.Equal(t, []int64{2, 4, 1, 3, 5}, ids(got))

		got = s.Sort(products, SortByCategory, Descending)
		assert.Equal(t, []int64{5, 1, 3, 2, 4}, ids(got))
	})

	t.Run("source untouched", func(t *testing.T) {
		_ = s.Sort(products, SortByPrice, Descending)
		assert.Equal(t, sampleProducts(), products)
	})

	t.Run("locale aware accents", func(t *testing.T) {
		accented := []Product{
			{ID: 1, Name: "Zeta"},
			{ID: 2, Name: "Éclair"},
			{ID: 3, Name: "eagle"},
		}
		got := NewSorter("fr").Sort(accented, SortByName, Ascending)
		assert.Equal(t, []int64{3, 2, 1}, ids(got))
	})

	t.Run("bad locale falls back", func(t *testing.T) {
		got := NewSorter("not a locale!").Sort(products, SortByPrice, Ascending)
		assert.Equal(t, []int64{4, 2, 5, 1, 3}, ids(got))
	})
}

func TestParseSortKey(t *testing.T) {
	key, err := ParseSortKey(" Price ")
	require.NoError(t, err)
	assert.Equal(t, SortByPrice, key)

	_, err = ParseSortKey("stock")
	assert.Error(t, err)
}

func TestSortKeyNextCycles(t *testing.T) {
	assert.Equal(t, SortByCategory, SortByName.Next())
	assert.Equal(t, SortByPrice, SortByCategory.Next())
	assert.Equal(t, SortByName, SortByPrice.Next())
	assert.Equal(t, SortByName, SortKey("bogus").Next())
}

func TestDirectionToggle(t *testing.T) {
	assert.Equal(t, Descending, Ascending.Toggle())
	assert.Equal(t, Ascending, Descending.Toggle())
	assert.Equal(t, "▲", Ascending.Arrow())
	assert.Equal(t, "▼", Descending.Arrow())
}

func TestPaginate(t *testing.T) {
	seven := make([]Product, 7)
	for i := range seven {
		seven[i] = Product{ID: int64(i + 1)}
	}

	var sizes []int
	for n := 1; n <= TotalPages(len(seven), PageSize); n++ {
		sizes = append(sizes, len(Paginate(seven, n, PageSize).Items))
	}
	assert.Equal(t, []int{3, 3, 1}, sizes)

	last := Paginate(seven, 3, PageSize)
	assert.Equal(t, []int64{7}, ids(last.Items))
	assert.True(t, last.HasPrev())
	assert.False(t, last.HasNext())

	first := Paginate(seven, 1, PageSize)
	assert.False(t, first.HasPrev())
	assert.True(t, first.HasNext())

	assert.Empty(t, Paginate(seven, 4, PageSize).Items)
	assert.Empty(t, Paginate(seven, 0, PageSize).Items)
}

func TestPaginate_Empty(t *testing.T) {
	page := Paginate(nil, 1, PageSize)
	assert.Equal(t, 0, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNext())
	assert.False(t, page.HasPrev())
}

func TestClampPage(t *testing.T) {
	testCases := []struct {
		page, total, want int
	}{
		{page: 3, total: 2, want: 2},
		{page: 2, total: 2, want: 2},
		{page: 0, total: 2, want: 1},
		{page: 5, total: 0, want: 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.want, ClampPage(tc.page, tc.total), "ClampPage(%d, %d)", tc.page, tc.total)
	}
}
