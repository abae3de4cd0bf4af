package product

import (
	"testing"

	"github.com/shopspring/decimal"

	"shopapi/internal/domain/entity"
)

func catalog() []*entity.Product {
	return []*entity.Product{
		{ID: 1, Name: "Wireless Headphones", Price: decimal.RequireFromString("129.99"), CategoryID: 1},
		{ID: 2, Name: "Mechanical Keyboard", Price: decimal.RequireFromString("89.50"), CategoryID: 1},
		{ID: 3, Name: "The Go Programming Language", Price: decimal.RequireFromString("39.95"), CategoryID: 2},
		{ID: 4, Name: "Cotton T-Shirt", Price: decimal.RequireFromString("14.99"), CategoryID: 3},
	}
}

func ids(items []*entity.Product) []int64 {
	out := make([]int64, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}

func equalIDs(a []int64, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFilterByCategory(t *testing.T) {
	tests := []struct {
		name       string
		categoryID int64
		want       []int64
	}{
		{"electronics", 1, []int64{1, 2}},
		{"books", 2, []int64{3}},
		{"unknown category", 99, []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterByCategory(catalog(), tt.categoryID))
			if !equalIDs(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSearchByName(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []int64
	}{
		{"case insensitive", "KEYBOARD", []int64{2}},
		{"substring", "go", []int64{3}},
		{"no match", "bicycle", []int64{}},
		{"empty term matches all", "", []int64{1, 2, 3, 4}},
		{"whitespace only matches all", "   ", []int64{1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(SearchByName(catalog(), tt.term))
			if !equalIDs(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestFilterByPriceRange(t *testing.T) {
	tests := []struct {
		name string
		min  string
		max  string
		want []int64
	}{
		{"mid range", "30", "100", []int64{2, 3}},
		{"bounds inclusive", "14.99", "129.99", []int64{1, 2, 3, 4}},
		{"empty range", "500", "600", []int64{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min := decimal.RequireFromString(tt.min)
			max := decimal.RequireFromString(tt.max)
			got := ids(FilterByPriceRange(catalog(), min, max))
			if !equalIDs(got, tt.want) {
				t.Errorf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestSortedByPriceDesc(t *testing.T) {
	items := catalog()
	got := ids(SortedByPriceDesc(items))

	want := []int64{1, 2, 3, 4}
	if !equalIDs(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}

	// Input order is untouched.
	if items[0].ID != 1 || items[3].ID != 4 {
		t.Error("input slice was reordered")
	}
}

func TestUpdateInput_ApplyTo(t *testing.T) {
	base := func() *entity.Product {
		return &entity.Product{
			ID:         1,
			Name:       "Widget",
			Price:      decimal.RequireFromString("10.00"),
			ImageURL:   "http://img/old.png",
			CategoryID: 2,
		}
	}

	t.Run("all nil fields leave the product unchanged", func(t *testing.T) {
		p := base()
		UpdateInput{}.applyTo(p)

		want := base()
		if p.ID != want.ID || p.Name != want.Name || !p.Price.Equal(want.Price) ||
			p.ImageURL != want.ImageURL || p.CategoryID != want.CategoryID {
			t.Errorf("unexpected mutation: got %+v, want %+v", p, want)
		}
	})

	t.Run("set fields overwrite", func(t *testing.T) {
		p := base()
		name := "Gadget"
		price := decimal.RequireFromString("12.50")
		UpdateInput{Name: &name, Price: &price}.applyTo(p)

		if p.Name != "Gadget" || !p.Price.Equal(price) {
			t.Errorf("update not applied: %+v", p)
		}
		if p.ImageURL != "http://img/old.png" || p.CategoryID != 2 {
			t.Errorf("untouched fields changed: %+v", p)
		}
	})
}
