package product

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"shopapi/internal/domain/entity"
)

// FilterByCategory keeps only products of the given category.
func FilterByCategory(items []*entity.Product, categoryID int64) []*entity.Product {
	out := make([]*entity.Product, 0, len(items))
	for _, p := range items {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// SearchByName keeps products whose name contains the term, ignoring case.
// An empty term matches everything.
func SearchByName(items []*entity.Product, term string) []*entity.Product {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return items
	}
	out := make([]*entity.Product, 0, len(items))
	for _, p := range items {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// FilterByPriceRange keeps products with min <= price <= max.
func FilterByPriceRange(items []*entity.Product, min, max decimal.Decimal) []*entity.Product {
	out := make([]*entity.Product, 0, len(items))
	for _, p := range items {
		if p.Price.GreaterThanOrEqual(min) && p.Price.LessThanOrEqual(max) {
			out = append(out, p)
		}
	}
	return out
}

// SortedByPriceDesc returns a new slice sorted by price, highest first.
// Equal prices keep their input order.
func SortedByPriceDesc(items []*entity.Product) []*entity.Product {
	out := make([]*entity.Product, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.GreaterThan(out[j].Price)
	})
	return out
}
