package pipeline

import (
	"sort"

	"GiftVisionary/app/api/gift/internal/types"
)

type SortOption string

const (
	SortRecommended SortOption = "RECOMMENDED"
	SortPriceAsc    SortOption = "PRICE_ASC"
	SortPriceDesc   SortOption = "PRICE_DESC"
)

// SortProducts orders a completed result set for display. Pure: the input
// slice is never touched, and RECOMMENDED preserves pipeline-arrival order.
func SortProducts(products []types.Product, option SortOption) []types.Product {
	sorted := make([]types.Product, len(products))
	copy(sorted, products)

	switch option {
	case SortPriceAsc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price < sorted[j].Price })
	case SortPriceDesc:
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Price > sorted[j].Price })
	}
	return sorted
}
