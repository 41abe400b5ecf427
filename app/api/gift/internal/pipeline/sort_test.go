package pipeline

import (
	"testing"

	"GiftVisionary/app/api/gift/internal/types"

	"github.com/stretchr/testify/assert"
)

func pricedProducts() []types.Product {
	return []types.Product{
		{Id: "a", Price: 500},
		{Id: "b", Price: 100},
		{Id: "c", Price: 300},
		{Id: "d", Price: 100},
	}
}

func ids(products []types.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Id
	}
	return out
}

func TestSortProducts(t *testing.T) {
	tests := []struct {
		name   string
		option SortOption
		want   []string
	}{
		{name: "recommended keeps arrival order", option: SortRecommended, want: []string{"a", "b", "c", "d"}},
		{name: "price ascending is stable", option: SortPriceAsc, want: []string{"b", "d", "c", "a"}},
		{name: "price descending is stable", option: SortPriceDesc, want: []string{"a", "c", "b", "d"}},
		{name: "unknown option keeps arrival order", option: SortOption("NEWEST"), want: []string{"a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(SortProducts(pricedProducts(), tt.option)))
		})
	}
}

func TestSortProductsLeavesInputUntouched(t *testing.T) {
	input := pricedProducts()
	_ = SortProducts(input, SortPriceAsc)

	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(input))
}

func TestFallbackProductsReturnsCopy(t *testing.T) {
	first := FallbackProducts()
	first[0].Title = "改写"

	second := FallbackProducts()
	assert.Equal(t, "星巴克星礼卡 - 通用礼物", second[0].Title)
	assert.Len(t, second, 2)
}
