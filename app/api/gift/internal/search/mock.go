package search

import (
	"context"
	"fmt"

	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/snowflake"
)

var (
	mockDescriptors = []string{"限量版", "礼盒装", "2024新款", "高颜值"}
	mockTagSets     = [][]string{{"包邮", "次日达"}, {"高性价比"}}
)

// MockTier synthesizes 1-2 plausible listings per keyword so the orchestrator
// never comes back empty. All randomness flows through the injected source.
type MockTier struct {
	rng Rand
}

func NewMockTier(rng Rand) *MockTier {
	return &MockTier{rng: defaultRand(rng)}
}

func (t *MockTier) Name() string { return "mock" }

func (t *MockTier) Resolve(_ context.Context, keywords []string, minPrice, maxPrice int64) []types.Product {
	validMin := max(int64(0), minPrice)
	validMax := max(validMin, maxPrice)

	var products []types.Product
	for i, keyword := range keywords {
		count := 1
		if t.rng.Float64() > 0.5 {
			count = 2
		}
		for j := 0; j < count; j++ {
			price := validMin + int64(t.rng.Intn(int(validMax-validMin+1)))
			if validMax > validMin && t.rng.Float64() > 0.8 {
				price = price * 11 / 10
			}

			source := randomSource(t.rng)
			products = append(products, types.Product{
				Id:       snowflake.NextTagged("mock"),
				Title:    fmt.Sprintf("%s - %s", keyword, mockDescriptors[t.rng.Intn(len(mockDescriptors))]),
				Price:    price,
				ImageUrl: fmt.Sprintf("https://picsum.photos/400/300?random=%d", t.rng.Intn(1000)+i+j),
				Source:   source,
				Link:     SearchLink(source, keyword),
				Tags:     mockTagSets[t.rng.Intn(len(mockTagSets))],
				Keywords: keyword,
			})
		}
	}

	t.rng.Shuffle(len(products), func(i, j int) {
		products[i], products[j] = products[j], products[i]
	})
	return products
}
