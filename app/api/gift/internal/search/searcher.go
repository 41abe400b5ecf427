package search

import (
	"context"

	"GiftVisionary/app/api/gift/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

// Tier is one resolver strategy in the ordered fallback chain. Tiers never
// return errors: an empty slice means "try the next one".
type Tier interface {
	Name() string
	Resolve(ctx context.Context, keywords []string, minPrice, maxPrice int64) []types.Product
}

// Searcher walks its tiers in order and returns the first non-empty result
// set. With the mock tier last, a non-empty keyword list always yields
// listings.
type Searcher struct {
	tiers []Tier
}

func NewSearcher(tiers ...Tier) *Searcher {
	return &Searcher{tiers: tiers}
}

func (s *Searcher) Search(ctx context.Context, keywords []string, minPrice, maxPrice int64) []types.Product {
	if len(keywords) == 0 {
		return nil
	}

	log := logx.WithContext(ctx)
	for _, tier := range s.tiers {
		if ctx.Err() != nil {
			return nil
		}
		products := tier.Resolve(ctx, keywords, minPrice, maxPrice)
		if len(products) > 0 {
			log.Infow("search: tier yielded results",
				logx.Field("tier", tier.Name()),
				logx.Field("count", len(products)))
			return products
		}
		log.Infow("search: tier empty, falling through", logx.Field("tier", tier.Name()))
	}
	return nil
}
