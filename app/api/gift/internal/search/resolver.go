package search

import (
	"context"

	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/snowflake"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/mr"
)

// ImageProvenanceTag marks listings that came out of the image-search tier.
// The UI filters it from display; it only records provenance.
const ImageProvenanceTag = "图片搜索"

// PriceOracle is the best-effort price estimate used during budget
// reconciliation.
type PriceOracle interface {
	Estimate(ctx context.Context, keyword string) (int64, bool)
}

// ImageTier resolves keywords into listings backed by image-search results,
// with prices reconciled into the budget window. A nil client (missing
// credential) makes the whole tier yield nothing.
type ImageTier struct {
	client *ImageClient
	oracle PriceOracle
	rng    Rand
}

func NewImageTier(client *ImageClient, oracle PriceOracle, rng Rand) *ImageTier {
	return &ImageTier{client: client, oracle: oracle, rng: defaultRand(rng)}
}

func (t *ImageTier) Name() string { return "image" }

func (t *ImageTier) Resolve(ctx context.Context, keywords []string, minPrice, maxPrice int64) []types.Product {
	log := logx.WithContext(ctx)
	if t.client == nil {
		log.Infow("search: image credential absent, skipping image tier")
		return nil
	}

	products, err := mr.MapReduce(func(source chan<- string) {
		for _, kw := range keywords {
			source <- kw
		}
	}, func(kw string, writer mr.Writer[[]types.Product], cancel func(error)) {
		writer.Write(t.resolveOne(ctx, kw, minPrice, maxPrice))
	}, func(pipe <-chan []types.Product, writer mr.Writer[[]types.Product], cancel func(error)) {
		var all []types.Product
		for items := range pipe {
			all = append(all, items...)
		}
		writer.Write(all)
	}, mr.WithContext(ctx))
	if err != nil {
		log.Errorf("search: image tier fan-out aborted: %v", err)
		return nil
	}
	return products
}

// resolveOne never lets a failure escape: a broken keyword just contributes
// zero listings.
func (t *ImageTier) resolveOne(ctx context.Context, keyword string, minPrice, maxPrice int64) []types.Product {
	log := logx.WithContext(ctx)

	urls, err := t.client.Search(ctx, keyword)
	if err != nil {
		log.Errorf("search: image lookup failed (%s): %v", keyword, err)
		return nil
	}
	if len(urls) == 0 {
		return nil
	}

	price := t.reconcilePrice(ctx, keyword, minPrice, maxPrice)
	source := randomSource(t.rng)
	return []types.Product{{
		Id:       snowflake.NextTagged("img"),
		Title:    keyword,
		Price:    price,
		ImageUrl: urls[0],
		Source:   source,
		Link:     SearchLink(source, keyword),
		Tags:     []string{ImageProvenanceTag},
		Keywords: keyword,
	}}
}

// reconcilePrice forces the listing price into the budget window:
// a degenerate window is used directly, an estimated price is clamped to the
// edges, and an absent estimate falls back to the rounded midpoint.
func (t *ImageTier) reconcilePrice(ctx context.Context, keyword string, minPrice, maxPrice int64) int64 {
	validMin := max(int64(0), minPrice)
	validMax := max(validMin, maxPrice)
	if validMin == validMax {
		return validMin
	}

	if t.oracle != nil {
		if estimated, ok := t.oracle.Estimate(ctx, keyword); ok {
			if estimated < validMin {
				return validMin
			}
			if estimated > validMax {
				return validMax
			}
			return estimated
		}
	}
	// round((min+max)/2) for non-negative bounds
	return (validMin + validMax + 1) / 2
}
