package pipeline

import "GiftVisionary/app/api/gift/internal/types"

// fallbackProducts is the static last-resort result set. Never shown unless
// every search tier and the advisor both failed.
var fallbackProducts = []types.Product{
	{
		Id:       "fb1",
		Title:    "星巴克星礼卡 - 通用礼物",
		Price:    200,
		ImageUrl: "https://picsum.photos/400/400?random=101",
		Source:   types.SourceTmall,
		Link:     "#",
		Tags:     []string{"通用好礼"},
		Keywords: "通用",
	},
	{
		Id:       "fb2",
		Title:    "GODIVA 歌帝梵巧克力礼盒",
		Price:    358,
		ImageUrl: "https://picsum.photos/400/400?random=102",
		Source:   types.SourceJD,
		Link:     "#",
		Tags:     []string{"甜蜜", "通用"},
		Keywords: "巧克力",
	},
}

// FallbackProducts returns a fresh copy so callers can't mutate the statics.
func FallbackProducts() []types.Product {
	out := make([]types.Product, len(fallbackProducts))
	copy(out, fallbackProducts)
	return out
}
