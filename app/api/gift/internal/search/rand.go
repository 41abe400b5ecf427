package search

import (
	"math/rand"
	"net/url"

	"GiftVisionary/app/api/gift/internal/types"
)

// Rand is the injectable randomness surface for source assignment, mock price
// jitter, and result shuffling. *math/rand.Rand satisfies it; tests seed one.
type Rand interface {
	Intn(n int) int
	Float64() float64
	Shuffle(n int, swap func(i, j int))
}

// globalRand delegates to the lock-protected top-level math/rand functions so
// the default source is safe under concurrent fan-out.
type globalRand struct{}

func (globalRand) Intn(n int) int { return rand.Intn(n) }

func (globalRand) Float64() float64 { return rand.Float64() }

func (globalRand) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

func defaultRand(r Rand) Rand {
	if r == nil {
		return globalRand{}
	}
	return r
}

var randomSources = []string{types.SourceJD, types.SourceTmall, types.SourceTaobao}

func randomSource(r Rand) string {
	return randomSources[r.Intn(len(randomSources))]
}

// SearchLink builds the platform's search-results URL for a keyword.
func SearchLink(source, keyword string) string {
	q := url.QueryEscape(keyword)
	switch source {
	case types.SourceJD:
		return "https://search.jd.com/Search?keyword=" + q
	case types.SourceTmall:
		return "https://list.tmall.com/search_product.htm?q=" + q
	default:
		return "https://s.taobao.com/search?q=" + q
	}
}
