package pipeline

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"GiftVisionary/app/api/gift/internal/advisor"
	"GiftVisionary/app/api/gift/internal/search"
	"GiftVisionary/app/api/gift/internal/store"
	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xerrors "github.com/zeromicro/x/errors"
)

func momRequest() types.GiftRequest {
	return types.GiftRequest{
		Nickname:  "妈妈",
		Gender:    "female",
		Relation:  "母亲",
		Occasion:  "生日",
		BudgetMin: 100,
		BudgetMax: 300,
		Interests: []string{"养花", "烘焙"},
	}
}

type stubAdvisor struct {
	resp types.AiKeywordResponse
}

func (a stubAdvisor) Generate(context.Context, types.GiftRequest) types.AiKeywordResponse {
	return a.resp
}

type panicAdvisor struct{}

func (panicAdvisor) Generate(context.Context, types.GiftRequest) types.AiKeywordResponse {
	panic("advisor exploded")
}

type stubSearcher struct {
	products []types.Product
}

func (s stubSearcher) Search(context.Context, []string, int64, int64) []types.Product {
	return s.products
}

func newTestPipeline(adv Advisor, s Searcher, analyzeDelay, previewDelay time.Duration) *Pipeline {
	return New(adv, s, store.New(store.NewMemConn()), nil, analyzeDelay, previewDelay)
}

func TestRunCompletesWithoutModelCredential(t *testing.T) {
	p := newTestPipeline(
		advisor.New(nil, 0),
		search.NewSearcher(search.NewMockTier(rand.New(rand.NewSource(1)))),
		0, 0,
	)

	outcome, err := p.Run(context.Background(), momRequest())
	require.NoError(t, err)

	assert.Equal(t, StageCompleted, outcome.Stage)
	assert.Equal(t, StageCompleted, p.Stage())
	assert.Equal(t, []string{"高档巧克力", "精美香薰", "定制马克杯", "拍立得", "乐高"}, outcome.Keywords)
	assert.Contains(t, outcome.Reasoning, "配置")
	assert.GreaterOrEqual(t, len(outcome.Products), 2)
	assert.NotEmpty(t, outcome.ProfileId)
	assert.True(t, outcome.NewProfile)

	// same recipient again, profile is reused
	again, err := p.Run(context.Background(), momRequest())
	require.NoError(t, err)
	assert.False(t, again.NewProfile)
	assert.Equal(t, outcome.ProfileId, again.ProfileId)
}

func TestRunSubstitutesFallbackProductsOnEmptySearch(t *testing.T) {
	p := newTestPipeline(
		stubAdvisor{resp: types.AiKeywordResponse{Keywords: []string{"冷门关键词"}, Reasoning: "试试"}},
		stubSearcher{},
		0, 0,
	)

	outcome, err := p.Run(context.Background(), momRequest())
	require.NoError(t, err)

	assert.Equal(t, StageCompleted, outcome.Stage)
	assert.Equal(t, FallbackProducts(), outcome.Products)
}

func TestRunRecoversFromPanic(t *testing.T) {
	p := newTestPipeline(panicAdvisor{}, stubSearcher{}, 0, 0)

	outcome, err := p.Run(context.Background(), momRequest())
	require.NoError(t, err)

	assert.Equal(t, StageError, outcome.Stage)
	assert.Equal(t, StageError, p.Stage())
	assert.Equal(t, FallbackProducts(), outcome.Products)
}

func TestRunSupersededByNewerRequest(t *testing.T) {
	adv := stubAdvisor{resp: types.AiKeywordResponse{Keywords: []string{"乐高"}, Reasoning: "ok"}}
	hit := stubSearcher{products: []types.Product{{Id: "p1", Title: "乐高", Price: 299}}}
	p := newTestPipeline(adv, hit, 300*time.Millisecond, 0)

	var wg sync.WaitGroup
	var firstOutcome *Outcome
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstOutcome, firstErr = p.Run(context.Background(), momRequest())
	}()

	time.Sleep(50 * time.Millisecond)
	second, err := p.Run(context.Background(), momRequest())
	require.NoError(t, err)
	assert.Equal(t, StageCompleted, second.Stage)

	wg.Wait()
	assert.Nil(t, firstOutcome)
	require.Error(t, firstErr)
	cm, ok := firstErr.(*xerrors.CodeMsg)
	require.True(t, ok, "expected *errors.CodeMsg, got %T", firstErr)
	assert.Equal(t, errno.RunSuperseded, cm.Code)
}

func TestRunObservableStagesDuringRun(t *testing.T) {
	adv := stubAdvisor{resp: types.AiKeywordResponse{Keywords: []string{"乐高"}, Reasoning: "ok"}}
	hit := stubSearcher{products: []types.Product{{Id: "p1"}}}
	p := newTestPipeline(adv, hit, 100*time.Millisecond, 0)

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = p.Run(context.Background(), momRequest())
	}()

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, StageAnalyzing, p.Stage())

	<-done
	assert.Equal(t, StageCompleted, p.Stage())
}
