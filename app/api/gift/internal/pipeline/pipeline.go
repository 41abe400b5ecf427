package pipeline

import (
	"context"
	"sync"
	"time"

	"GiftVisionary/app/api/gift/internal/mq"
	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/errno"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

// Advisor produces keywords for a request; it never fails.
type Advisor interface {
	Generate(ctx context.Context, req types.GiftRequest) types.AiKeywordResponse
}

// Searcher resolves keywords into listings through its tier chain.
type Searcher interface {
	Search(ctx context.Context, keywords []string, minPrice, maxPrice int64) []types.Product
}

// ProfileStore records run history and owns the saved-products lists.
type ProfileStore interface {
	Upsert(ctx context.Context, req types.GiftRequest) (types.RecipientProfile, bool, error)
}

// Outcome is what one completed run hands to the caller. Products is never
// empty.
type Outcome struct {
	Stage      Stage
	Keywords   []string
	Reasoning  string
	Products   []types.Product
	ProfileId  string
	NewProfile bool
}

// Pipeline sequences one recommendation run: ANALYZING pause, keyword
// generation, keyword-preview pause, product search, profile upsert. A new
// submission cancels the in-flight run so a stale one can never race the
// display state.
type Pipeline struct {
	advisor  Advisor
	searcher Searcher
	store    ProfileStore
	events   *mq.Producer

	analyzeDelay time.Duration
	previewDelay time.Duration

	stage *stageHolder

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(advisor Advisor, searcher Searcher, store ProfileStore, events *mq.Producer,
	analyzeDelay, previewDelay time.Duration) *Pipeline {
	return &Pipeline{
		advisor:      advisor,
		searcher:     searcher,
		store:        store,
		events:       events,
		analyzeDelay: analyzeDelay,
		previewDelay: previewDelay,
		stage:        newStageHolder(),
	}
}

// Stage exposes the current progress state for the overlay endpoint.
func (p *Pipeline) Stage() Stage {
	return p.stage.get()
}

// Run executes the full pipeline for one request. The only error it returns
// is supersession by a newer request; every internal failure degrades to a
// populated fallback outcome instead.
func (p *Pipeline) Run(parent context.Context, req types.GiftRequest) (outcome *Outcome, err error) {
	ctx := p.begin(parent)
	defer p.end(ctx)

	log := logx.WithContext(parent)
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("pipeline: run panicked: %v", r)
			p.stage.set(StageError)
			outcome = &Outcome{Stage: StageError, Products: FallbackProducts()}
			err = nil
		}
	}()

	p.stage.set(StageAnalyzing)
	if err := p.pause(ctx, p.analyzeDelay); err != nil {
		return nil, err
	}

	p.stage.set(StageGenerating)
	ai := p.advisor.Generate(ctx, req)
	log.Infow("pipeline: keywords generated",
		logx.Field("nickname", req.Nickname),
		logx.Field("keywords", ai.Keywords))

	if err := p.pause(ctx, p.previewDelay); err != nil {
		return nil, err
	}

	p.stage.set(StageSearching)
	products := p.searcher.Search(ctx, ai.Keywords, req.BudgetMin, req.BudgetMax)
	if ctx.Err() != nil {
		return nil, superseded()
	}
	if len(products) == 0 {
		log.Errorw("pipeline: searcher returned empty result, substituting fallback products")
		products = FallbackProducts()
	}

	profile, created, storeErr := p.store.Upsert(ctx, req)
	if storeErr != nil {
		// history loss is not worth failing a successful run
		log.Errorf("pipeline: profile upsert failed: %v", storeErr)
	}

	p.stage.set(StageCompleted)
	p.publish(parent, profile.Id, req, ai.Keywords, len(products))

	return &Outcome{
		Stage:      StageCompleted,
		Keywords:   ai.Keywords,
		Reasoning:  ai.Reasoning,
		Products:   products,
		ProfileId:  profile.Id,
		NewProfile: created,
	}, nil
}

// begin cancels any in-flight run and installs this one as current.
func (p *Pipeline) begin(parent context.Context) context.Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	return ctx
}

func (p *Pipeline) end(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// only the still-current run may clear the slot
	if ctx.Err() == nil && p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
}

// pause implements the cosmetic pacing delays while staying cancellable.
func (p *Pipeline) pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		if ctx.Err() != nil {
			return superseded()
		}
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return superseded()
	case <-timer.C:
		return nil
	}
}

func (p *Pipeline) publish(ctx context.Context, profileId string, req types.GiftRequest,
	keywords []string, productCount int) {
	if p.events == nil {
		return
	}
	evt := mq.RecommendationEvent{
		ProfileId:    profileId,
		Nickname:     req.Nickname,
		Occasion:     req.Occasion,
		BudgetMin:    req.BudgetMin,
		BudgetMax:    req.BudgetMax,
		Keywords:     keywords,
		ProductCount: productCount,
		Stage:        string(StageCompleted),
		Timestamp:    time.Now().Unix(),
	}
	if err := p.events.PublishRecommendation(ctx, evt); err != nil {
		logx.WithContext(ctx).Errorf("pipeline: publish recommendation event failed: %v", err)
	}
}

func superseded() error {
	return errors.New(errno.RunSuperseded, "superseded by a newer request")
}
