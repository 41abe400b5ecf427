package gift

import (
	"context"

	"GiftVisionary/app/api/gift/internal/logic/helper"
	"GiftVisionary/app/api/gift/internal/pipeline"
	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type RecommendLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRecommendLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RecommendLogic {
	return &RecommendLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RecommendLogic) Recommend(req *types.RecommendRequest) (*types.RecommendResponse, error) {
	if err := helper.ValidateGiftRequest(&req.GiftRequest); err != nil {
		return nil, err
	}

	outcome, err := l.svcCtx.Pipeline.Run(l.ctx, req.GiftRequest)
	if err != nil {
		l.Logger.Infof("recommendation run ended early: %v", err)
		return nil, err
	}

	return &types.RecommendResponse{
		ProfileId:  outcome.ProfileId,
		NewProfile: outcome.NewProfile,
		Stage:      string(outcome.Stage),
		Keywords:   outcome.Keywords,
		Reasoning:  outcome.Reasoning,
		Products:   pipeline.SortProducts(outcome.Products, pipeline.SortOption(req.Sort)),
	}, nil
}
