package profile

import (
	"context"

	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ToggleLikeLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewToggleLikeLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ToggleLikeLogic {
	return &ToggleLikeLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ToggleLikeLogic) ToggleLike(req *types.ToggleLikeRequest) (*types.ToggleLikeResponse, error) {
	liked, savedCount, err := l.svcCtx.Store.ToggleLike(l.ctx, req.Nickname, req.Product)
	if err != nil {
		return nil, err
	}
	return &types.ToggleLikeResponse{Liked: liked, SavedCount: savedCount}, nil
}
