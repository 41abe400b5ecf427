package profile

import (
	"context"

	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/errno"
	"GiftVisionary/app/common/response"

	"github.com/zeromicro/go-zero/core/logx"
)

type RemoveFavoriteLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewRemoveFavoriteLogic(ctx context.Context, svcCtx *svc.ServiceContext) *RemoveFavoriteLogic {
	return &RemoveFavoriteLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *RemoveFavoriteLogic) RemoveFavorite(req *types.RemoveFavoriteRequest) (*response.Response, error) {
	if err := l.svcCtx.Store.RemoveFavorite(l.ctx, req.ProfileId, req.ProductId); err != nil {
		return nil, err
	}
	resp := response.NewResponse(errno.StatusOK, "removed")
	return &resp, nil
}
