package profile

import (
	"context"

	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type ListProfilesLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewListProfilesLogic(ctx context.Context, svcCtx *svc.ServiceContext) *ListProfilesLogic {
	return &ListProfilesLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *ListProfilesLogic) ListProfiles() (*types.ListProfilesResponse, error) {
	profiles := l.svcCtx.Store.List(l.ctx)
	if profiles == nil {
		profiles = []types.RecipientProfile{}
	}
	return &types.ListProfilesResponse{Profiles: profiles}, nil
}
