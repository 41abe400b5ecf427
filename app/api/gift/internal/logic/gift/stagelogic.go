package gift

import (
	"context"

	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
)

type StageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewStageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *StageLogic {
	return &StageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *StageLogic) Stage() (*types.StageResponse, error) {
	return &types.StageResponse{Stage: string(l.svcCtx.Pipeline.Stage())}, nil
}
