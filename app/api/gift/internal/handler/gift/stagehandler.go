// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package gift

import (
	"net/http"

	"GiftVisionary/app/api/gift/internal/logic/gift"
	"GiftVisionary/app/api/gift/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func StageHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := gift.NewStageLogic(r.Context(), svcCtx)
		resp, err := l.Stage()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
