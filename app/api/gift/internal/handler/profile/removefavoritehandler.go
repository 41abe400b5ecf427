// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package profile

import (
	"net/http"

	"GiftVisionary/app/api/gift/internal/logic/profile"
	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/api/gift/internal/types"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func RemoveFavoriteHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req types.RemoveFavoriteRequest
		if err := httpx.Parse(r, &req); err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
			return
		}

		l := profile.NewRemoveFavoriteLogic(r.Context(), svcCtx)
		resp, err := l.RemoveFavorite(&req)
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
