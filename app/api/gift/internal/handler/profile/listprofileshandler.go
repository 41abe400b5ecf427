// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package profile

import (
	"net/http"

	"GiftVisionary/app/api/gift/internal/logic/profile"
	"GiftVisionary/app/api/gift/internal/svc"
	"github.com/zeromicro/go-zero/rest/httpx"
)

func ListProfilesHandler(svcCtx *svc.ServiceContext) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		l := profile.NewListProfilesLogic(r.Context(), svcCtx)
		resp, err := l.ListProfiles()
		if err != nil {
			httpx.ErrorCtx(r.Context(), w, err)
		} else {
			httpx.OkJsonCtx(r.Context(), w, resp)
		}
	}
}
