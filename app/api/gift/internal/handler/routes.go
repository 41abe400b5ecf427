// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package handler

import (
	"net/http"

	gift "GiftVisionary/app/api/gift/internal/handler/gift"
	profile "GiftVisionary/app/api/gift/internal/handler/profile"
	"GiftVisionary/app/api/gift/internal/svc"

	"github.com/zeromicro/go-zero/rest"
)

func RegisterHandlers(server *rest.Server, serverCtx *svc.ServiceContext) {
	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodPost,
				Path:    "/gift/recommend",
				Handler: gift.RecommendHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/gift/stage",
				Handler: gift.StageHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)

	server.AddRoutes(
		[]rest.Route{
			{
				Method:  http.MethodGet,
				Path:    "/profile",
				Handler: profile.ListProfilesHandler(serverCtx),
			},
			{
				Method:  http.MethodGet,
				Path:    "/profile/:id",
				Handler: profile.GetProfileHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/profile/like",
				Handler: profile.ToggleLikeHandler(serverCtx),
			},
			{
				Method:  http.MethodPost,
				Path:    "/profile/favorite/remove",
				Handler: profile.RemoveFavoriteHandler(serverCtx),
			},
		},
		rest.WithPrefix("/api"),
	)
}
