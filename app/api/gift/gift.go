// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"

	"GiftVisionary/app/api/gift/internal/config"
	"GiftVisionary/app/api/gift/internal/handler"
	"GiftVisionary/app/api/gift/internal/svc"
	"GiftVisionary/app/common/consts/errno"
	"GiftVisionary/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
	xerrors "github.com/zeromicro/x/errors"
)

var configFile = flag.String("f", "etc/gift-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf)
	defer server.Stop()

	httpx.SetErrorHandlerCtx(func(ctx context.Context, err error) (int, any) {
		if cm, ok := err.(*xerrors.CodeMsg); ok {
			return http.StatusOK, response.NewResponse(cm.Code, cm.Msg)
		}
		return http.StatusOK, response.NewResponse(errno.InternalError, err.Error())
	})

	ctx := svc.NewServiceContext(c)
	defer ctx.Close()
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
