// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"

	"stockdeck-api/internal/cli"
	"stockdeck-api/internal/config"
	"stockdeck-api/internal/handler"
	"stockdeck-api/internal/svc"
	"stockdeck-api/internal/xerr"
)

var configFile = flag.String("f", "etc/stockdeck.yaml", "the config file")

func main() {
	flag.Parse()

	cfg := config.MustLoad(*configFile)
	cli.LogConfigSummary(cfg)

	server := rest.MustNewServer(cfg.RestConf)
	defer server.Stop()

	httpx.SetErrorHandlerCtx(xerr.Handler)

	ctx := svc.NewServiceContext(*cfg)
	handler.RegisterHandlers(server, ctx)

	fmt.Printf("Starting server at %s:%d...\n", cfg.Host, cfg.Port)
	server.Start()
}
