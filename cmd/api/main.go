// 在线服务入口：加载一次快照后提供 HTTP 查询。
// 快照加载失败时拒绝启动；SIGHUP 触发显式 reload（原子切换）。
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/shopkit/shoprec/api"
	"github.com/shopkit/shoprec/config"
	"github.com/shopkit/shoprec/dataset"
	"github.com/shopkit/shoprec/filter"
	"github.com/shopkit/shoprec/service"
	"github.com/shopkit/shoprec/snapshot"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	ctx := context.Background()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	catalog, err := dataset.LoadCatalog(cfg.Data.Products)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.Products).Msg("load catalog")
	}

	st, err := cfg.OpenStore()
	if err != nil {
		log.Fatal().Err(err).Msg("open model store")
	}
	defer st.Close()

	mgr := snapshot.NewManager(st, len(catalog))
	if err := mgr.Load(ctx); err != nil {
		// 没有合法快照就不提供服务
		log.Fatal().Err(err).Msg("load snapshot")
	}

	var filters []filter.Filter
	if len(cfg.Server.Rules) > 0 {
		rf, err := filter.NewRuleFilter(catalog, cfg.Server.Rules)
		if err != nil {
			log.Fatal().Err(err).Msg("compile rules")
		}
		filters = append(filters, rf)
	}

	rec := service.New(catalog, mgr, filters...)
	srv := api.NewServer(rec, log, cfg.Server.DefaultK)

	// SIGHUP: 重新加载快照（训练产出新制品后无需重启进程）
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	go func() {
		for range hup {
			if err := mgr.Load(ctx); err != nil {
				log.Error().Err(err).Msg("snapshot reload failed, keeping current")
				continue
			}
			log.Info().Msg("snapshot reloaded")
		}
	}()

	log.Info().Str("addr", cfg.Server.Addr).Str("store", st.Name()).Msg("serving")
	if err := http.ListenAndServe(cfg.Server.Addr, srv.Router()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
