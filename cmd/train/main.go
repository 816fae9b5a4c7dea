// 离线构建入口：装载目录与交互日志，构建快照并写入制品存储。
// 每次运行全量重建，产出一个新快照；在线服务通过 reload 原子切换。
package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/shopkit/shoprec/config"
	"github.com/shopkit/shoprec/dataset"
	"github.com/shopkit/shoprec/snapshot"
	"github.com/shopkit/shoprec/train"
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
	events, err := dataset.LoadInteractions(cfg.Data.Interactions)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Data.Interactions).Msg("load interactions")
	}

	snap, err := train.Build(ctx, catalog, events)
	if err != nil {
		log.Fatal().Err(err).Msg("build snapshot")
	}

	st, err := cfg.OpenStore()
	if err != nil {
		log.Fatal().Err(err).Msg("open model store")
	}
	defer st.Close()

	mgr := snapshot.NewManager(st, len(catalog))
	if err := mgr.Save(ctx, snap); err != nil {
		log.Fatal().Err(err).Msg("save snapshot")
	}

	log.Info().
		Str("store", st.Name()).
		Int("products", snap.Index.Rows).
		Int("users", len(snap.UserRows)).
		Int("vocab", snap.Vectorizer.VocabSize()).
		Msg("snapshot built")
}
