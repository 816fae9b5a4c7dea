package recall

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/pkg/utils"
	"github.com/shopkit/shoprec/snapshot"
)

// PopularityRecall 是热门兜底召回：直接读取快照里的热门排行
// （按全量日志总交互权重降序、同分按 ID 升序），用于无画像用户的
// 冷启动。排行在离线构建时生成，在线阶段从不修改。
type PopularityRecall struct {
	Snapshots *snapshot.Manager
}

func (r *PopularityRecall) Name() string        { return "recall.popularity" }
func (r *PopularityRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *PopularityRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

func (r *PopularityRecall) Recall(
	_ context.Context,
	rctx *core.RecommendContext,
) ([]*core.Item, error) {
	if r.Snapshots == nil || rctx == nil {
		return nil, nil
	}
	snap := r.Snapshots.Current()
	if snap == nil {
		return nil, nil
	}

	entries := snap.PopularTop(rctx.K)
	out := make([]*core.Item, 0, len(entries))
	for _, e := range entries {
		it := core.NewItem(e.ProductID)
		it.Score = e.Score
		it.PutLabel("recall_source", utils.Label{Value: "popularity", Source: "recall"})
		out = append(out, it)
	}
	return out, nil
}
