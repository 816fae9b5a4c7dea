package recall

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/pkg/utils"
	"github.com/shopkit/shoprec/snapshot"
)

// SimilarRecall 以指定商品自身的索引行作为查询向量做相似召回，
// 该商品本身始终被排除。商品 ID 从 rctx.Params["product_id"] 读取，
// 越界时返回空结果而非错误。
type SimilarRecall struct {
	Snapshots *snapshot.Manager
}

func (r *SimilarRecall) Name() string        { return "recall.similar" }
func (r *SimilarRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

func (r *SimilarRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

func (r *SimilarRecall) Recall(
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

	productID, ok := rctx.ParamInt64("product_id")
	if !ok || productID < 1 || productID > int64(snap.Index.Rows) {
		return nil, nil
	}
	row := core.RowOfProductID(productID)

	exclude := map[int64]struct{}{productID: {}}
	items := RankBySimilarity(snap.Index, snap.Index.Row(row), exclude, rctx.K)
	for _, it := range items {
		it.PutLabel("recall_source", utils.Label{Value: "similar", Source: "recall"})
	}
	return items, nil
}
