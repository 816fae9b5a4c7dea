package recall

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/pkg/utils"
	"github.com/shopkit/shoprec/snapshot"
)

// ProfileRecall 基于用户的加权交互历史做内容召回。
//
// 画像向量 = 用户在 User-Item 矩阵中的行 × 商品向量索引
// （即按交互权重对索引行加权求和），再做 L2 归一化。
// "有画像"的判定是用户行存在且有交互（Available）；未知用户、无交互
// 视为无画像，由上层走热门兜底。有画像但候选全被排除时返回空结果，
// 绝不触发兜底——这两种空是不同的状态。
// 用户交互过的商品构成排除集，不会出现在召回结果里。
type ProfileRecall struct {
	Snapshots *snapshot.Manager
}

func (r *ProfileRecall) Name() string        { return "recall.profile" }
func (r *ProfileRecall) Kind() pipeline.Kind { return pipeline.KindRecall }

// Available 实现 Availability 接口：用户行存在且有交互即有画像。
func (r *ProfileRecall) Available(_ context.Context, rctx *core.RecommendContext) bool {
	if r.Snapshots == nil || rctx == nil {
		return false
	}
	snap := r.Snapshots.Current()
	if snap == nil {
		return false
	}
	row, ok := snap.UserRow(rctx.UserID)
	if !ok {
		return false
	}
	return snap.UserItem.Row(row).NNZ() > 0
}

// Process 实现 Node 接口，直接调用 Recall。
func (r *ProfileRecall) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	return r.Recall(ctx, rctx)
}

// Recall 实现 Source 接口。
func (r *ProfileRecall) Recall(
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

	row, ok := snap.UserRow(rctx.UserID)
	if !ok {
		return nil, nil
	}
	ui := snap.UserItem.Row(row)
	if ui.NNZ() == 0 {
		return nil, nil
	}

	// profile = Σ weight_i · index[row_i]
	acc := make([]float64, snap.Index.Cols)
	seen := make(map[int64]struct{}, ui.NNZ())
	for n, col := range ui.Indices {
		snap.Index.Row(col).AddScaledTo(acc, ui.Values[n])
		seen[core.ProductIDOfRow(col)] = struct{}{}
	}
	profile := sparse.FromDense(acc)

	// 画像为零向量时照常排名（全零分、ID 升序），不走兜底
	items := RankBySimilarity(snap.Index, profile, seen, rctx.K)
	for _, it := range items {
		it.PutLabel("recall_source", utils.Label{Value: "profile", Source: "recall"})
	}
	return items, nil
}
