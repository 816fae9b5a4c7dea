package recall

import (
	"context"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pipeline"
)

// Availability 是召回源的可选接口：声明自己对该请求是否有信号
// （例如画像召回在用户有交互历史时才有信号）。
type Availability interface {
	Available(ctx context.Context, rctx *core.RecommendContext) bool
}

// Fallback 按顺序尝试多个召回源，兜底语义是"有画像走画像、没画像走热门"。
//
// 实现了 Availability 的源按声明决定：无信号则跳过，有信号则选中——
// 选中后即使结果为空也不再向后尝试。交互覆盖了全目录的用户必须拿到
// 空列表，而不是经热门排行把已交互商品重新推回来。
// 未声明信号的源退化为"结果非空即选中"。
type Fallback struct {
	Sources []Source
}

func (n *Fallback) Name() string        { return "recall.fallback" }
func (n *Fallback) Kind() pipeline.Kind { return pipeline.KindRecall }

func (n *Fallback) Process(
	ctx context.Context,
	rctx *core.RecommendContext,
	_ []*core.Item,
) ([]*core.Item, error) {
	for _, src := range n.Sources {
		if av, ok := src.(Availability); ok {
			if !av.Available(ctx, rctx) {
				continue
			}
			return src.Recall(ctx, rctx)
		}

		items, err := src.Recall(ctx, rctx)
		if err != nil {
			return nil, err
		}
		if len(items) > 0 {
			return items, nil
		}
	}
	return nil, nil
}
