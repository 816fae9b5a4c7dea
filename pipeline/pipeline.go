package pipeline

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Pipeline 把一次查询拆成可组合的 Node 链（Recall → Filter → ReRank）。
// 所有 Node 都是对不可变快照的纯读操作，Pipeline 本身无状态。
type Pipeline struct {
	Nodes []Node
}

func (p *Pipeline) Run(
	ctx context.Context,
	rctx *core.RecommendContext,
	items []*core.Item,
) ([]*core.Item, error) {
	cur := items
	for _, node := range p.Nodes {
		next, err := node.Process(ctx, rctx, cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}
