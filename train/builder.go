// Package train 实现离线构建：内容向量化、交互聚合与热门度排行，
// 产出一个完整的模型快照。构建是批处理任务，独占自己的输入，
// 与在线查询互不干扰；在线阶段不做任何增量更新。
package train

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/snapshot"
	"github.com/shopkit/shoprec/vectorizer"
)

// Build 执行一次完整的离线构建。内容索引与交互聚合相互独立，
// 并发执行；产出的快照已通过维度校验。输入固定时两次构建
// 产出逐位一致的制品。
func Build(ctx context.Context, catalog core.Catalog, events []core.Interaction) (*snapshot.Snapshot, error) {
	var (
		model    *vectorizer.Model
		index    *sparse.Matrix
		userItem *sparse.Matrix
		userRows []int64
		pop      []snapshot.PopularityEntry
	)

	eg, _ := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		model, index, err = BuildProductIndex(catalog)
		return err
	})
	eg.Go(func() error {
		var err error
		userItem, userRows, pop, err = AggregateInteractions(events, len(catalog))
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snap := &snapshot.Snapshot{
		Vectorizer: model,
		Index:      index,
		UserItem:   userItem,
		UserRows:   userRows,
		Popularity: pop,
	}
	if err := snap.Validate(len(catalog)); err != nil {
		return nil, err
	}
	return snap, nil
}
