// Package service 把画像召回、相似召回、热门兜底与业务规则过滤
// 组装成引擎对外的三个查询入口。所有查询都是对不可变快照的纯读
// 操作，相互之间无需加锁；引擎内部不重试、不做 I/O，网络层面的
// 重试与超时属于外层的职责。
package service

import (
	"context"
	"strings"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/filter"
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/recall"
	"github.com/shopkit/shoprec/rerank"
	"github.com/shopkit/shoprec/snapshot"
)

// Recommender 是推荐引擎的门面。返回值始终是完整的目录记录；
// 未知用户、越界商品、空搜索结果都用空列表表达，从不返回错误。
type Recommender struct {
	catalog   core.Catalog
	snapshots *snapshot.Manager
	filters   []filter.Filter
}

// New 创建 Recommender。filters 为可选的业务规则过滤器
// （例如配置驱动的 filter.RuleFilter）。
func New(catalog core.Catalog, snapshots *snapshot.Manager, filters ...filter.Filter) *Recommender {
	return &Recommender{
		catalog:   catalog,
		snapshots: snapshots,
		filters:   filters,
	}
}

// RecommendForUser 为用户生成个性化推荐。
// 有画像时按画像相似度排名并排除已交互商品；未知用户或空画像
// 退回热门排行的前 k 项。k <= 0 时返回空列表。
func (r *Recommender) RecommendForUser(ctx context.Context, userID int64, k int) ([]core.Product, error) {
	if k <= 0 {
		return nil, nil
	}
	rctx := &core.RecommendContext{UserID: userID, K: k}
	p := &pipeline.Pipeline{Nodes: []pipeline.Node{
		&recall.Fallback{Sources: []recall.Source{
			&recall.ProfileRecall{Snapshots: r.snapshots},
			&recall.PopularityRecall{Snapshots: r.snapshots},
		}},
		&filter.FilterNode{Filters: r.filters},
		&rerank.TopNNode{N: k},
	}}
	items, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}
	return r.records(items), nil
}

// SimilarItems 返回与指定商品内容最相似的商品，排除其自身。
// 商品 ID 越界时返回空列表。
func (r *Recommender) SimilarItems(ctx context.Context, productID int64, k int) ([]core.Product, error) {
	if k <= 0 {
		return nil, nil
	}
	rctx := &core.RecommendContext{
		K:      k,
		Params: map[string]any{"product_id": productID},
	}
	p := &pipeline.Pipeline{Nodes: []pipeline.Node{
		&recall.SimilarRecall{Snapshots: r.snapshots},
		&filter.FilterNode{Filters: r.filters},
		&rerank.TopNNode{N: k},
	}}
	items, err := p.Run(ctx, rctx, nil)
	if err != nil {
		return nil, err
	}
	return r.records(items), nil
}

// SearchProducts 对目录做大小写不敏感的子串匹配：标题、类目、
// 标签、描述任一字段命中即算匹配，按目录原始顺序返回最多 k 条。
// 这是字面文本过滤，与向量索引无关。
func (r *Recommender) SearchProducts(query string, k int) []core.Product {
	if k <= 0 {
		return nil
	}
	q := strings.ToLower(query)
	out := make([]core.Product, 0, k)
	for _, p := range r.catalog {
		if strings.Contains(strings.ToLower(p.Title), q) ||
			strings.Contains(strings.ToLower(p.Category), q) ||
			strings.Contains(strings.ToLower(p.Tags), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
			if len(out) >= k {
				break
			}
		}
	}
	return out
}

// Product 按 ID 返回目录记录。
func (r *Recommender) Product(productID int64) (core.Product, bool) {
	return r.catalog.Get(productID)
}

// records 把排名结果映射回完整目录记录，顺序保持不变。
func (r *Recommender) records(items []*core.Item) []core.Product {
	out := make([]core.Product, 0, len(items))
	for _, it := range items {
		if p, ok := r.catalog.Get(it.ID); ok {
			out = append(out, p)
		}
	}
	return out
}
