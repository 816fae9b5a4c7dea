// Package recall 实现在线召回：画像召回、相似召回与热门兜底。
// 所有召回源都是对不可变快照的纯读操作。
package recall

import (
	"context"

	"github.com/shopkit/shoprec/core"
)

// Source 是召回源的统一抽象。
type Source interface {
	// Name 返回召回源名称（用于 label / 观测）
	Name() string

	// Recall 生成候选集；无信号（未知用户、越界商品）返回空结果而非错误
	Recall(ctx context.Context, rctx *core.RecommendContext) ([]*core.Item, error)
}
