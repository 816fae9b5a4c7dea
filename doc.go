// Package shoprec 是一个电商内容推荐引擎（Shop Recommender）。
//
// 设计要点：
// - 离线/在线分离：train 负责批量构建制品，snapshot 负责持久化与原子切换
// - Pipeline-first: 在线查询通过 Node 串联（Recall → Filter → ReRank）
// - 兜底优先：无画像用户自动退回热门排行，"未知用户"是正常状态而非错误
package shoprec

import (
	"github.com/shopkit/shoprec/pipeline"
	"github.com/shopkit/shoprec/service"
	"github.com/shopkit/shoprec/snapshot"
)

// 轻量 facade：便于用户直接 import "shoprec" 使用核心抽象。
type Pipeline = pipeline.Pipeline
type Node = pipeline.Node
type Kind = pipeline.Kind
type Recommender = service.Recommender
type Snapshot = snapshot.Snapshot

const (
	KindRecall = pipeline.KindRecall
	KindFilter = pipeline.KindFilter
	KindReRank = pipeline.KindReRank
)
