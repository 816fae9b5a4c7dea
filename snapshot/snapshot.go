// Package snapshot 负责模型制品的持久化、完整性校验与进程内缓存。
// 一次离线构建产出一个快照；在线服务加载一次后只读，
// 新快照通过原子指针替换对外可见。
package snapshot

import (
	"fmt"
	"sort"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/vectorizer"
)

// PopularityEntry 是热门度排行中的一项。
type PopularityEntry struct {
	ProductID int64   `json:"product_id"`
	Score     float64 `json:"score"`
}

// Snapshot 是一次离线构建产出的全部模型制品，加载后只读。
// Index、UserItem、Popularity 共享同一行号空间：行号 i 对应商品 ID i+1。
type Snapshot struct {
	Vectorizer *vectorizer.Model
	Index      *sparse.Matrix    // 商品向量索引，每行 L2 归一化
	UserItem   *sparse.Matrix    // 加权 User-Item 矩阵
	UserRows   []int64           // 用户 ID → 行号映射，按 ID 升序
	Popularity []PopularityEntry // 按分数降序、ID 升序
}

// UserRow 返回用户在 User-Item 矩阵中的行号。
// 未知用户返回 (0, false)——这是正常状态，不是错误。
func (s *Snapshot) UserRow(userID int64) (int, bool) {
	i := sort.Search(len(s.UserRows), func(i int) bool { return s.UserRows[i] >= userID })
	if i < len(s.UserRows) && s.UserRows[i] == userID {
		return i, true
	}
	return 0, false
}

// PopularTop 返回热门度排行的前 k 项。
func (s *Snapshot) PopularTop(k int) []PopularityEntry {
	if k <= 0 {
		return nil
	}
	if k > len(s.Popularity) {
		k = len(s.Popularity)
	}
	return s.Popularity[:k]
}

// Validate 校验各制品之间的维度一致性。任何不一致都说明制品
// 来自不同的构建或已损坏，服务必须拒绝使用。
func (s *Snapshot) Validate(catalogSize int) error {
	if s.Vectorizer == nil || s.Index == nil || s.UserItem == nil {
		return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			"snapshot: missing artifact")
	}
	if s.Index.Rows != catalogSize {
		return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			fmt.Sprintf("snapshot: product index has %d rows, catalog has %d", s.Index.Rows, catalogSize))
	}
	if s.Vectorizer.VocabSize() != s.Index.Cols {
		return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			fmt.Sprintf("snapshot: vocabulary size %d != index columns %d", s.Vectorizer.VocabSize(), s.Index.Cols))
	}
	if s.UserItem.Cols != s.Index.Rows {
		return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			fmt.Sprintf("snapshot: user-item matrix has %d columns, index has %d rows", s.UserItem.Cols, s.Index.Rows))
	}
	if s.UserItem.Rows != len(s.UserRows) {
		return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
			fmt.Sprintf("snapshot: user-item matrix has %d rows, user mapping has %d", s.UserItem.Rows, len(s.UserRows)))
	}
	for _, e := range s.Popularity {
		if e.ProductID < 1 || e.ProductID > int64(catalogSize) {
			return core.NewDomainError(core.ModuleSnapshot, core.ErrorCodeCorrupted,
				fmt.Sprintf("snapshot: popularity entry references product %d outside catalog", e.ProductID))
		}
	}
	return nil
}
