package recall

import (
	"sort"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
)

// RankBySimilarity 用点积对商品向量索引的每一行打分并产出排名。
//
// 查询向量先做 L2 归一化，索引行本身已是单位向量，因此点积即余弦
// 相似度。排序按分数降序；分数相同按商品 ID 升序——稀疏向量支撑集
// 不相交时同分很常见，必须固定平局顺序才能保证可复现。
// exclude 中的商品被跳过，候选窗口自动扩展，直到取满 k 个或遍历完
// 整个目录。k <= 0 或目录为空时返回空结果，不是错误。
func RankBySimilarity(index *sparse.Matrix, query sparse.Vector, exclude map[int64]struct{}, k int) []*core.Item {
	if k <= 0 || index == nil || index.Rows == 0 {
		return nil
	}

	q := query.Normalized().ToDense()
	scores := make([]float64, index.Rows)
	for i := 0; i < index.Rows; i++ {
		scores[i] = index.Row(i).DotDense(q)
	}

	order := make([]int, index.Rows)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		if scores[order[a]] != scores[order[b]] {
			return scores[order[a]] > scores[order[b]]
		}
		return order[a] < order[b]
	})

	out := make([]*core.Item, 0, k)
	for _, row := range order {
		id := core.ProductIDOfRow(row)
		if _, skip := exclude[id]; skip {
			continue
		}
		it := core.NewItem(id)
		it.Score = scores[row]
		out = append(out, it)
		if len(out) >= k {
			break
		}
	}
	return out
}
