package train

import (
	"fmt"
	"sort"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/snapshot"
)

// AggregateInteractions 是交互聚合步骤：事件按固定权重表换算
// （未识别类型权重 0，等价于剔除），按 (用户, 商品) 分组求和，
// 产出加权 User-Item 矩阵、用户 ID→行号映射与热门度排行。
//
// 用户行号按用户 ID 升序分配，保证可复现；矩阵列号 = 商品 ID - 1。
// 热门度按全量日志的总权重降序排列，同分按商品 ID 升序。
func AggregateInteractions(events []core.Interaction, numProducts int) (*sparse.Matrix, []int64, []snapshot.PopularityEntry, error) {
	type pair struct{ user, product int64 }

	weights := make(map[pair]float64)
	popScore := make(map[int64]float64)
	for _, ev := range events {
		w := ev.Kind.Weight()
		if w == 0 {
			continue
		}
		if ev.ProductID < 1 || ev.ProductID > int64(numProducts) {
			return nil, nil, nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("train: interaction references product %d outside catalog of %d", ev.ProductID, numProducts))
		}
		weights[pair{ev.UserID, ev.ProductID}] += w
		popScore[ev.ProductID] += w
	}

	// 用户 ID → 行号：去重后升序
	uidSet := make(map[int64]struct{})
	for k := range weights {
		uidSet[k.user] = struct{}{}
	}
	userRows := make([]int64, 0, len(uidSet))
	for uid := range uidSet {
		userRows = append(userRows, uid)
	}
	sort.Slice(userRows, func(i, j int) bool { return userRows[i] < userRows[j] })

	rowOf := make(map[int64]int, len(userRows))
	for i, uid := range userRows {
		rowOf[uid] = i
	}

	// User-Item 矩阵
	perUser := make([]map[int]float64, len(userRows))
	for i := range perUser {
		perUser[i] = make(map[int]float64)
	}
	for k, w := range weights {
		perUser[rowOf[k.user]][core.RowOfProductID(k.product)] = w
	}
	rows := make([]sparse.Vector, len(userRows))
	for i, m := range perUser {
		rows[i] = sparse.FromMap(m, numProducts)
	}
	userItem := sparse.NewMatrix(rows, numProducts)

	// 热门度排行
	popularity := make([]snapshot.PopularityEntry, 0, len(popScore))
	for pid, score := range popScore {
		popularity = append(popularity, snapshot.PopularityEntry{ProductID: pid, Score: score})
	}
	sort.Slice(popularity, func(i, j int) bool {
		if popularity[i].Score != popularity[j].Score {
			return popularity[i].Score > popularity[j].Score
		}
		return popularity[i].ProductID < popularity[j].ProductID
	})

	return userItem, userRows, popularity, nil
}
