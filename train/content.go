package train

import (
	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/sparse"
	"github.com/shopkit/shoprec/vectorizer"
)

// BuildProductIndex 是内容索引构建步骤：拼接每个商品的文本字段，
// 拟合 TF-IDF 词表（unigram+bigram，min_df=1），输出每行 L2 归一化的
// 商品向量索引。行号 i 对应商品 ID i+1。目录固定时结果逐位一致。
func BuildProductIndex(catalog core.Catalog) (*vectorizer.Model, *sparse.Matrix, error) {
	if len(catalog) == 0 {
		return nil, nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
			"train: cannot build product index from an empty catalog")
	}

	docs := make([]string, len(catalog))
	for i, p := range catalog {
		docs[i] = p.Text()
	}

	model := vectorizer.NewModel()
	index := model.FitTransform(docs)
	return model, index, nil
}
