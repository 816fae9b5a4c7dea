// Package vectorizer 实现 TF-IDF 文本向量化：unigram+bigram 词表、
// 平滑 IDF、输出行做 L2 归一化。词表按字典序分配列号，
// 同一语料两次拟合得到逐位一致的结果。
package vectorizer

import (
	"math"
	"sort"
	"strings"

	"github.com/shopkit/shoprec/pkg/sparse"
)

// Model 是拟合后的词表与 IDF 权重，拟合完成后只读。
type Model struct {
	// Vocabulary 是 term -> 列号 的映射，列号按 term 字典序分配
	Vocabulary map[string]int `json:"vocabulary"`
	// IDF 按列号对齐的逆文档频率权重
	IDF []float64 `json:"idf"`

	NgramMin int `json:"ngram_min"`
	NgramMax int `json:"ngram_max"`
	MinDF    int `json:"min_df"` // 最小文档频率，低于此值的 term 被丢弃
}

// NewModel 返回默认配置的模型：unigram+bigram，min_df=1。
func NewModel() *Model {
	return &Model{NgramMin: 1, NgramMax: 2, MinDF: 1}
}

// Fit 在语料上拟合词表与 IDF。
// IDF 采用平滑公式 ln((1+N)/(1+df)) + 1，避免除零并压低全量出现的 term。
func (m *Model) Fit(docs []string) {
	if m.MinDF < 1 {
		m.MinDF = 1
	}

	df := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]struct{})
		for _, t := range m.ngrams(doc) {
			seen[t] = struct{}{}
		}
		for t := range seen {
			df[t]++
		}
	}

	terms := make([]string, 0, len(df))
	for t, c := range df {
		if c >= m.MinDF {
			terms = append(terms, t)
		}
	}
	sort.Strings(terms)

	n := float64(len(docs))
	m.Vocabulary = make(map[string]int, len(terms))
	m.IDF = make([]float64, len(terms))
	for i, t := range terms {
		m.Vocabulary[t] = i
		m.IDF[i] = math.Log((1+n)/(1+float64(df[t]))) + 1
	}
}

// Transform 将一篇文档转为 L2 归一化的稀疏 TF-IDF 向量。
// 不在词表中的 term 被忽略；没有任何命中时返回零向量。
func (m *Model) Transform(doc string) sparse.Vector {
	counts := make(map[int]float64)
	for _, t := range m.ngrams(doc) {
		if col, ok := m.Vocabulary[t]; ok {
			counts[col]++
		}
	}
	for col := range counts {
		counts[col] *= m.IDF[col]
	}
	return sparse.FromMap(counts, len(m.IDF)).Normalized()
}

// FitTransform 拟合并转换整个语料，返回每行单位化的稀疏矩阵。
func (m *Model) FitTransform(docs []string) *sparse.Matrix {
	m.Fit(docs)
	rows := make([]sparse.Vector, len(docs))
	for i, doc := range docs {
		rows[i] = m.Transform(doc)
	}
	return sparse.NewMatrix(rows, len(m.IDF))
}

// VocabSize 返回词表大小。
func (m *Model) VocabSize() int { return len(m.IDF) }

// ngrams 生成 [NgramMin, NgramMax] 范围内的所有 n-gram，
// 多词 term 以空格连接。
func (m *Model) ngrams(doc string) []string {
	toks := tokenize(doc)
	lo, hi := m.NgramMin, m.NgramMax
	if lo < 1 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	out := make([]string, 0, len(toks)*(hi-lo+1))
	for n := lo; n <= hi; n++ {
		for i := 0; i+n <= len(toks); i++ {
			out = append(out, strings.Join(toks[i:i+n], " "))
		}
	}
	return out
}
