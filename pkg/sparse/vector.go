// Package sparse 提供推荐引擎使用的稀疏向量与 CSR 稀疏矩阵。
// 只实现引擎需要的最小运算集合：点积、L2 归一化、加权累加、行视图。
package sparse

import (
	"math"
	"sort"
)

// Vector 是稀疏 float64 向量。Indices 严格升序且与 Values 等长，
// 未出现的下标视为 0。
type Vector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
	Dim     int       `json:"dim"`
}

// FromMap 从 下标->值 的映射构建稀疏向量，零值被跳过，下标升序排列。
// 排序保证同一输入两次构建的结果逐位一致。
func FromMap(m map[int]float64, dim int) Vector {
	idx := make([]int, 0, len(m))
	for i, v := range m {
		if v == 0 {
			continue
		}
		idx = append(idx, i)
	}
	sort.Ints(idx)
	vals := make([]float64, len(idx))
	for n, i := range idx {
		vals[n] = m[i]
	}
	return Vector{Indices: idx, Values: vals, Dim: dim}
}

// FromDense 从稠密向量构建稀疏向量，零值被跳过。
func FromDense(dense []float64) Vector {
	v := Vector{Dim: len(dense)}
	for i, x := range dense {
		if x == 0 {
			continue
		}
		v.Indices = append(v.Indices, i)
		v.Values = append(v.Values, x)
	}
	return v
}

// NNZ 返回非零元素个数。
func (v Vector) NNZ() int { return len(v.Values) }

// Norm 返回 L2 范数。
func (v Vector) Norm() float64 {
	var s float64
	for _, x := range v.Values {
		s += x * x
	}
	return math.Sqrt(s)
}

// Normalized 返回单位化后的副本；零向量原样返回。
func (v Vector) Normalized() Vector {
	n := v.Norm()
	if n == 0 {
		return v
	}
	out := Vector{Indices: v.Indices, Values: make([]float64, len(v.Values)), Dim: v.Dim}
	for i, x := range v.Values {
		out.Values[i] = x / n
	}
	return out
}

// DotDense 计算与稠密向量的点积。
func (v Vector) DotDense(dense []float64) float64 {
	var s float64
	for i, idx := range v.Indices {
		if idx < len(dense) {
			s += v.Values[i] * dense[idx]
		}
	}
	return s
}

// AddScaledTo 将 w*v 累加到稠密向量 dst 上；dst 长度不足的部分被忽略。
func (v Vector) AddScaledTo(dst []float64, w float64) {
	for i, idx := range v.Indices {
		if idx < len(dst) {
			dst[idx] += w * v.Values[i]
		}
	}
}

// ToDense 转为稠密向量。
func (v Vector) ToDense() []float64 {
	dense := make([]float64, v.Dim)
	for i, idx := range v.Indices {
		dense[idx] = v.Values[i]
	}
	return dense
}
