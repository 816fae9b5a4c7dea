package sparse

// Matrix 是 CSR 格式的稀疏矩阵：第 i 行的非零元素位于
// [RowPtr[i], RowPtr[i+1]) 区间。构建完成后只读。
type Matrix struct {
	Rows   int       `json:"rows"`
	Cols   int       `json:"cols"`
	RowPtr []int     `json:"row_ptr"`
	ColIdx []int     `json:"col_idx"`
	Data   []float64 `json:"data"`
}

// NewMatrix 从每行的稀疏向量构建 CSR 矩阵。
func NewMatrix(rows []Vector, cols int) *Matrix {
	m := &Matrix{
		Rows:   len(rows),
		Cols:   cols,
		RowPtr: make([]int, 1, len(rows)+1),
	}
	for _, r := range rows {
		m.ColIdx = append(m.ColIdx, r.Indices...)
		m.Data = append(m.Data, r.Values...)
		m.RowPtr = append(m.RowPtr, len(m.ColIdx))
	}
	return m
}

// Row 返回第 i 行的稀疏向量视图（与矩阵共享底层切片，调用方不得修改）。
func (m *Matrix) Row(i int) Vector {
	start, end := m.RowPtr[i], m.RowPtr[i+1]
	return Vector{Indices: m.ColIdx[start:end], Values: m.Data[start:end], Dim: m.Cols}
}
