package core

// Product 是目录中的一条商品记录，离线构建与在线查询共享的只读引用数据。
// ID 从 1 开始连续递增，与商品向量索引的行号一一对应。
type Product struct {
	ID          int64   `json:"product_id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Tags        string  `json:"tags"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

// Text 拼接四个文本字段作为内容向量化的输入，缺失字段即空串。
func (p Product) Text() string {
	return p.Title + " " + p.Category + " " + p.Tags + " " + p.Description
}

// ProductIDOfRow 是行号到商品 ID 的唯一换算点。
// 行号从 0 开始，商品 ID 从 1 开始；所有模块都必须经由这里换算，
// 避免 id-1 的约定散落在各处。
func ProductIDOfRow(row int) int64 { return int64(row) + 1 }

// RowOfProductID 是商品 ID 到行号的唯一换算点。
func RowOfProductID(productID int64) int { return int(productID - 1) }

// Catalog 是完整商品目录，加载后只读。
type Catalog []Product

// RowOf 返回商品 ID 对应的索引行号；ID 越界时返回 (0, false)。
func (c Catalog) RowOf(productID int64) (int, bool) {
	if productID < 1 || productID > int64(len(c)) {
		return 0, false
	}
	return RowOfProductID(productID), true
}

// IDOf 返回索引行号对应的商品 ID。
func (c Catalog) IDOf(row int) int64 { return ProductIDOfRow(row) }

// Get 按商品 ID 查找记录；越界时返回 (Product{}, false)。
func (c Catalog) Get(productID int64) (Product, bool) {
	row, ok := c.RowOf(productID)
	if !ok {
		return Product{}, false
	}
	return c[row], true
}
