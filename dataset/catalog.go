// Package dataset 从 CSV 装载商品目录与交互日志。
// 这是引擎外的薄数据接入层：解析、换算列、校验目录 ID 连续性。
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/shopkit/shoprec/core"
)

// LoadCatalog 读取商品目录 CSV。表头必须包含
// product_id,title,category,tags,description,price；
// product_id 必须从 1 开始连续递增（与索引行号对齐），否则报错。
func LoadCatalog(path string) (core.Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	cols, err := indexColumns(header, "product_id", "title", "category", "tags", "description", "price")
	if err != nil {
		return nil, err
	}

	var catalog core.Catalog
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}

		id, err := strconv.ParseInt(rec[cols["product_id"]], 10, 64)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: bad product_id %q", rec[cols["product_id"]]))
		}
		if id != int64(len(catalog))+1 {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: product ids must be contiguous from 1, got %d at row %d", id, len(catalog)+1))
		}

		price := 0.0
		if s := rec[cols["price"]]; s != "" {
			price, err = strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
					fmt.Sprintf("dataset: bad price %q for product %d", s, id))
			}
		}

		catalog = append(catalog, core.Product{
			ID:          id,
			Title:       rec[cols["title"]],
			Category:    rec[cols["category"]],
			Tags:        rec[cols["tags"]],
			Description: rec[cols["description"]],
			Price:       price,
		})
	}
	return catalog, nil
}

// indexColumns 把表头换算成 列名 -> 下标，缺列直接报错。
func indexColumns(header []string, required ...string) (map[string]int, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: missing column %q", name))
		}
	}
	return cols, nil
}
