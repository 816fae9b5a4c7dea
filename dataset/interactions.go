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

// LoadInteractions 读取交互日志 CSV。表头必须包含
// user_id,product_id,event_type。未识别的 event_type 照常装载，
// 权重换算（未知类型 → 0）发生在聚合阶段，不在这里。
func LoadInteractions(path string) ([]core.Interaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open interactions: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(bufio.NewReader(f))
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("read interactions header: %w", err)
	}
	cols, err := indexColumns(header, "user_id", "product_id", "event_type")
	if err != nil {
		return nil, err
	}

	var events []core.Interaction
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read interaction row: %w", err)
		}

		uid, err := strconv.ParseInt(rec[cols["user_id"]], 10, 64)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: bad user_id %q", rec[cols["user_id"]]))
		}
		pid, err := strconv.ParseInt(rec[cols["product_id"]], 10, 64)
		if err != nil {
			return nil, core.NewDomainError(core.ModuleDataset, core.ErrorCodeInvalidInput,
				fmt.Sprintf("dataset: bad product_id %q", rec[cols["product_id"]]))
		}

		events = append(events, core.Interaction{
			UserID:    uid,
			ProductID: pid,
			Kind:      core.EventKind(rec[cols["event_type"]]),
		})
	}
	return events, nil
}
