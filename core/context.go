package core

// RecommendContext 承载一次查询的用户与请求信息，贯穿整个 Pipeline 透传。
type RecommendContext struct {
	UserID int64

	// K 是本次请求期望返回的结果数；<= 0 时各节点按空结果处理。
	K int

	// Params 请求级参数，例如相似查询的 product_id、搜索的 query 文本。
	Params map[string]any
}

// ParamInt64 从 Params 取 int64 参数；缺失或类型不符时返回 (0, false)。
func (rctx *RecommendContext) ParamInt64(key string) (int64, bool) {
	if rctx == nil || rctx.Params == nil {
		return 0, false
	}
	switch v := rctx.Params[key].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	default:
		return 0, false
	}
}
