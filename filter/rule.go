package filter

import (
	"context"
	"fmt"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/pkg/dsl"
)

// RuleFilter 按配置的 CEL 规则过滤结果：任一规则命中即剔除。
// 规则表达式可访问商品的目录字段与相似度分数，例如
// `item.price > 500.0` 或 `item.category == "clearance"`。
type RuleFilter struct {
	Catalog core.Catalog
	Rules   []*dsl.Rule
}

// NewRuleFilter 编译规则表达式并创建过滤器。
// 表达式语法错误在这里暴露，而不是等到请求路径上。
func NewRuleFilter(catalog core.Catalog, exprs []string) (*RuleFilter, error) {
	rules := make([]*dsl.Rule, 0, len(exprs))
	for _, expr := range exprs {
		r, err := dsl.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", expr, err)
		}
		rules = append(rules, r)
	}
	return &RuleFilter{Catalog: catalog, Rules: rules}, nil
}

func (f *RuleFilter) Name() string { return "filter.rule" }

func (f *RuleFilter) ShouldFilter(
	_ context.Context,
	rctx *core.RecommendContext,
	item *core.Item,
) (bool, error) {
	if item == nil {
		return true, nil
	}
	p, ok := f.Catalog.Get(item.ID)
	if !ok {
		// 不在目录里的 ID 一律不放行
		return true, nil
	}

	itemVars := map[string]any{
		"id":          p.ID,
		"title":       p.Title,
		"category":    p.Category,
		"tags":        p.Tags,
		"description": p.Description,
		"price":       p.Price,
		"score":       item.Score,
	}
	userVars := map[string]any{}
	if rctx != nil {
		userVars["id"] = rctx.UserID
	}

	for _, r := range f.Rules {
		matched, err := r.Eval(itemVars, userVars)
		if err != nil {
			// 单条规则求值失败不中断过滤流程
			continue
		}
		if matched {
			return true, nil
		}
	}
	return false, nil
}
