package filter

import (
	"context"
	"testing"

	"github.com/shopkit/shoprec/core"
)

func ruleTestCatalog() core.Catalog {
	return core.Catalog{
		{ID: 1, Title: "Red Shoes", Category: "footwear", Price: 59.9},
		{ID: 2, Title: "Blue Shoes", Category: "footwear", Price: 599.0},
		{ID: 3, Title: "Red Hat", Category: "clearance", Price: 19.9},
	}
}

func TestRuleFilterByPrice(t *testing.T) {
	f, err := NewRuleFilter(ruleTestCatalog(), []string{`item.price > 100.0`})
	if err != nil {
		t.Fatalf("NewRuleFilter: %v", err)
	}
	ctx := context.Background()
	rctx := &core.RecommendContext{UserID: 1}

	tests := []struct {
		productID int64
		want      bool
	}{
		{1, false},
		{2, true},
		{3, false},
	}
	for _, tt := range tests {
		got, err := f.ShouldFilter(ctx, rctx, core.NewItem(tt.productID))
		if err != nil {
			t.Fatalf("ShouldFilter(%d): %v", tt.productID, err)
		}
		if got != tt.want {
			t.Errorf("ShouldFilter(%d) = %v, want %v", tt.productID, got, tt.want)
		}
	}
}

func TestRuleFilterByCategory(t *testing.T) {
	f, err := NewRuleFilter(ruleTestCatalog(), []string{`item.category == "clearance"`})
	if err != nil {
		t.Fatalf("NewRuleFilter: %v", err)
	}

	got, err := f.ShouldFilter(context.Background(), nil, core.NewItem(3))
	if err != nil {
		t.Fatalf("ShouldFilter: %v", err)
	}
	if !got {
		t.Error("clearance product should be filtered")
	}
}

func TestRuleFilterUnknownProduct(t *testing.T) {
	f, err := NewRuleFilter(ruleTestCatalog(), []string{`item.price > 100.0`})
	if err != nil {
		t.Fatalf("NewRuleFilter: %v", err)
	}

	got, err := f.ShouldFilter(context.Background(), nil, core.NewItem(42))
	if err != nil {
		t.Fatalf("ShouldFilter: %v", err)
	}
	if !got {
		t.Error("product missing from the catalog must not pass the filter")
	}
}

func TestRuleFilterCompileError(t *testing.T) {
	if _, err := NewRuleFilter(ruleTestCatalog(), []string{`item.price >`}); err == nil {
		t.Error("broken expression should fail at construction")
	}
}

func TestRuleFilterEvalErrorIsSkipped(t *testing.T) {
	// user.country 不存在，单条规则求值失败不应导致误杀
	f, err := NewRuleFilter(ruleTestCatalog(), []string{`user.country == "CN"`})
	if err != nil {
		t.Fatalf("NewRuleFilter: %v", err)
	}

	got, err := f.ShouldFilter(context.Background(), &core.RecommendContext{UserID: 1}, core.NewItem(1))
	if err != nil {
		t.Fatalf("ShouldFilter: %v", err)
	}
	if got {
		t.Error("item should be kept when the only rule fails to evaluate")
	}
}

type alwaysFilter struct{}

func (alwaysFilter) Name() string { return "filter.always" }
func (alwaysFilter) ShouldFilter(context.Context, *core.RecommendContext, *core.Item) (bool, error) {
	return true, nil
}

func TestFilterNode(t *testing.T) {
	items := []*core.Item{core.NewItem(1), nil, core.NewItem(2)}

	// 无过滤器时原样通过
	pass := &FilterNode{}
	got, err := pass.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(got) != len(items) {
		t.Errorf("empty filter list should pass items through, got %d", len(got))
	}

	drop := &FilterNode{Filters: []Filter{alwaysFilter{}}}
	got, err = drop.Process(context.Background(), nil, items)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("always-on filter should drop everything, got %d items", len(got))
	}
	if l, ok := items[0].Labels["filtered"]; !ok || l.Source != "filter.always" {
		t.Errorf("dropped item should carry the filtered label, got %+v", items[0].Labels)
	}
}
