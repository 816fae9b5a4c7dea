package service

import (
	"context"
	"testing"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/filter"
	"github.com/shopkit/shoprec/snapshot"
	"github.com/shopkit/shoprec/store"
	"github.com/shopkit/shoprec/train"
)

// 固定场景：用户 1 购买过商品 1。"Red Shoes" 与 "Blue Shoes" 共享
// "shoes"、与 "Red Hat" 共享 "red"，两个词 df 相同，因此商品 2 和 3
// 与画像同分，排名靠商品 ID 升序定序。
func newTestRecommender(t *testing.T, filters ...filter.Filter) *Recommender {
	t.Helper()

	catalog := core.Catalog{
		{ID: 1, Title: "Red Shoes", Price: 59.9},
		{ID: 2, Title: "Blue Shoes", Price: 79.9},
		{ID: 3, Title: "Red Hat", Price: 19.9},
	}
	events := []core.Interaction{
		{UserID: 1, ProductID: 1, Kind: core.EventPurchase},
	}

	ctx := context.Background()
	snap, err := train.Build(ctx, catalog, events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	mgr := snapshot.NewManager(store.NewMemoryStore(), len(catalog))
	if err := mgr.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mgr.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}

	return New(catalog, mgr, filters...)
}

func productIDs(products []core.Product) []int64 {
	out := make([]int64, len(products))
	for i, p := range products {
		out[i] = p.ID
	}
	return out
}

func TestRecommendForUserWithProfile(t *testing.T) {
	rec := newTestRecommender(t)

	got, err := rec.RecommendForUser(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}

	ids := productIDs(got)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Errorf("got products %v, want [2 3]", ids)
	}
	for _, id := range ids {
		if id == 1 {
			t.Error("interacted product 1 must be excluded from recommendations")
		}
	}
}

func TestRecommendForUserFallsBackToPopular(t *testing.T) {
	rec := newTestRecommender(t)

	got, err := rec.RecommendForUser(context.Background(), 999, 5)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	ids := productIDs(got)
	if len(ids) != 1 || ids[0] != 1 {
		t.Errorf("unknown user should get the popularity ranking, got %v", ids)
	}
}

func TestRecommendForUserExhaustedProfileStaysEmpty(t *testing.T) {
	// 用户交互覆盖了全目录：画像存在，但所有候选都被排除。
	// 必须返回空列表，绝不能经热门兜底把已交互商品推回来。
	catalog := core.Catalog{
		{ID: 1, Title: "Red Shoes", Price: 59.9},
		{ID: 2, Title: "Blue Shoes", Price: 79.9},
	}
	events := []core.Interaction{
		{UserID: 1, ProductID: 1, Kind: core.EventPurchase},
		{UserID: 1, ProductID: 2, Kind: core.EventView},
	}

	ctx := context.Background()
	snap, err := train.Build(ctx, catalog, events)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	mgr := snapshot.NewManager(store.NewMemoryStore(), len(catalog))
	if err := mgr.Save(ctx, snap); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mgr.Load(ctx); err != nil {
		t.Fatalf("Load: %v", err)
	}
	rec := New(catalog, mgr)

	got, err := rec.RecommendForUser(ctx, 1, 5)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("exhausted profile should yield an empty list, got %v", productIDs(got))
	}
}

func TestRecommendForUserZeroK(t *testing.T) {
	rec := newTestRecommender(t)

	got, err := rec.RecommendForUser(context.Background(), 1, 0)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("k=0 returned %d products", len(got))
	}
}

func TestRecommendForUserWithRuleFilter(t *testing.T) {
	catalog := core.Catalog{
		{ID: 1, Title: "Red Shoes", Price: 59.9},
		{ID: 2, Title: "Blue Shoes", Price: 79.9},
		{ID: 3, Title: "Red Hat", Price: 19.9},
	}
	rf, err := filter.NewRuleFilter(catalog, []string{`item.price > 70.0`})
	if err != nil {
		t.Fatalf("NewRuleFilter: %v", err)
	}
	rec := newTestRecommender(t, rf)

	got, err := rec.RecommendForUser(context.Background(), 1, 5)
	if err != nil {
		t.Fatalf("RecommendForUser: %v", err)
	}
	ids := productIDs(got)
	if len(ids) != 1 || ids[0] != 3 {
		t.Errorf("price rule should drop product 2, got %v", ids)
	}
}

func TestSimilarItems(t *testing.T) {
	rec := newTestRecommender(t)
	ctx := context.Background()

	got, err := rec.SimilarItems(ctx, 1, 5)
	if err != nil {
		t.Fatalf("SimilarItems: %v", err)
	}
	ids := productIDs(got)
	if len(ids) != 2 || ids[0] != 2 || ids[1] != 3 {
		t.Errorf("got products %v, want [2 3]", ids)
	}

	// 越界商品不是错误，返回空列表
	for _, bad := range []int64{0, -1, 99} {
		got, err := rec.SimilarItems(ctx, bad, 5)
		if err != nil {
			t.Fatalf("SimilarItems(%d): %v", bad, err)
		}
		if len(got) != 0 {
			t.Errorf("SimilarItems(%d) = %v, want empty", bad, productIDs(got))
		}
	}
}

func TestSearchProducts(t *testing.T) {
	rec := newTestRecommender(t)

	tests := []struct {
		name  string
		query string
		k     int
		want  []int64
	}{
		{"title match keeps catalog order", "shoes", 10, []int64{1, 2}},
		{"case insensitive", "SHOES", 10, []int64{1, 2}},
		{"truncated to k", "red", 1, []int64{1}},
		{"no match", "umbrella", 10, nil},
		{"zero k", "shoes", 0, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := productIDs(rec.SearchProducts(tt.query, tt.k))
			if len(got) != len(tt.want) {
				t.Fatalf("SearchProducts(%q, %d) = %v, want %v", tt.query, tt.k, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("SearchProducts(%q, %d) = %v, want %v", tt.query, tt.k, got, tt.want)
					break
				}
			}
		})
	}
}

func TestProductLookup(t *testing.T) {
	rec := newTestRecommender(t)

	if p, ok := rec.Product(2); !ok || p.Title != "Blue Shoes" {
		t.Errorf("Product(2) = (%+v, %v)", p, ok)
	}
	if _, ok := rec.Product(42); ok {
		t.Error("Product(42) should miss")
	}
}
