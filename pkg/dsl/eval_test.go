package dsl

import "testing"

func TestCompileAndEval(t *testing.T) {
	item := map[string]any{
		"title":    "Red Shoes",
		"category": "footwear",
		"price":    59.9,
		"score":    0.42,
	}
	user := map[string]any{"id": int64(7)}

	tests := []struct {
		name string
		expr string
		want bool
	}{
		{"numeric compare", `item.price > 100.0`, false},
		{"numeric compare hit", `item.price < 100.0`, true},
		{"string equality", `item.category == "footwear"`, true},
		{"string method", `item.title.contains("Shoes")`, true},
		{"logic and", `item.category == "footwear" && item.price > 200.0`, false},
		{"user field", `user.id == 7`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("Compile(%q): %v", tt.expr, err)
			}
			got, err := r.Eval(item, user)
			if err != nil {
				t.Fatalf("Eval(%q): %v", tt.expr, err)
			}
			if got != tt.want {
				t.Errorf("Eval(%q) = %v, want %v", tt.expr, got, tt.want)
			}
		})
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`item.price >`); err == nil {
		t.Error("broken expression should not compile")
	}
}

func TestEvalMissingKey(t *testing.T) {
	r, err := Compile(`item.brand == "acme"`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := r.Eval(map[string]any{"price": 1.0}, nil); err == nil {
		t.Error("missing key should surface as an evaluation error")
	}
}

func TestNonBoolResultIsFalse(t *testing.T) {
	r, err := Compile(`item.price + 1.0`)
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	got, err := r.Eval(map[string]any{"price": 1.0}, nil)
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	if got {
		t.Error("non-bool result must evaluate to false")
	}
}
