package api

import (
	"net/http"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text    string
		want    intent
		wantID  int64
		wantHas bool
	}{
		{"Hello there", intentGreet, 0, false},
		{"hi", intentGreet, 0, false},
		{"good morning", intentGreet, 0, false},
		{"can you recommend shoes", intentRecommend, 0, false},
		{"suggest something for me", intentRecommend, 0, false},
		{"show me products similar to 2", intentSimilar, 2, true},
		{"similar items please", intentSimilar, 0, false},
		{"info about product 7", intentProductInfo, 7, true},
		{"details of product 3", intentProductInfo, 3, true},
		{"tell me more", intentFallback, 0, false},
		{"", intentFallback, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, id, has := classify(tt.text)
			if got != tt.want || id != tt.wantID || has != tt.wantHas {
				t.Errorf("classify(%q) = (%v, %d, %v), want (%v, %d, %v)",
					tt.text, got, id, has, tt.want, tt.wantID, tt.wantHas)
			}
		})
	}
}

func chatReplyOf(t *testing.T, body string) string {
	t.Helper()
	var reply chatReply
	if err := json.Unmarshal([]byte(body), &reply); err != nil {
		t.Fatalf("decode chat reply %q: %v", body, err)
	}
	return reply.Reply
}

func TestChat(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name    string
		body    string
		contain string
	}{
		{"greet", `{"message": "hello"}`, "shopping assistant"},
		{"recommend for default user", `{"message": "recommend me something"}`, "Recommendations:"},
		{"recommend unknown user", `{"message": "recommend me something", "user_id": 999}`, "* [1] Red Shoes"},
		{"similar", `{"message": "products similar to 1"}`, "Products similar to 1:"},
		{"similar out of range", `{"message": "products similar to 99"}`, "couldn't find products similar to 99"},
		{"product info", `{"message": "details of product 3"}`, "Product [3]: Red Hat"},
		{"product info no id defaults to 1", `{"message": "product details please"}`, "Product [1]: Red Shoes"},
		{"fallback", `{"message": "what is the weather"}`, "I didn't get that"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(t, h, http.MethodPost, "/chat", tt.body)
			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, body = %q", w.Code, w.Body.String())
			}
			if reply := chatReplyOf(t, w.Body.String()); !strings.Contains(reply, tt.contain) {
				t.Errorf("reply = %q, want it to contain %q", reply, tt.contain)
			}
		})
	}

	if w := doRequest(t, h, http.MethodPost, "/chat", "{not json"); w.Code != http.StatusBadRequest {
		t.Errorf("bad body status = %d, want 400", w.Code)
	}
}
