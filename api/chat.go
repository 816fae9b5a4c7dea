package api

import (
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/shopkit/shoprec/core"
)

// 聊天入口：正则/关键词级别的意图识别，够用即可，不做任何 NLP。
// 五类意图：问候、要推荐、找相似、查商品详情、兜底提示。

type chatRequest struct {
	Message string `json:"message"`
	UserID  *int64 `json:"user_id"`
}

type chatReply struct {
	Reply string `json:"reply"`
}

type intent int

const (
	intentFallback intent = iota
	intentGreet
	intentRecommend
	intentSimilar
	intentProductInfo
)

var (
	greetPattern  = regexp.MustCompile(`\b(hi|hello|hey|good (morning|afternoon|evening))\b`)
	numberPattern = regexp.MustCompile(`\d+`)
)

// classify 把用户消息归入意图之一，并尽量抽取消息里的商品 ID。
func classify(text string) (intent, int64, bool) {
	t := strings.ToLower(text)
	switch {
	case greetPattern.MatchString(t):
		return intentGreet, 0, false
	case strings.Contains(t, "recommend") || strings.Contains(t, "suggest"):
		return intentRecommend, 0, false
	case strings.Contains(t, "similar") || strings.Contains(t, "like product"):
		id, ok := firstInt(t)
		return intentSimilar, id, ok
	case strings.Contains(t, "info") || strings.Contains(t, "detail") || strings.Contains(t, "product"):
		id, ok := firstInt(t)
		return intentProductInfo, id, ok
	default:
		return intentFallback, 0, false
	}
}

func firstInt(text string) (int64, bool) {
	m := numberPattern.FindString(text)
	if m == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(m, 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid body"})
		return
	}
	userID := int64(1)
	if req.UserID != nil {
		userID = *req.UserID
	}

	kind, productID, hasID := classify(req.Message)
	switch kind {
	case intentGreet:
		s.writeJSON(w, http.StatusOK, chatReply{
			Reply: "Hi! I'm your shopping assistant. I can recommend products, show similar items or give product details.",
		})

	case intentRecommend:
		items, err := s.rec.RecommendForUser(r.Context(), userID, s.defaultK)
		if err != nil || len(items) == 0 {
			// 推荐失败或无信号时给出友好提示，而不是错误
			s.writeJSON(w, http.StatusOK, chatReply{
				Reply: "I don't have recommendations for you yet. Want to search by category instead?",
			})
			return
		}
		lines := []string{"Recommendations:"}
		lines = append(lines, formatItems(items)...)
		s.writeJSON(w, http.StatusOK, chatReply{Reply: strings.Join(lines, "\n")})

	case intentSimilar:
		if !hasID {
			productID = 1
		}
		items, err := s.rec.SimilarItems(r.Context(), productID, s.defaultK)
		if err != nil || len(items) == 0 {
			s.writeJSON(w, http.StatusOK, chatReply{
				Reply: fmt.Sprintf("I couldn't find products similar to %d.", productID),
			})
			return
		}
		lines := []string{fmt.Sprintf("Products similar to %d:", productID)}
		lines = append(lines, formatItems(items)...)
		s.writeJSON(w, http.StatusOK, chatReply{Reply: strings.Join(lines, "\n")})

	case intentProductInfo:
		if !hasID {
			productID = 1
		}
		p, ok := s.rec.Product(productID)
		if !ok {
			s.writeJSON(w, http.StatusOK, chatReply{
				Reply: fmt.Sprintf("I couldn't find product %d.", productID),
			})
			return
		}
		desc := p.Description
		if desc == "" {
			desc = "(no description)"
		}
		reply := strings.Join([]string{
			fmt.Sprintf("Product [%d]: %s", p.ID, p.Title),
			fmt.Sprintf("Category: %s", p.Category),
			fmt.Sprintf("Price: $%.2f", p.Price),
			fmt.Sprintf("Description: %s", desc),
		}, "\n")
		s.writeJSON(w, http.StatusOK, chatReply{Reply: reply})

	default:
		s.writeJSON(w, http.StatusOK, chatReply{
			Reply: "I didn't get that. Try: 'recommend me products', 'products similar to 1' or 'details of product 3'.",
		})
	}
}

func formatItems(items []core.Product) []string {
	lines := make([]string, 0, len(items))
	for _, p := range items {
		lines = append(lines, fmt.Sprintf("* [%d] %s - $%.2f", p.ID, p.Title, p.Price))
	}
	return lines
}
