package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/shopkit/shoprec/core"
)

type itemsResponse struct {
	Items []core.Product `json:"items"`
}

type errorResponse struct {
	Detail string `json:"detail"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid product id"})
		return
	}
	p, ok := s.rec.Product(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Detail: "Not found"})
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleRecommendUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userID"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid user id"})
		return
	}
	items, err := s.rec.RecommendForUser(r.Context(), userID, s.queryK(r))
	if err != nil {
		s.log.Error().Err(err).Int64("user_id", userID).Msg("recommend failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		return
	}
	s.writeJSON(w, http.StatusOK, itemsResponse{Items: nonNil(items)})
}

func (s *Server) handleSimilar(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid product id"})
		return
	}
	items, err := s.rec.SimilarItems(r.Context(), productID, s.queryK(r))
	if err != nil {
		s.log.Error().Err(err).Int64("product_id", productID).Msg("similar failed")
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
		return
	}
	s.writeJSON(w, http.StatusOK, itemsResponse{Items: nonNil(items)})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "q is required"})
		return
	}
	k := s.queryKDefault(r, 10)
	s.writeJSON(w, http.StatusOK, itemsResponse{Items: nonNil(s.rec.SearchProducts(q, k))})
}

// queryK 解析 ?k=，缺失或非法时退回 defaultK。
func (s *Server) queryK(r *http.Request) int {
	return s.queryKDefault(r, s.defaultK)
}

func (s *Server) queryKDefault(r *http.Request, def int) int {
	raw := r.URL.Query().Get("k")
	if raw == "" {
		return def
	}
	k, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return k
}

// nonNil 保证空结果编码为 [] 而不是 null。
func nonNil(items []core.Product) []core.Product {
	if items == nil {
		return []core.Product{}
	}
	return items
}
