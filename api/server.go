// Package api 是引擎之外的薄 HTTP 外层：路由、请求/响应整形与
// 聊天意图识别。所有推荐语义都在 service 包，这里只做换算与编码。
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	json "github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/shopkit/shoprec/service"
)

// Server 承载 HTTP 路由与处理器。
type Server struct {
	rec      *service.Recommender
	log      zerolog.Logger
	defaultK int
}

func NewServer(rec *service.Recommender, log zerolog.Logger, defaultK int) *Server {
	if defaultK <= 0 {
		defaultK = 5
	}
	return &Server{rec: rec, log: log, defaultK: defaultK}
}

// Router 构建路由。
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/health", s.handleHealth)
	r.Get("/products/{productID}", s.handleProduct)
	r.Get("/recommend/user/{userID}", s.handleRecommendUser)
	r.Get("/recommend/similar/{productID}", s.handleSimilar)
	r.Get("/search", s.handleSearch)
	r.Post("/chat", s.handleChat)
	return r
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, req)
		s.log.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("encode response")
	}
}
