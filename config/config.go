// Package config 定义训练与服务进程共用的 YAML 配置。
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/shopkit/shoprec/core"
	"github.com/shopkit/shoprec/store"
)

// Config 是完整的进程配置（支持 YAML）。
type Config struct {
	Data struct {
		Products     string `yaml:"products"`     // 商品目录 CSV
		Interactions string `yaml:"interactions"` // 交互日志 CSV
	} `yaml:"data"`

	Model struct {
		Backend string `yaml:"backend"` // file / memory / redis
		Dir     string `yaml:"dir"`     // file 后端的制品目录
		Redis   struct {
			Addr string `yaml:"addr"`
			DB   int    `yaml:"db"`
		} `yaml:"redis"`
	} `yaml:"model"`

	Server struct {
		Addr     string   `yaml:"addr"`
		DefaultK int      `yaml:"default_k"`
		// Rules 是 CEL 业务规则，命中即从结果中剔除，
		// 例如 `item.price > 500.0`
		Rules []string `yaml:"rules"`
	} `yaml:"server"`
}

// Load 从 YAML 文件加载配置并填充默认值。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Data.Products == "" {
		c.Data.Products = "data/products.csv"
	}
	if c.Data.Interactions == "" {
		c.Data.Interactions = "data/interactions.csv"
	}
	if c.Model.Backend == "" {
		c.Model.Backend = "file"
	}
	if c.Model.Dir == "" {
		c.Model.Dir = "models"
	}
	if c.Server.Addr == "" {
		c.Server.Addr = ":8000"
	}
	if c.Server.DefaultK <= 0 {
		c.Server.DefaultK = 5
	}
}

// OpenStore 根据配置打开制品存储后端。
func (c *Config) OpenStore() (core.Store, error) {
	switch c.Model.Backend {
	case "file":
		return store.NewFileStore(c.Model.Dir)
	case "memory":
		return store.NewMemoryStore(), nil
	case "redis":
		return store.NewRedisStore(c.Model.Redis.Addr, c.Model.Redis.DB)
	default:
		return nil, fmt.Errorf("unknown model store backend: %s", c.Model.Backend)
	}
}
