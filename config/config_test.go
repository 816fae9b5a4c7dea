package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
data:
  products: testdata/products.csv
  interactions: testdata/interactions.csv
model:
  backend: memory
server:
  addr: ":9000"
  default_k: 10
  rules:
    - 'item.price > 500.0'
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Products != "testdata/products.csv" {
		t.Errorf("products = %q", cfg.Data.Products)
	}
	if cfg.Model.Backend != "memory" {
		t.Errorf("backend = %q", cfg.Model.Backend)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.DefaultK != 10 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if len(cfg.Server.Rules) != 1 || cfg.Server.Rules[0] != `item.price > 500.0` {
		t.Errorf("rules = %v", cfg.Server.Rules)
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "{}\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Data.Products != "data/products.csv" {
		t.Errorf("default products = %q", cfg.Data.Products)
	}
	if cfg.Model.Backend != "file" || cfg.Model.Dir != "models" {
		t.Errorf("default model = %+v", cfg.Model)
	}
	if cfg.Server.Addr != ":8000" || cfg.Server.DefaultK != 5 {
		t.Errorf("default server = %+v", cfg.Server)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := Load(writeConfig(t, "data: [unclosed")); err == nil {
		t.Error("broken yaml should fail")
	}
}

func TestOpenStore(t *testing.T) {
	var cfg Config
	cfg.Model.Backend = "memory"
	st, err := cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore(memory): %v", err)
	}
	if st.Name() != "memory" {
		t.Errorf("store = %q", st.Name())
	}

	cfg.Model.Backend = "file"
	cfg.Model.Dir = t.TempDir()
	st, err = cfg.OpenStore()
	if err != nil {
		t.Fatalf("OpenStore(file): %v", err)
	}
	if st.Name() != "file" {
		t.Errorf("store = %q", st.Name())
	}

	cfg.Model.Backend = "cassandra"
	if _, err := cfg.OpenStore(); err == nil {
		t.Error("unknown backend should fail")
	}
}
