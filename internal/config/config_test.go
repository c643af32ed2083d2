package config

import "testing"

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Catalog: CatalogConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingCatalogAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Catalog: CatalogConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing catalog addrs")
	}
}

func TestValidate_OK(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Catalog: CatalogConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 10 {
		t.Errorf("expected WriteTimeoutSec=10, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Catalog.KeyPrefix != "catalog:" {
		t.Errorf("expected KeyPrefix='catalog:', got %q", cfg.Catalog.KeyPrefix)
	}
	if cfg.Catalog.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Catalog.ReadinessTimeout)
	}
	if cfg.Analytics.Subject != "search.events" {
		t.Errorf("expected Subject='search.events', got %q", cfg.Analytics.Subject)
	}
	if cfg.Search.TimeoutMs != 2000 {
		t.Errorf("expected TimeoutMs=2000, got %d", cfg.Search.TimeoutMs)
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:      HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Catalog:   CatalogConfig{KeyPrefix: "custom:", ReadinessTimeout: 15},
		Analytics: AnalyticsConfig{Subject: "custom.events"},
		Search:    SearchConfig{TimeoutMs: 500},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Catalog.KeyPrefix != "custom:" {
		t.Errorf("expected KeyPrefix='custom:', got %q", cfg.Catalog.KeyPrefix)
	}
	if cfg.Analytics.Subject != "custom.events" {
		t.Errorf("expected Subject='custom.events', got %q", cfg.Analytics.Subject)
	}
	if cfg.Search.TimeoutMs != 500 {
		t.Errorf("expected TimeoutMs=500, got %d", cfg.Search.TimeoutMs)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("UNISEARCH_TEST_ADDR", "redis:6379")

	in := []byte("addrs: [\"${UNISEARCH_TEST_ADDR}\"]\nprefix: ${UNISEARCH_TEST_PREFIX:-catalog:}\n")
	out := string(expandEnvVars(in))

	if out != "addrs: [\"redis:6379\"]\nprefix: catalog:\n" {
		t.Errorf("unexpected expansion:\n%s", out)
	}
}
