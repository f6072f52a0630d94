package config

import (
	"testing"

	"github.com/arkline/orgsearch/internal/domain"
)

func validConfig() Config {
	return Config{
		HTTP:     HTTPConfig{Port: 8080},
		Server:   ServerConfig{Mode: "federation"},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}
}

func TestValidate_Valid(t *testing.T) {
	for _, mode := range []string{"federation", "nested"} {
		t.Run("mode="+mode, func(t *testing.T) {
			cfg := validConfig()
			cfg.Server.Mode = mode
			if err := cfg.Validate(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	for _, port := range []int{0, -1, 70000} {
		cfg := validConfig()
		cfg.HTTP.Port = port
		if err := cfg.Validate(); err == nil {
			t.Errorf("expected error for port %d", port)
		}
	}
}

func TestValidate_MissingAddrs(t *testing.T) {
	cfg := validConfig()
	cfg.Database.Addrs = nil
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_UnknownMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "hybrid"
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for unknown mode")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.Server.Mode != string(domain.ModeFederation) {
		t.Errorf("default mode = %q, want federation", cfg.Server.Mode)
	}
	if cfg.HTTP.ReadTimeoutSec != 10 || cfg.HTTP.WriteTimeoutSec != 10 || cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http defaults = %+v", cfg.HTTP)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("readiness timeout = %d, want 10", cfg.Database.ReadinessTimeout)
	}
	if cfg.Search.ScanPageSize != 500 {
		t.Errorf("scan page size = %d, want 500", cfg.Search.ScanPageSize)
	}
	if cfg.Search.NestedResultCap != 10000 {
		t.Errorf("nested result cap = %d, want 10000", cfg.Search.NestedResultCap)
	}
	if cfg.Search.StageTimeoutSec != 5 {
		t.Errorf("stage timeout = %d, want 5", cfg.Search.StageTimeoutSec)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Mode: "nested"},
		Search: SearchConfig{ScanPageSize: 100, NestedResultCap: 1000, StageTimeoutSec: 30},
	}
	cfg.ApplyDefaults()

	if cfg.Server.Mode != "nested" {
		t.Errorf("mode = %q, want nested", cfg.Server.Mode)
	}
	if cfg.Search.ScanPageSize != 100 || cfg.Search.NestedResultCap != 1000 || cfg.Search.StageTimeoutSec != 30 {
		t.Errorf("search settings overwritten: %+v", cfg.Search)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("ORGSEARCH_TEST_VAR", "redis-prod:6379")

	tests := []struct {
		name, in, want string
	}{
		{"plain variable", "addr: ${ORGSEARCH_TEST_VAR}", "addr: redis-prod:6379"},
		{"unset without default", "addr: ${ORGSEARCH_UNSET_VAR}", "addr: "},
		{"unset with default", "addr: ${ORGSEARCH_UNSET_VAR:-localhost:6379}", "addr: localhost:6379"},
		{"set wins over default", "addr: ${ORGSEARCH_TEST_VAR:-localhost:6379}", "addr: redis-prod:6379"},
		{"no expansion", "mode: federation", "mode: federation"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
				t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMode(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Mode = "nested"
	if cfg.Mode() != domain.ModeNested {
		t.Errorf("Mode() = %q, want nested", cfg.Mode())
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv() = %q, want local", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv() = %q, want prod", got)
	}
}
