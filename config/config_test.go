package config_test

import (
	"slices"
	"testing"
	"time"

	cfg "github.com/Gunvolt24/moa_wifi/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("WIFI_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Env
	if c.Env != "prod" {
		t.Fatalf("Env: want prod, got %q", c.Env)
	}

	// HTTP
	if c.HTTP.Addr != ":8080" {
		t.Fatalf("HTTP.Addr: want :8080, got %q", c.HTTP.Addr)
	}
	if c.HTTP.GinMode != "debug" {
		t.Fatalf("HTTP.GinMode: want debug, got %q", c.HTTP.GinMode)
	}
	if c.HTTP.ReadTimeout != 10*time.Second || c.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("HTTP timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.ReadHeaderTimeout != 5*time.Second || c.HTTP.IdleTimeout != 60*time.Second {
		t.Fatalf("HTTP header/idle timeouts wrong: %+v", c.HTTP)
	}
	if c.HTTP.GracefulTimeout != 5*time.Second {
		t.Fatalf("HTTP.GracefulTimeout: want 5s, got %v", c.HTTP.GracefulTimeout)
	}

	// Metrics
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "wifi-portal" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Postgres
	if c.Postgres.DSN == "" {
		t.Fatalf("Postgres.DSN should have default, got empty")
	}
	if c.Postgres.MaxConns != 10 {
		t.Fatalf("Postgres.MaxConns: want 10, got %d", c.Postgres.MaxConns)
	}

	// PMS
	if c.PMS.BaseURL == "" || c.PMS.Client != "MOA WiFi Portal" {
		t.Fatalf("PMS defaults wrong: %+v", c.PMS)
	}
	if c.PMS.Timeout != 15*time.Second {
		t.Fatalf("PMS.Timeout: want 15s, got %v", c.PMS.Timeout)
	}
	if !slices.Equal(c.PMS.States, []string{"Confirmed", "Started", "Processed"}) {
		t.Fatalf("PMS.States: want active states, got %v", c.PMS.States)
	}

	// Cache
	if c.Cache.BulkFetchInterval != time.Hour {
		t.Fatalf("Cache.BulkFetchInterval: want 1h, got %v", c.Cache.BulkFetchInterval)
	}
	if c.Cache.PrewarmOnStart {
		t.Fatalf("Cache.PrewarmOnStart: want false, got true")
	}

	// Sweep
	if !c.Sweep.Enabled || c.Sweep.Interval != time.Hour {
		t.Fatalf("Sweep defaults wrong: %+v", c.Sweep)
	}

	// WiFi
	if c.WiFi.MaxFastDevicesPerRoom != 3 {
		t.Fatalf("WiFi.MaxFastDevicesPerRoom: want 3, got %d", c.WiFi.MaxFastDevicesPerRoom)
	}
	if c.WiFi.NormalProfile != "normal" || c.WiFi.FastProfile != "fast" || !c.WiFi.SkipCleanForFast {
		t.Fatalf("WiFi defaults wrong: %+v", c.WiFi)
	}

	// Fallback (в проде обязан быть выключен по умолчанию)
	if c.Fallback.Enabled {
		t.Fatalf("Fallback.Enabled: want false, got true")
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "WIFI_TEST_OVR"

	t.Setenv(p+"_ENV", "demo")

	// HTTP
	t.Setenv(p+"_HTTP_ADDR", ":9999")
	t.Setenv(p+"_HTTP_GIN_MODE", "release")
	t.Setenv(p+"_HTTP_READ_TIMEOUT", "2s")

	// PMS
	t.Setenv(p+"_PMS_BASE_URL", "https://pms.example.com/api/connector/v1")
	t.Setenv(p+"_PMS_CLIENT_TOKEN", "ct-123")
	t.Setenv(p+"_PMS_STATES", "Confirmed,Started")

	// Cache / Sweep
	t.Setenv(p+"_CACHE_BULK_FETCH_INTERVAL", "30m")
	t.Setenv(p+"_SWEEP_ENABLED", "false")

	// WiFi / Fallback
	t.Setenv(p+"_WIFI_MAX_FAST_DEVICES_PER_ROOM", "5")
	t.Setenv(p+"_FALLBACK_ENABLED", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	if c.Env != "demo" {
		t.Fatalf("Env override failed: %q", c.Env)
	}
	if c.HTTP.Addr != ":9999" || c.HTTP.GinMode != "release" || c.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("HTTP overrides failed: %+v", c.HTTP)
	}
	if c.PMS.BaseURL != "https://pms.example.com/api/connector/v1" || c.PMS.ClientToken != "ct-123" {
		t.Fatalf("PMS overrides failed: %+v", c.PMS)
	}
	if !slices.Equal(c.PMS.States, []string{"Confirmed", "Started"}) {
		t.Fatalf("PMS.States override failed: %v", c.PMS.States)
	}
	if c.Cache.BulkFetchInterval != 30*time.Minute {
		t.Fatalf("Cache.BulkFetchInterval override failed: %v", c.Cache.BulkFetchInterval)
	}
	if c.Sweep.Enabled {
		t.Fatalf("Sweep.Enabled override failed")
	}
	if c.WiFi.MaxFastDevicesPerRoom != 5 {
		t.Fatalf("WiFi.MaxFastDevicesPerRoom override failed: %d", c.WiFi.MaxFastDevicesPerRoom)
	}
	if !c.Fallback.Enabled {
		t.Fatalf("Fallback.Enabled override failed")
	}
}

// Невалидная длительность — ошибка загрузки, а не тихий дефолт.
func TestLoadWithPrefix_InvalidDuration(t *testing.T) {
	const p = "WIFI_TEST_BAD"
	t.Setenv(p+"_CACHE_BULK_FETCH_INTERVAL", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration")
	}
}
