package config_test

import (
	"testing"
	"time"

	cfg "github.com/vietct/orderflow-client/config"
)

// TestLoadWithPrefix_Defaults — проверка наличия значений по умолчанию.
func TestLoadWithPrefix_Defaults(t *testing.T) {
	t.Parallel()

	c, err := cfg.LoadWithPrefix("SHOP_TEST_DEFAULTS")
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// API
	if c.API.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("API.BaseURL: want http://localhost:8080/api, got %q", c.API.BaseURL)
	}
	if c.API.Timeout != 10*time.Second {
		t.Fatalf("API.Timeout: want 10s, got %v", c.API.Timeout)
	}

	// Catalog
	if c.Catalog.PageSize != 9 {
		t.Fatalf("Catalog.PageSize: want 9, got %d", c.Catalog.PageSize)
	}
	if c.Catalog.Sort != "createdAt,DESC" {
		t.Fatalf("Catalog.Sort: want createdAt,DESC, got %q", c.Catalog.Sort)
	}

	// Metrics
	if c.Metrics.Enabled {
		t.Fatalf("Metrics.Enabled: want false, got true")
	}
	if c.Metrics.Addr != ":2112" {
		t.Fatalf("Metrics.Addr: want :2112, got %q", c.Metrics.Addr)
	}

	// Tracing
	if c.Tracing.Enabled {
		t.Fatalf("Tracing.Enabled: want false, got true")
	}
	if c.Tracing.ServiceName != "orderflow-client" || c.Tracing.Endpoint != "jaeger:4318" || c.Tracing.SampleRatio != 1 {
		t.Fatalf("Tracing defaults wrong: %+v", c.Tracing)
	}

	// Logger
	if c.Logger.IsProd {
		t.Fatalf("Logger.IsProd: want false, got true")
	}
}

// Меняем окружение.
func TestLoadWithPrefix_Overrides(t *testing.T) {
	const p = "SHOP_TEST_OVR"

	// API
	t.Setenv(p+"_API_BASE_URL", "https://shop.example.com/api")
	t.Setenv(p+"_API_TIMEOUT", "3s")

	// Catalog
	t.Setenv(p+"_CATALOG_PAGE_SIZE", "24")
	t.Setenv(p+"_CATALOG_SORT", "price,ASC")

	// Metrics
	t.Setenv(p+"_METRICS_ENABLED", "true")
	t.Setenv(p+"_METRICS_ADDR", ":9998")

	// Tracing
	t.Setenv(p+"_TRACING_OTEL_ENABLED", "true")
	t.Setenv(p+"_TRACING_OTEL_SERVICE_NAME", "svc")
	t.Setenv(p+"_TRACING_OTEL_ENDPOINT", "collector:4318")
	t.Setenv(p+"_TRACING_OTEL_SAMPLE_RATIO", "0.25")

	// Logger
	t.Setenv(p+"_LOGGER_IS_PROD", "true")

	c, err := cfg.LoadWithPrefix(p)
	if err != nil {
		t.Fatalf("LoadWithPrefix error: %v", err)
	}

	// Проверки
	if c.API.BaseURL != "https://shop.example.com/api" || c.API.Timeout != 3*time.Second {
		t.Fatalf("API overrides wrong: %+v", c.API)
	}
	if c.Catalog.PageSize != 24 || c.Catalog.Sort != "price,ASC" {
		t.Fatalf("Catalog overrides wrong: %+v", c.Catalog)
	}
	if !c.Metrics.Enabled || c.Metrics.Addr != ":9998" {
		t.Fatalf("Metrics overrides wrong: %+v", c.Metrics)
	}
	if !c.Tracing.Enabled || c.Tracing.ServiceName != "svc" || c.Tracing.Endpoint != "collector:4318" || c.Tracing.SampleRatio != 0.25 {
		t.Fatalf("Tracing overrides wrong: %+v", c.Tracing)
	}
	if !c.Logger.IsProd {
		t.Fatalf("Logger.IsProd override wrong: %+v", c.Logger)
	}
}

// Тоже меняем окружение — но с невалидным значением.
func TestLoadWithPrefix_InvalidValue_ReturnsError(t *testing.T) {
	const p = "SHOP_TEST_BAD"
	t.Setenv(p+"_API_TIMEOUT", "not-a-duration")

	if _, err := cfg.LoadWithPrefix(p); err == nil {
		t.Fatalf("expected error for invalid duration, got nil")
	}
}
