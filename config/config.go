package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type API struct {
	BaseURL string        `default:"http://localhost:8080/api" envconfig:"BASE_URL"`
	Timeout time.Duration `default:"10s" envconfig:"TIMEOUT"`
}

type Catalog struct {
	PageSize int    `default:"9" envconfig:"PAGE_SIZE"`
	Sort     string `default:"createdAt,DESC" envconfig:"SORT"`
}

type Metrics struct {
	Enabled bool   `default:"false" envconfig:"ENABLED"`
	Addr    string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"orderflow-client" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"jaeger:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1.0" envconfig:"OTEL_SAMPLE_RATIO"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	API     API
	Catalog Catalog
	Metrics Metrics
	Tracing Tracing
	Logger  Logger
}

// Load — конфигурация из окружения с префиксом SHOP.
func Load() (Config, error) {
	return LoadWithPrefix("SHOP")
}

// LoadWithPrefix — то же с произвольным префиксом (нужно тестам,
// чтобы не конфликтовать с окружением процесса).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
