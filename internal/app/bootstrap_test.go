package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/vietct/orderflow-client/config"
	"github.com/vietct/orderflow-client/internal/app"
)

// Сборка с выключенными метриками и трейсингом: никаких внешних зависимостей.
func TestBootstrap_Defaults(t *testing.T) {
	cfg := config.Config{
		API: config.API{
			BaseURL: "http://localhost:8080/api",
			Timeout: 5 * time.Second,
		},
		Catalog: config.Catalog{PageSize: 9, Sort: "createdAt,DESC"},
	}

	a, cleanup, err := app.Bootstrap(context.Background(), &cfg)
	if err != nil {
		t.Fatalf("Bootstrap error: %v", err)
	}
	defer cleanup()

	if a.Logger == nil {
		t.Fatal("Bootstrap must provide a logger")
	}
	if a.Catalog == nil || a.Orders == nil {
		t.Fatal("Bootstrap must provide both gateways")
	}
}

// Повторная сборка не должна падать на повторной регистрации метрик.
func TestBootstrap_Twice(t *testing.T) {
	cfg := config.Config{
		API:     config.API{BaseURL: "http://localhost:8080/api", Timeout: time.Second},
		Catalog: config.Catalog{PageSize: 9, Sort: "createdAt,DESC"},
	}

	for i := 0; i < 2; i++ {
		_, cleanup, err := app.Bootstrap(context.Background(), &cfg)
		if err != nil {
			t.Fatalf("Bootstrap #%d error: %v", i+1, err)
		}
		cleanup()
	}
}
