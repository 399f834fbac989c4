package main

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/vietct/orderflow-client/internal/app"
	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/ports"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// fakeCatalog — каталог из одной страницы, без сети.
type fakeCatalog struct {
	page domain.Page[domain.ProductSummary]
}

func (f fakeCatalog) ProductsPage(_ context.Context, _ ports.ProductPageQuery) (domain.Page[domain.ProductSummary], error) {
	return f.page, nil
}

func (f fakeCatalog) ProductByID(_ context.Context, id string) (domain.ProductDetail, error) {
	return domain.ProductDetail{ID: id, Name: "Sencha", Price: 12.5, Stock: 5}, nil
}

func singlePageApp() *app.App {
	return &app.App{
		Logger: nopLogger{},
		Catalog: fakeCatalog{page: domain.Page[domain.ProductSummary]{
			Content:       []domain.ProductSummary{{ID: "p1", Name: "Sencha", Price: 12.5, CategoryName: "Tea"}},
			Number:        0,
			Size:          9,
			TotalElements: 1,
			TotalPages:    1,
			First:         true,
			Last:          true,
		}},
	}
}

// browseReturns — прогнать browse со сценарием команд; падение по таймауту,
// если цикл завис вместо чтения следующей команды.
func browseReturns(t *testing.T, script string) {
	t.Helper()

	done := make(chan error, 1)
	go func() {
		done <- browse(context.Background(), singlePageApp(), strings.NewReader(script))
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("browse returned error: %v", err)
		}
	case <-time.After(3 * time.Second):
		t.Fatalf("browse hung on script %q instead of prompting for the next command", script)
	}
}

// Команды, не начинающие загрузку, не должны блокировать цикл.
func TestBrowse_InvalidCommandKeepsPrompting(t *testing.T) {
	browseReturns(t, "zzz\nq\n")
}

func TestBrowse_PageBoundariesKeepPrompting(t *testing.T) {
	// Одна страница: и n, и p — отказ без запроса.
	browseReturns(t, "n\np\nq\n")
}

func TestBrowse_ProductCardKeepsPrompting(t *testing.T) {
	browseReturns(t, "1\nq\n")
}

func TestBrowse_EOFExits(t *testing.T) {
	browseReturns(t, "")
}
