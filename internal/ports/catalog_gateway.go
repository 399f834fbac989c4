package ports

import (
	"context"

	"github.com/vietct/orderflow-client/internal/domain"
)

// ProductPageQuery — параметры запроса страницы каталога.
// Размер страницы и сортировка фиксируются конфигурацией шлюза,
// вызывающая сторона управляет только индексом и фильтром.
type ProductPageQuery struct {
	Page       int    // нулевой индекс страницы
	CategoryID string // пусто — без фильтра по категории
}

// CatalogGateway — чтение каталога у удалённого сервиса.
// Отсутствие товара — apierr.ErrNotFound, не (nil, nil).
type CatalogGateway interface {
	// ProductsPage — страница каталога (сортировка: сначала новые).
	ProductsPage(ctx context.Context, q ProductPageQuery) (domain.Page[domain.ProductSummary], error)

	// ProductByID — полная карточка товара.
	ProductByID(ctx context.Context, id string) (domain.ProductDetail, error)
}
