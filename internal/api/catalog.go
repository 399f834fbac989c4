package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/httpx"
)

// ProductsPage — GET /products: страница каталога с фиксированным размером
// и сортировкой «сначала новые».
func (c *Client) ProductsPage(ctx context.Context, q ports.ProductPageQuery) (domain.Page[domain.ProductSummary], error) {
	query := httpx.PageQuery(q.Page, c.pageSize, c.sort, q.CategoryID)

	var raw pageResponse
	if err := c.do(ctx, "products_page", http.MethodGet, "/products", query, nil, &raw); err != nil {
		return domain.Page[domain.ProductSummary]{}, err
	}
	return toProductPage(raw), nil
}

// ProductByID — GET /products/{id}; 404 — apierr.ErrNotFound.
func (c *Client) ProductByID(ctx context.Context, id string) (domain.ProductDetail, error) {
	var raw productResponse
	if err := c.do(ctx, "product_by_id", http.MethodGet, "/products/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return domain.ProductDetail{}, err
	}
	return toProductDetail(raw), nil
}
