package view

import (
	"context"
	"sync"

	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/ports"
)

// ProductPage — конверт страницы каталога (сокращение для сигнатур).
type ProductPage = domain.Page[domain.ProductSummary]

// CatalogListView — экран списка каталога. Владеет индексом страницы и
// фильтром по категории; смена любого из них вытесняет висящий запрос.
type CatalogListView struct {
	co *Coordinator[ports.ProductPageQuery, ProductPage]

	mu         sync.Mutex
	pageIndex  int
	categoryID string
	lastPage   *ProductPage // последний успешный конверт
}

// NewCatalogListView — конструктор; onChange может быть nil.
func NewCatalogListView(gw ports.CatalogGateway, log ports.Logger, onChange func(State[ProductPage])) *CatalogListView {
	v := &CatalogListView{}
	v.co = NewCoordinator("catalog_list", gw.ProductsPage, log, func(st State[ProductPage]) {
		if st.Status == StatusSuccess {
			page := st.Value
			v.mu.Lock()
			v.lastPage = &page
			v.mu.Unlock()
		}
		if onChange != nil {
			onChange(st)
		}
	})
	return v
}

// LoadPage — загрузить страницу по индексу (отрицательный индекс — нулевая).
func (v *CatalogListView) LoadPage(ctx context.Context, page int) {
	if page < 0 {
		page = 0
	}

	v.mu.Lock()
	v.pageIndex = page
	q := ports.ProductPageQuery{Page: page, CategoryID: v.categoryID}
	v.mu.Unlock()

	v.co.Load(ctx, q)
}

// SetCategory — смена фильтра; список всегда начинается с нулевой страницы.
func (v *CatalogListView) SetCategory(ctx context.Context, categoryID string) {
	v.mu.Lock()
	v.categoryID = categoryID
	v.mu.Unlock()

	v.LoadPage(ctx, 0)
}

// Next — к следующей странице, если она есть.
func (v *CatalogListView) Next(ctx context.Context) bool {
	v.mu.Lock()
	controls := v.controlsLocked()
	target := v.pageIndex + 1
	v.mu.Unlock()

	if !controls.CanNext {
		return false
	}
	v.LoadPage(ctx, target)
	return true
}

// Previous — к предыдущей странице, если она есть.
func (v *CatalogListView) Previous(ctx context.Context) bool {
	v.mu.Lock()
	controls := v.controlsLocked()
	target := v.pageIndex - 1
	v.mu.Unlock()

	if !controls.CanPrevious {
		return false
	}
	v.LoadPage(ctx, target)
	return true
}

// Controls — аффордансы навигации по последнему успешному конверту.
func (v *CatalogListView) Controls() PageControls {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.controlsLocked()
}

func (v *CatalogListView) controlsLocked() PageControls {
	totalPages := 0
	if v.lastPage != nil {
		totalPages = v.lastPage.TotalPages
	}
	return Controls(v.pageIndex, totalPages)
}

// PageIndex — текущий нулевой индекс страницы.
func (v *CatalogListView) PageIndex() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.pageIndex
}

func (v *CatalogListView) Retry(ctx context.Context) { v.co.Retry(ctx) }
func (v *CatalogListView) State() State[ProductPage] { return v.co.State() }
func (v *CatalogListView) Close()                    { v.co.Close() }

// ProductDetailView — экран карточки товара.
type ProductDetailView struct {
	co *Coordinator[string, domain.ProductDetail]
}

// NewProductDetailView — конструктор; onChange может быть nil.
func NewProductDetailView(gw ports.CatalogGateway, log ports.Logger, onChange func(State[domain.ProductDetail])) *ProductDetailView {
	return &ProductDetailView{
		co: NewCoordinator("product_detail", gw.ProductByID, log, onChange),
	}
}

// Load — загрузить карточку; смена идентификатора вытесняет висящий запрос.
func (v *ProductDetailView) Load(ctx context.Context, id string) { v.co.Load(ctx, id) }

func (v *ProductDetailView) Retry(ctx context.Context)          { v.co.Retry(ctx) }
func (v *ProductDetailView) State() State[domain.ProductDetail] { return v.co.State() }
func (v *ProductDetailView) Close()                             { v.co.Close() }
