package api

import (
	"fmt"

	"github.com/vietct/orderflow-client/internal/domain"
)

// Нормализация wire-форматов в view-модели. Функции чистые, без побочных
// эффектов; опциональные поля становятся явным nil, не пустой строкой.

// fallbackCategoryName — замена для товара без категории. Осознанный
// fallback нормализации, не ошибка.
const fallbackCategoryName = "Uncategorized"

func toProductSummary(p productResponse) domain.ProductSummary {
	// Замена — только для отсутствующей категории; присланное сервером
	// имя сохраняется как есть, даже пустое.
	categoryName := fallbackCategoryName
	if p.Category != nil {
		categoryName = p.Category.Name
	}

	return domain.ProductSummary{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		ImagePath:    cloneOptional(p.ImagePath),
		CategoryName: categoryName,
	}
}

func toProductDetail(p productResponse) domain.ProductDetail {
	category := domain.Category{
		Name:      fallbackCategoryName,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
	if p.Category != nil {
		category.ID = p.Category.ID
		category.Name = p.Category.Name
		category.Slug = p.Category.Slug
		category.Description = cloneOptional(p.Category.Description)
	}

	return domain.ProductDetail{
		ID:          p.ID,
		Name:        p.Name,
		Description: cloneOptional(p.Description),
		Price:       p.Price,
		Stock:       p.Stock,
		ImagePath:   cloneOptional(p.ImagePath),
		Category:    category,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductPage(raw pageResponse) domain.Page[domain.ProductSummary] {
	content := make([]domain.ProductSummary, 0, len(raw.Content))
	for _, p := range raw.Content {
		content = append(content, toProductSummary(p))
	}

	return domain.Page[domain.ProductSummary]{
		Content:       content,
		Number:        raw.Number,
		Size:          raw.Size,
		TotalElements: raw.TotalElements,
		TotalPages:    raw.TotalPages,
		First:         raw.First,
		Last:          raw.Last,
	}
}

// toOrder — нормализация заказа. Статус вне замкнутого множества —
// ошибка на этой границе: такой заказ клиент отображать не умеет.
func toOrder(raw orderResponse) (domain.Order, error) {
	status, err := domain.ParseOrderStatus(raw.Status)
	if err != nil {
		return domain.Order{}, fmt.Errorf("order %s: %w", raw.ID, err)
	}

	items := make([]domain.OrderItem, 0, len(raw.Items))
	for _, it := range raw.Items {
		items = append(items, domain.OrderItem{
			ProductID:    it.ProductID,
			ProductName:  it.ProductName,
			Quantity:     it.Quantity,
			PriceAtOrder: it.PriceAtOrder,
		})
	}

	return domain.Order{
		ID:          raw.ID,
		UserID:      cloneOptional(raw.UserID),
		Status:      status,
		TotalAmount: raw.TotalAmount,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
		Items:       items,
	}, nil
}

// cloneOptional — копия опционального значения, чтобы view-модель
// не делила память с wire-структурой.
func cloneOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
