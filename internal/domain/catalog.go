package domain

// Category — категория товара, как её видит интерфейс.
// Владелец — сущность (товар/позиция заказа), в которую категория вложена;
// отдельно категории не кэшируются.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description *string // nil — описание отсутствует
	CreatedAt   string
	UpdatedAt   string
}

// ProductSummary — карточка товара в списке каталога.
// Неизменяемый снимок состояния сервера на момент запроса:
// пересоздаётся при каждой успешной загрузке, на месте не мутируется.
type ProductSummary struct {
	ID           string
	Name         string
	Price        float64
	ImagePath    *string // nil — изображение отсутствует
	CategoryName string
}

// ProductDetail — полная карточка товара (список + описание, остаток, категория, даты).
type ProductDetail struct {
	ID          string
	Name        string
	Description *string
	Price       float64
	Stock       int
	ImagePath   *string
	Category    Category
	CreatedAt   string
	UpdatedAt   string
}

// Page — страница результатов с метаданными пагинации.
// Инварианты: 0 <= Number < max(TotalPages,1); len(Content) <= Size;
// First == (Number == 0); Last == (Number == TotalPages-1) при TotalPages > 0.
type Page[T any] struct {
	Content       []T
	Number        int // нулевой индекс страницы
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}
