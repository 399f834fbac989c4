package api

// Wire-форматы бэкенда. Наружу из пакета не выходят:
// презентация видит только нормализованные view-модели из internal/domain.

// pageResponse — страничный конверт Spring Data.
type pageResponse struct {
	Content       []productResponse `json:"content"`
	Number        int               `json:"number"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"totalElements"`
	TotalPages    int               `json:"totalPages"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
}

type categoryResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

type productResponse struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Price       float64           `json:"price"`
	Stock       int               `json:"stock"`
	ImagePath   *string           `json:"imagePath"`
	Category    *categoryResponse `json:"category"` // может быть null
	CreatedAt   string            `json:"createdAt"`
	UpdatedAt   string            `json:"updatedAt"`
}

type orderItemResponse struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	UserID      *string             `json:"userId"`
	Status      string              `json:"status"`
	TotalAmount float64             `json:"totalAmount"`
	CreatedAt   string              `json:"createdAt"`
	UpdatedAt   string              `json:"updatedAt"`
	Items       []orderItemResponse `json:"items"`
}

type createOrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// createOrderRequest — тело POST /orders. userId у гостевого заказа
// в JSON не попадает вовсе, не сериализуется как null.
type createOrderRequest struct {
	UserID        *string                  `json:"userId,omitempty"`
	PaymentMethod string                   `json:"paymentMethod"`
	Items         []createOrderItemRequest `json:"items"`
}
