//go:build integration

// Пакет testutil — заглушка бэкенда магазина для интеграционных тестов:
// in-memory каталог и заказы за настоящим HTTP с wire-форматом Spring Data.
package testutil

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
)

// StubCategory — категория в ответах заглушки.
type StubCategory struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
}

// StubProduct — товар в ответах заглушки. Category == nil сериализуется
// как JSON null, как это делает реальный бэкенд.
type StubProduct struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	Price       float64       `json:"price"`
	Stock       int           `json:"stock"`
	ImagePath   *string       `json:"imagePath"`
	Category    *StubCategory `json:"category"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

type stubOrderItem struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	Quantity     int     `json:"quantity"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

type stubOrder struct {
	ID          string          `json:"id"`
	UserID      *string         `json:"userId"`
	Status      string          `json:"status"`
	TotalAmount float64         `json:"totalAmount"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
	Items       []stubOrderItem `json:"items"`
}

type createOrderItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderBody struct {
	UserID        *string           `json:"userId"`
	PaymentMethod string            `json:"paymentMethod"`
	Items         []createOrderItem `json:"items"`
}

// forcedReply — принудительный ответ на следующий запрос (ручка отказов).
type forcedReply struct {
	status int
	body   string // сырое тело; пусто — {"message": ...} не шлём
}

// StubBackend — HTTP-заглушка магазина поверх httptest.Server.
type StubBackend struct {
	srv *httptest.Server

	mu         sync.Mutex
	products   []StubProduct
	orders     map[string]stubOrder
	nextID     int
	forced     *forcedReply
	lastOrder  *createOrderBody // последнее принятое тело POST /orders
	lastChosen string           // способ оплаты последнего заказа
}

// NewStubBackend — поднять заглушку с посевом каталога.
func NewStubBackend(products ...StubProduct) *StubBackend {
	gin.SetMode(gin.TestMode)

	b := &StubBackend{
		products: products,
		orders:   make(map[string]stubOrder),
		nextID:   1,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(b.forcedMiddleware())

	r.GET("/products", b.listProducts)
	r.GET("/products/:id", b.getProduct)
	r.POST("/orders", b.createOrder)
	r.GET("/orders/:id", b.getOrder)

	b.srv = httptest.NewServer(r)
	return b
}

// URL — базовый адрес заглушки.
func (b *StubBackend) URL() string { return b.srv.URL }

// Close — остановить заглушку.
func (b *StubBackend) Close() { b.srv.Close() }

// FailNext — следующий запрос получит этот статус и сырое тело.
func (b *StubBackend) FailNext(status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.forced = &forcedReply{status: status, body: body}
}

// LastCreateBody — последнее принятое тело POST /orders; false, если заказов не было.
func (b *StubBackend) LastCreateBody() (userID *string, paymentMethod string, ok bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lastOrder == nil {
		return nil, "", false
	}
	return b.lastOrder.UserID, b.lastChosen, true
}

func (b *StubBackend) forcedMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		b.mu.Lock()
		forced := b.forced
		b.forced = nil
		b.mu.Unlock()

		if forced != nil {
			if forced.body != "" {
				c.Data(forced.status, "application/json", []byte(forced.body))
			} else {
				c.Status(forced.status)
			}
			c.Abort()
			return
		}
		c.Next()
	}
}

func (b *StubBackend) listProducts(c *gin.Context) {
	page := 0
	if v, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && v >= 0 {
		page = v
	}
	size := 9
	if v, err := strconv.Atoi(c.DefaultQuery("size", "9")); err == nil && v > 0 {
		size = v
	}
	categoryID := c.Query("categoryId")

	b.mu.Lock()
	filtered := make([]StubProduct, 0, len(b.products))
	for _, p := range b.products {
		if categoryID != "" && (p.Category == nil || p.Category.ID != categoryID) {
			continue
		}
		filtered = append(filtered, p)
	}
	b.mu.Unlock()

	total := len(filtered)
	totalPages := (total + size - 1) / size

	start := page * size
	if start > total {
		start = total
	}
	end := start + size
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"content":       filtered[start:end],
		"number":        page,
		"size":          size,
		"totalElements": total,
		"totalPages":    totalPages,
		"first":         page == 0,
		"last":          totalPages == 0 || page >= totalPages-1,
	})
}

func (b *StubBackend) getProduct(c *gin.Context) {
	id := c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.products {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
}

func (b *StubBackend) createOrder(c *gin.Context) {
	var body createOrderBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Malformed order payload"})
		return
	}
	if len(body.Items) != 1 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Order must contain exactly one item"})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	var product *StubProduct
	for i := range b.products {
		if b.products[i].ID == body.Items[0].ProductID {
			product = &b.products[i]
			break
		}
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
		return
	}

	// Имя и цену позиции фиксирует сервер, клиентскому вводу не доверяем.
	quantity := body.Items[0].Quantity
	order := stubOrder{
		ID:          fmt.Sprintf("ord-%d", b.nextID),
		UserID:      body.UserID,
		Status:      "PENDING",
		TotalAmount: product.Price * float64(quantity),
		CreatedAt:   "2024-01-01T00:00:00Z",
		UpdatedAt:   "2024-01-01T00:00:00Z",
		Items: []stubOrderItem{
			{
				ProductID:    product.ID,
				ProductName:  product.Name,
				Quantity:     quantity,
				PriceAtOrder: product.Price,
			},
		},
	}
	b.nextID++
	b.orders[order.ID] = order
	b.lastOrder = &body
	b.lastChosen = body.PaymentMethod

	c.JSON(http.StatusCreated, order)
}

func (b *StubBackend) getOrder(c *gin.Context) {
	id := c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	if order, ok := b.orders[id]; ok {
		c.JSON(http.StatusOK, order)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
}
