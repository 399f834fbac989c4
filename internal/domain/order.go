package domain

import (
	"errors"
	"fmt"
)

// ErrUnknownStatus — статус заказа вне допустимого множества.
var ErrUnknownStatus = errors.New("unknown order status")

// ErrUnknownPaymentMethod — способ оплаты вне допустимого множества.
var ErrUnknownPaymentMethod = errors.New("unknown payment method")

// OrderStatus — статус заказа. Замкнутое множество: переходы происходят
// на стороне сервера, клиент их только наблюдает.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusCancelled OrderStatus = "CANCELLED"
	StatusShipped   OrderStatus = "SHIPPED"
)

// ParseOrderStatus — строгий разбор статуса: значение вне множества —
// ошибка на границе нормализации, а не «пустой» статус в интерфейсе.
func ParseOrderStatus(raw string) (OrderStatus, error) {
	switch OrderStatus(raw) {
	case StatusPending, StatusPaid, StatusCancelled, StatusShipped:
		return OrderStatus(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// PaymentMethod — способ оплаты, выбираемый при оформлении заказа.
type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentPayPal     PaymentMethod = "PAYPAL"
	PaymentApplePay   PaymentMethod = "APPLE_PAY"
)

// DefaultPaymentMethod — вариант по умолчанию (первый в списке).
const DefaultPaymentMethod = PaymentCreditCard

// PaymentMethods — допустимые способы оплаты в порядке отображения.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{PaymentCreditCard, PaymentPayPal, PaymentApplePay}
}

// ParsePaymentMethod — строгий разбор способа оплаты.
func ParsePaymentMethod(raw string) (PaymentMethod, error) {
	switch PaymentMethod(raw) {
	case PaymentCreditCard, PaymentPayPal, PaymentApplePay:
		return PaymentMethod(raw), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPaymentMethod, raw)
	}
}

// Label — человекочитаемая подпись способа оплаты.
func (m PaymentMethod) Label() string {
	switch m {
	case PaymentCreditCard:
		return "Credit card"
	case PaymentPayPal:
		return "PayPal"
	case PaymentApplePay:
		return "Apple Pay"
	default:
		return string(m)
	}
}

// OrderItem — позиция заказа. Имя и цена зафиксированы сервером в момент
// создания заказа и из каталога повторно не читаются.
type OrderItem struct {
	ProductID    string
	ProductName  string
	Quantity     int
	PriceAtOrder float64
}

// Order — заказ. Создаётся успешным вызовом оформления; дальше клиент его
// только перечитывает, никогда не изменяет.
type Order struct {
	ID          string
	UserID      *string // nil — гостевой заказ
	Status      OrderStatus
	TotalAmount float64
	CreatedAt   string
	UpdatedAt   string
	Items       []OrderItem
}

// Guest — признак гостевого заказа (без идентификатора покупателя).
func (o *Order) Guest() bool { return o.UserID == nil }

// OrderDraft — провалидированное намерение оформить заказ.
// Ровно одна позиция: цену и имя товара проставляет сервер.
type OrderDraft struct {
	UserID        *string // nil — гостевой заказ
	PaymentMethod PaymentMethod
	ProductID     string
	Quantity      int
}
