// Пакет validate — локальная проверка и нормализация пользовательского ввода
// перед оформлением заказа. Ошибки валидации до транспортного слоя не доходят.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/vietct/orderflow-client/internal/apierr"
	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/pkg/httpx"
)

// ClampQuantity — количество из сырого ввода.
// Нечисловой или пустой ввод — 1; дробное значение округляется;
// результат зажимается в [1, max(stock,1)].
func ClampQuantity(raw string, stock int) int {
	parsed, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(parsed) || math.IsInf(parsed, 0) {
		return 1
	}

	upper := stock
	if upper < 1 {
		upper = 1
	}
	return httpx.ClampInt(int(math.Round(parsed)), 1, upper)
}

// NormalizeUserID — пустой или пробельный идентификатор покупателя
// превращается в «отсутствует» (гостевой заказ), а не в пустую строку.
func NormalizeUserID(raw string) *string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// PurchaseInput — сырой ввод формы покупки.
type PurchaseInput struct {
	ProductID     string
	Stock         int    // остаток из карточки товара
	RawQuantity   string // как ввёл пользователь
	RawUserID     string
	PaymentMethod string // пусто — способ по умолчанию
}

// ComposeOrder — проверяет ввод и собирает намерение оформить заказ.
// При исчерпанном остатке или неизвестном способе оплаты возвращает
// apierr.ValidationError: запрос в этом случае не строится вовсе.
func ComposeOrder(in PurchaseInput) (domain.OrderDraft, error) {
	if in.ProductID == "" {
		return domain.OrderDraft{}, &apierr.ValidationError{Message: "Unknown product."}
	}
	if in.Stock <= 0 {
		return domain.OrderDraft{}, &apierr.ValidationError{Message: "Out of stock."}
	}

	method := domain.DefaultPaymentMethod
	if in.PaymentMethod != "" {
		parsed, err := domain.ParsePaymentMethod(in.PaymentMethod)
		if err != nil {
			return domain.OrderDraft{}, &apierr.ValidationError{Message: "Select a valid payment method."}
		}
		method = parsed
	}

	return domain.OrderDraft{
		UserID:        NormalizeUserID(in.RawUserID),
		PaymentMethod: method,
		ProductID:     in.ProductID,
		Quantity:      ClampQuantity(in.RawQuantity, in.Stock),
	}, nil
}

// LookupID — нормализация идентификатора для поиска заказа.
// Пустой или пробельный ввод отклоняется локально.
func LookupID(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &apierr.ValidationError{Message: "Enter an order ID."}
	}
	return trimmed, nil
}
