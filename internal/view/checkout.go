package view

import (
	"context"
	"sync"

	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/validate"
)

// CheckoutView — форма покупки на карточке товара: ровно одна позиция,
// подтверждение только от сервера (никакого оптимистичного UI).
type CheckoutView struct {
	co      *Coordinator[domain.OrderDraft, domain.Order]
	product domain.ProductDetail

	mu        sync.Mutex
	lastOrder *domain.Order // последний подтверждённый заказ
}

// NewCheckoutView — конструктор; причина покупки — конкретная карточка товара.
func NewCheckoutView(gw ports.OrderGateway, product domain.ProductDetail, log ports.Logger, onChange func(State[domain.Order])) *CheckoutView {
	v := &CheckoutView{product: product}
	v.co = NewCoordinator("checkout", gw.Create, log, func(st State[domain.Order]) {
		// Отказ не трогает прежний успешный заказ: частичного применения нет.
		if st.Status == StatusSuccess {
			order := st.Value
			v.mu.Lock()
			v.lastOrder = &order
			v.mu.Unlock()
		}
		if onChange != nil {
			onChange(st)
		}
	})
	return v
}

// OutOfStock — остаток исчерпан: оформление недоступно целиком.
func (v *CheckoutView) OutOfStock() bool { return v.product.Stock <= 0 }

// CanSubmit — можно ли отправлять форму сейчас.
func (v *CheckoutView) CanSubmit() bool {
	return !v.OutOfStock() && v.co.State().Status != StatusPending
}

// PaymentOptions — допустимые способы оплаты в порядке отображения.
func (v *CheckoutView) PaymentOptions() []domain.PaymentMethod { return domain.PaymentMethods() }

// EstimatedTotal — предварительная сумма (цена × количество) для формы.
// Итоговую сумму считает сервер.
func (v *CheckoutView) EstimatedTotal(rawQuantity string) float64 {
	return v.product.Price * float64(validate.ClampQuantity(rawQuantity, v.product.Stock))
}

// Submit — проверить ввод и отправить заказ. Ошибка валидации возвращается
// сразу и до транспорта не доходит; при исчерпанном остатке запрос не
// строится вовсе.
func (v *CheckoutView) Submit(ctx context.Context, rawQuantity, rawUserID, paymentMethod string) error {
	draft, err := validate.ComposeOrder(validate.PurchaseInput{
		ProductID:     v.product.ID,
		Stock:         v.product.Stock,
		RawQuantity:   rawQuantity,
		RawUserID:     rawUserID,
		PaymentMethod: paymentMethod,
	})
	if err != nil {
		return err
	}

	v.co.Load(ctx, draft)
	return nil
}

// Order — последний подтверждённый сервером заказ; false, если его ещё нет.
func (v *CheckoutView) Order() (domain.Order, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.lastOrder == nil {
		return domain.Order{}, false
	}
	return *v.lastOrder, true
}

func (v *CheckoutView) Retry(ctx context.Context)  { v.co.Retry(ctx) }
func (v *CheckoutView) State() State[domain.Order] { return v.co.State() }
func (v *CheckoutView) Close()                     { v.co.Close() }
