package view

import (
	"context"

	"github.com/vietct/orderflow-client/internal/domain"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/validate"
)

// OrderLookupView — экран поиска заказа по идентификатору.
// «Заказа нет» (StatusNotFound) и «ошибка, попробуйте ещё раз»
// (StatusFailure) — разные терминальные состояния.
type OrderLookupView struct {
	co *Coordinator[string, domain.Order]
}

// NewOrderLookupView — конструктор; onChange может быть nil.
func NewOrderLookupView(gw ports.OrderGateway, log ports.Logger, onChange func(State[domain.Order])) *OrderLookupView {
	return &OrderLookupView{
		co: NewCoordinator("order_lookup", gw.ByID, log, onChange),
	}
}

// Lookup — поиск по сырому вводу. Пустой идентификатор отклоняется локально:
// сетевой вызов не делается, возвращается apierr.ValidationError.
// Каждый новый поиск вытесняет результат предыдущего.
func (v *OrderLookupView) Lookup(ctx context.Context, rawID string) error {
	id, err := validate.LookupID(rawID)
	if err != nil {
		return err
	}

	v.co.Load(ctx, id)
	return nil
}

func (v *OrderLookupView) Retry(ctx context.Context)  { v.co.Retry(ctx) }
func (v *OrderLookupView) State() State[domain.Order] { return v.co.State() }
func (v *OrderLookupView) Close()                     { v.co.Close() }
