package ports

import (
	"context"

	"github.com/vietct/orderflow-client/internal/domain"
)

// OrderGateway — создание и чтение заказов у удалённого сервиса.
type OrderGateway interface {
	// Create — оформить заказ по провалидированному намерению.
	Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error)

	// ByID — заказ по идентификатору; apierr.ErrNotFound, если заказа нет.
	ByID(ctx context.Context, id string) (domain.Order, error)
}
