package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/vietct/orderflow-client/internal/apierr"
	"github.com/vietct/orderflow-client/internal/domain"
)

// Create — POST /orders. Ровно одна позиция {productId, quantity}:
// цену и имя товара проставляет сервер и возвращает их в ответе.
func (c *Client) Create(ctx context.Context, draft domain.OrderDraft) (domain.Order, error) {
	body := createOrderRequest{
		UserID:        draft.UserID,
		PaymentMethod: string(draft.PaymentMethod),
		Items: []createOrderItemRequest{
			{ProductID: draft.ProductID, Quantity: draft.Quantity},
		},
	}

	var raw orderResponse
	if err := c.do(ctx, "create_order", http.MethodPost, "/orders", nil, body, &raw); err != nil {
		// 404 на создание — не «ресурс отсутствует», а несозданный заказ.
		if errors.Is(err, apierr.ErrNotFound) {
			return domain.Order{}, &apierr.ServerError{
				StatusCode: http.StatusNotFound,
				Message:    "Order could not be created.",
			}
		}
		return domain.Order{}, err
	}
	return toOrder(raw)
}

// ByID — GET /orders/{id}; 404 — apierr.ErrNotFound.
func (c *Client) ByID(ctx context.Context, id string) (domain.Order, error) {
	var raw orderResponse
	if err := c.do(ctx, "order_by_id", http.MethodGet, "/orders/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return domain.Order{}, err
	}
	return toOrder(raw)
}
