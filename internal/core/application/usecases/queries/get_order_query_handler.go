package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// GetOrderQueryHandler serves single-order lookups for the admin dashboard.
// Orders the client app has not confirmed yet are indistinguishable from
// absent ones: both answer not-found, so the admin surface never leaks
// unconfirmed orders.
type GetOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrderQueryHandler creates a handler for single-order lookups.
func NewGetOrderQueryHandler(orderRepo ports.OrderRepository) GetOrderQueryHandler {
	return GetOrderQueryHandler{orderRepo: orderRepo}
}

// Handle retrieves the order and maps it to the read model.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	aggregate, err := h.orderRepo.Get(ctx, query.OrderRef())
	if err != nil {
		return OrderResponse{}, err
	}
	if !aggregate.AdminVisible() {
		return OrderResponse{}, errs.NewObjectNotFoundError("order", query.OrderRef().ID())
	}

	return NewOrderResponse(aggregate), nil
}
