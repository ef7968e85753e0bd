package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// GetOrdersByStatusQueryHandler serves the per-column views of the dashboard
// board (new, preparing, dispatching, completed, cancelled).
type GetOrdersByStatusQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetOrdersByStatusQueryHandler creates a handler for status-filtered views.
func NewGetOrdersByStatusQueryHandler(orderRepo ports.OrderRepository) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{orderRepo: orderRepo}
}

// Handle retrieves confirmed orders in the requested status, newest first.
func (h GetOrdersByStatusQueryHandler) Handle(ctx context.Context, query GetOrdersByStatusQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllInStatus(ctx, query.Status())
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, NewOrderResponse(aggregate))
	}
	return responses, nil
}
