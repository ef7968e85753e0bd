package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// GetActiveOrdersQueryHandler serves the live board of in-flight orders.
type GetActiveOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetActiveOrdersQueryHandler creates a handler for the active-orders view.
func NewGetActiveOrdersQueryHandler(orderRepo ports.OrderRepository) GetActiveOrdersQueryHandler {
	return GetActiveOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle retrieves confirmed in-flight orders, newest first.
func (h GetActiveOrdersQueryHandler) Handle(ctx context.Context, query GetActiveOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, NewOrderResponse(aggregate))
	}
	return responses, nil
}
