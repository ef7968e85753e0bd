package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// GetAllOrdersQueryHandler serves the dashboard's main order list.
type GetAllOrdersQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewGetAllOrdersQueryHandler creates a handler for the all-orders view.
func NewGetAllOrdersQueryHandler(orderRepo ports.OrderRepository) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{orderRepo: orderRepo}
}

// Handle retrieves every confirmed order, newest first.
func (h GetAllOrdersQueryHandler) Handle(ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders, err := h.orderRepo.GetAllAdminVisible(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]OrderResponse, 0, len(orders))
	for _, aggregate := range orders {
		responses = append(responses, NewOrderResponse(aggregate))
	}
	return responses, nil
}
