package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// WatchOrderQueryHandler serves live order subscriptions. The callback
// receives the current read model immediately and again on every change;
// nil means the order is missing, deleted, or not visible to the admin
// surface (unconfirmed orders are hidden here too, matching GetOrderQuery).
type WatchOrderQueryHandler struct {
	orderRepo ports.OrderRepository
}

// NewWatchOrderQueryHandler creates a handler for live order subscriptions.
func NewWatchOrderQueryHandler(orderRepo ports.OrderRepository) WatchOrderQueryHandler {
	return WatchOrderQueryHandler{orderRepo: orderRepo}
}

// Handle subscribes onChange to the order. Callbacks are delivered
// sequentially; the returned Unsubscribe stops the stream and is safe to
// call more than once.
func (h WatchOrderQueryHandler) Handle(
	ctx context.Context,
	query WatchOrderQuery,
	onChange func(*OrderResponse),
) (ports.Unsubscribe, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return h.orderRepo.Watch(ctx, query.OrderRef(), func(aggregate *order.Order) {
		if aggregate == nil || !aggregate.AdminVisible() {
			onChange(nil)
			return
		}
		response := NewOrderResponse(aggregate)
		onChange(&response)
	})
}
