package queries

import (
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrWatchOrderQueryIsNotConstructed = errors.New(
	"WatchOrderQuery must be created via NewWatchOrderQuery constructor",
)

// WatchOrderQuery requests a live subscription to one order, so callers can
// observe transaction outcomes without polling.
type WatchOrderQuery struct { //nolint:recvcheck //using for validation
	orderRef kernel.Ref

	guard guard.ConstructorGuard
}

// NewWatchOrderQuery creates a subscription query for the given order.
func NewWatchOrderQuery(orderRef kernel.Ref) (WatchOrderQuery, error) {
	if err := orderRef.Validate(); err != nil {
		return WatchOrderQuery{}, err
	}

	return WatchOrderQuery{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q WatchOrderQuery) Validate() error {
	return q.guard.Validate(ErrWatchOrderQueryIsNotConstructed)
}

// OrderRef returns the order reference to subscribe to.
func (q WatchOrderQuery) OrderRef() kernel.Ref {
	return q.orderRef
}
