package queries

import (
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery requests a single order by reference.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderRef kernel.Ref

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the given order.
func NewGetOrderQuery(orderRef kernel.Ref) (GetOrderQuery, error) {
	if err := orderRef.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderRef: orderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderRef returns the requested order reference.
func (q GetOrderQuery) OrderRef() kernel.Ref {
	return q.orderRef
}
