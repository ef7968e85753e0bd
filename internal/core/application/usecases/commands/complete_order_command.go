package commands

import (
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand requests the terminal transition of an order to
// Completed, with the rider counter reconciliation and client session
// cleanup that completion carries.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderRef kernel.Ref

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command completing the given order.
func NewCompleteOrderCommand(orderRef kernel.Ref) (CompleteOrderCommand, error) {
	command := CompleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setOrderRef(orderRef); err != nil {
		return CompleteOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to complete.
func (c CompleteOrderCommand) OrderRef() kernel.Ref {
	return c.orderRef
}

func (c *CompleteOrderCommand) setOrderRef(orderRef kernel.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}
