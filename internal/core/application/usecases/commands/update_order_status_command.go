package commands

import (
	"errors"
	"fmt"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor",
)

// UpdateOrderStatusCommand requests a simple lifecycle transition that needs
// no cross-entity coordination: start of preparation, dispatch, cancellation.
//
// Completed is rejected at construction: completion carries mandatory rider
// and client side effects and must run through CompleteOrderCommand.
type UpdateOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderRef kernel.Ref
	status   order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a command moving the order to the
// given status.
func NewUpdateOrderStatusCommand(orderRef kernel.Ref, status order.Status) (UpdateOrderStatusCommand, error) {
	command := UpdateOrderStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderRef(orderRef),
		command.setStatus(status),
	); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to update.
func (c UpdateOrderStatusCommand) OrderRef() kernel.Ref {
	return c.orderRef
}

// Status returns the requested target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

func (c *UpdateOrderStatusCommand) setOrderRef(orderRef kernel.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *UpdateOrderStatusCommand) setStatus(status order.Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if status == order.Completed {
		return errs.NewOperationForbiddenErrorWithCause("status", status.String(),
			errors.New("completion has mandatory side effects and must use the completion command"))
	}
	if status == order.New {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("no transition leads back to %s", status))
	}

	c.status = status
	return nil
}
