package commands

import (
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrAssignRiderCommandIsNotConstructed = errors.New(
	"AssignRiderCommand must be created via NewAssignRiderCommand constructor",
)

// AssignRiderCommand requests the atomic binding of a rider to an order:
// an assignment record is created and both the order and the rider are
// updated in one transaction.
//
// Example:
//
//	orderRef, _ := kernel.OrderRef("a1b2c3")
//	riderRef, _ := kernel.RiderRef("r9x8y7")
//	cmd, err := NewAssignRiderCommand(orderRef, riderRef)
//	if err != nil {
//	    return err
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("assign rider: %w", err)
//	}
type AssignRiderCommand struct { //nolint:recvcheck //using for validation
	orderRef kernel.Ref
	riderRef kernel.Ref

	guard guard.ConstructorGuard
}

// NewAssignRiderCommand creates a command binding the given rider to the
// given order. Both references are required and must point into their
// respective collections.
func NewAssignRiderCommand(orderRef, riderRef kernel.Ref) (AssignRiderCommand, error) {
	command := AssignRiderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderRef(orderRef),
		command.setRiderRef(riderRef),
	); err != nil {
		return AssignRiderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignRiderCommand) Validate() error {
	return c.guard.Validate(ErrAssignRiderCommandIsNotConstructed)
}

// OrderRef returns the reference of the order to assign.
func (c AssignRiderCommand) OrderRef() kernel.Ref {
	return c.orderRef
}

// RiderRef returns the reference of the rider to bind.
func (c AssignRiderCommand) RiderRef() kernel.Ref {
	return c.riderRef
}

func (c *AssignRiderCommand) setOrderRef(orderRef kernel.Ref) error {
	if err := orderRef.Validate(); err != nil {
		return err
	}

	c.orderRef = orderRef
	return nil
}

func (c *AssignRiderCommand) setRiderRef(riderRef kernel.Ref) error {
	if err := riderRef.Validate(); err != nil {
		return err
	}

	c.riderRef = riderRef
	return nil
}
