package commands

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// UpdateOrderStatusCommandHandler applies the status facade: transitions
// that touch only the order document. No transaction is needed because
// there is no cross-entity invariant to protect.
//
// Entering Preparing generates the pickup PIN the restaurant hands the
// rider. PINs are not checked for collisions across open orders; a PIN is
// only ever matched within a single handoff.
type UpdateOrderStatusCommandHandler struct {
	orderRepo ports.OrderRepository
}

// NewUpdateOrderStatusCommandHandler creates a handler for the status facade.
func NewUpdateOrderStatusCommandHandler(orderRepo ports.OrderRepository) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{orderRepo: orderRepo}
}

// Handle loads the order, applies the state machine transition, and persists
// the mutated fields.
func (h UpdateOrderStatusCommandHandler) Handle(ctx context.Context, command UpdateOrderStatusCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	aggregate, err := h.orderRepo.Get(ctx, command.OrderRef())
	if err != nil {
		return err
	}
	if !aggregate.AdminVisible() {
		return errs.NewOperationForbiddenError("order", aggregate.Ref().ID())
	}

	switch command.Status() {
	case order.Preparing:
		err = aggregate.MarkPreparing(newPickupPIN())
	case order.Dispatching:
		err = aggregate.MarkDispatching()
	case order.Cancelled:
		err = aggregate.Cancel(time.Now())
	default:
		// unreachable: the command constructor admits only the three above
		err = errs.NewValueIsInvalidError("status")
	}
	if err != nil {
		return err
	}

	return h.orderRepo.Update(ctx, aggregate)
}

// newPickupPIN generates a 3-digit handoff code in [100, 999].
func newPickupPIN() string {
	return strconv.Itoa(rand.Intn(900) + 100)
}
