package commands

import (
	"context"
	"time"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/assignment"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// AssignRiderCommandHandler orchestrates rider assignment. All validation
// runs against fresh in-transaction reads; the three writes (assignment
// record, order, rider) commit together or not at all.
//
// Idempotency: assignment on a completed or already-assigned order is a
// successful no-op. Reassignment is not supported; the existing binding wins.
type AssignRiderCommandHandler struct {
	store          ports.DocumentStore
	orderRepo      ports.OrderRepository
	riderRepo      ports.RiderRepository
	assignmentRepo ports.AssignmentRepository
}

// NewAssignRiderCommandHandler creates a handler for rider assignment.
func NewAssignRiderCommandHandler(
	store ports.DocumentStore,
	orderRepo ports.OrderRepository,
	riderRepo ports.RiderRepository,
	assignmentRepo ports.AssignmentRepository,
) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		store:          store,
		orderRepo:      orderRepo,
		riderRepo:      riderRepo,
		assignmentRepo: assignmentRepo,
	}
}

// Handle processes the assignment command inside a store transaction.
//
// The callback may run multiple times on write conflicts, so every check
// works on state read through tx in the current attempt; nothing is cached
// across attempts, including the freshly allocated assignment reference.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, command AssignRiderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.store.RunTransaction(ctx, func(tx ports.TxReader, w *ports.WriteSet) error {
		aggregate, err := h.orderRepo.GetInTx(tx, command.OrderRef())
		if err != nil {
			return err
		}

		if !aggregate.AdminVisible() {
			return errs.NewOperationForbiddenError("order", aggregate.Ref().ID())
		}
		if aggregate.Status() == order.Completed {
			// terminal; re-assignment must not resurrect the order
			return nil
		}
		if aggregate.AssignedFlag() && !aggregate.AssignmentRef().IsZero() {
			return nil
		}

		assignedRider, err := h.riderRepo.GetInTx(tx, command.RiderRef())
		if err != nil {
			return err
		}
		if !assignedRider.Active() {
			return errs.NewStateIsInvalidError("rider", "not active")
		}
		if !aggregate.HasClientRefs() {
			return errs.NewDataIsMissingError("order", "client/address refs")
		}

		assignmentRef := h.assignmentRepo.NewRef()
		record, err := assignment.NewAssignment(
			assignmentRef,
			aggregate.Ref(),
			assignedRider.Ref(),
			aggregate.ClientRef(),
			aggregate.ClientAddressRef(),
			time.Time{}, // zero: the repository stamps the server commit time
		)
		if err != nil {
			return err
		}

		if err := aggregate.Assign(assignedRider.Ref(), assignmentRef); err != nil {
			return err
		}

		h.assignmentRepo.StageCreate(w, record)
		h.orderRepo.StageAssignment(w, aggregate)
		h.riderRepo.StageAssignment(w, assignedRider, assignmentRef)
		return nil
	})
}
