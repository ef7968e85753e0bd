package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/rider"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// CompleteOrderCommandHandler orchestrates order completion: the order's
// terminal transition plus the rider counter reconciliation and the client
// session cleanup, all in one transaction.
//
// The order transition is the primary effect. The rider and client writes
// are best-effort: a broken or missing secondary reference is logged and
// skipped, never a reason to leave the order incomplete.
type CompleteOrderCommandHandler struct {
	store      ports.DocumentStore
	orderRepo  ports.OrderRepository
	riderRepo  ports.RiderRepository
	clientRepo ports.ClientRepository
	logger     *slog.Logger
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(
	store ports.DocumentStore,
	orderRepo ports.OrderRepository,
	riderRepo ports.RiderRepository,
	clientRepo ports.ClientRepository,
	logger *slog.Logger,
) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		store:      store,
		orderRepo:  orderRepo,
		riderRepo:  riderRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

// Handle processes the completion command inside a store transaction.
//
// The rider and client documents are read before any write is staged; the
// rider's post-decrement counter is computed from the in-transaction read,
// never from state captured outside the attempt.
func (h CompleteOrderCommandHandler) Handle(ctx context.Context, command CompleteOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	return h.store.RunTransaction(ctx, func(tx ports.TxReader, w *ports.WriteSet) error {
		aggregate, err := h.orderRepo.GetInTx(tx, command.OrderRef())
		if err != nil {
			return err
		}

		if aggregate.Status() == order.Completed {
			return nil
		}

		// all reads happen here, before the first staged write

		var assignedRider *rider.Rider
		if riderRef := aggregate.RiderRef(); !riderRef.IsZero() {
			assignedRider, err = h.riderRepo.GetInTx(tx, riderRef)
			if errors.Is(err, errs.ErrObjectNotFound) {
				h.logger.Warn("rider missing on completion, skipping counter reconciliation",
					"order", aggregate.Ref().ID(), "rider", riderRef.ID())
				assignedRider = nil
			} else if err != nil {
				return err
			}
		}

		cleanupClient := false
		if clientRef := aggregate.ClientRef(); !clientRef.IsZero() {
			_, exists, err := tx.Get(clientRef)
			if err != nil {
				return err
			}
			if exists {
				cleanupClient = true
			} else {
				h.logger.Warn("client missing on completion, skipping session cleanup",
					"order", aggregate.Ref().ID(), "client", clientRef.ID())
			}
		}

		if err := aggregate.Complete(); err != nil {
			return err
		}

		h.orderRepo.StageCompletion(w, aggregate)
		if cleanupClient {
			h.clientRepo.StageSessionCleanup(w, aggregate.ClientRef())
		}
		if assignedRider != nil {
			h.riderRepo.StageCompletion(w, assignedRider, aggregate.DeliveryFee())
		}
		return nil
	})
}
