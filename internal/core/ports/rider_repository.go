package ports

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/rider"
)

// RiderRepository defines the persistence contract for rider aggregates.
// Riders are registered by the client-facing app; the coordinator reads them
// and stages counter reconciliation writes inside its transactions.
type RiderRepository interface {
	// Get retrieves a rider aggregate by reference.
	// Returns errs.ObjectNotFound when the document does not exist.
	Get(ctx context.Context, ref kernel.Ref) (*rider.Rider, error)

	// GetInTx retrieves a rider aggregate through a transaction reader.
	// Returns errs.ObjectNotFound when the document does not exist.
	GetInTx(tx TxReader, ref kernel.Ref) (*rider.Rider, error)

	// StageAssignment stages the rider-side write of an assignment: the
	// back-reference to the assignment record and an atomic +1 on the
	// active-order counter.
	StageAssignment(w *WriteSet, aggregate *rider.Rider, assignmentRef kernel.Ref)

	// StageCompletion stages the rider-side write of a completion: clear the
	// assignment back-reference, bump the lifetime delivery counter, credit
	// the delivery fee, and write the decremented active-order counter.
	//
	// The active-order decrement is computed from the aggregate, which must
	// have been read through GetInTx in the same transaction; the floor-at-zero
	// rule lives in rider.NextActiveOrders.
	StageCompletion(w *WriteSet, aggregate *rider.Rider, deliveryFee float64)
}
