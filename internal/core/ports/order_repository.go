package ports

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are created by the client-facing app; this backend reads them,
// stages lifecycle writes inside transactions, and serves the admin views.
type OrderRepository interface {
	// Get retrieves an order aggregate by reference.
	// Returns errs.ObjectNotFound when the document does not exist.
	Get(ctx context.Context, ref kernel.Ref) (*order.Order, error)

	// GetInTx retrieves an order aggregate through a transaction reader.
	// Returns errs.ObjectNotFound when the document does not exist.
	GetInTx(tx TxReader, ref kernel.Ref) (*order.Order, error)

	// GetAllAdminVisible retrieves every confirmed order, newest first.
	GetAllAdminVisible(ctx context.Context) ([]*order.Order, error)

	// GetAllActive retrieves confirmed orders still in flight, newest first.
	GetAllActive(ctx context.Context) ([]*order.Order, error)

	// GetAllInStatus retrieves confirmed orders in the given status, newest first.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// StageAssignment stages the order-side write of a rider assignment:
	// the rider and assignment references plus the assigned flag.
	// The aggregate must already have Assign applied.
	StageAssignment(w *WriteSet, aggregate *order.Order)

	// StageCompletion stages the order-side write of a completion: terminal
	// status, inactive, and the delivery timestamp. An already-present
	// delivery timestamp is preserved; otherwise the server time is stamped.
	StageCompletion(w *WriteSet, aggregate *order.Order)

	// Update persists a status-facade mutation (status, pickup PIN, flags,
	// terminal timestamp) outside a transaction.
	Update(ctx context.Context, aggregate *order.Order) error

	// Watch subscribes to a single order document. The callback receives the
	// mapped aggregate, or nil when the document is missing or was deleted.
	Watch(ctx context.Context, ref kernel.Ref, fn func(*order.Order)) (Unsubscribe, error)
}
