package orderrepo

import (
	"context"
	"sort"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/order"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Repository implements ports.OrderRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

var _ ports.OrderRepository = (*Repository)(nil)

// NewRepository creates an order repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// Get retrieves an order by reference.
func (r *Repository) Get(ctx context.Context, ref kernel.Ref) (*order.Order, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	doc, ok, err := r.store.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", ref.ID())
	}
	return toDomain(ref, doc)
}

// GetInTx retrieves an order through a transaction reader.
func (r *Repository) GetInTx(tx ports.TxReader, ref kernel.Ref) (*order.Order, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	doc, ok, err := tx.Get(ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", ref.ID())
	}
	return toDomain(ref, doc)
}

// GetAllAdminVisible retrieves every confirmed order, newest first.
func (r *Repository) GetAllAdminVisible(ctx context.Context) ([]*order.Order, error) {
	return r.query(ctx, ports.Where(fieldAdminView, true))
}

// GetAllActive retrieves confirmed in-flight orders, newest first.
func (r *Repository) GetAllActive(ctx context.Context) ([]*order.Order, error) {
	return r.query(ctx, ports.Where(fieldAdminView, true), ports.Where(fieldActive, true))
}

// GetAllInStatus retrieves confirmed orders in the given status, newest first.
func (r *Repository) GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return r.query(ctx, ports.Where(fieldAdminView, true), ports.Where(fieldStatus, status.WireValue()))
}

func (r *Repository) query(ctx context.Context, filters ...ports.Filter) ([]*order.Order, error) {
	snaps, err := r.store.Query(ctx, kernel.CollectionOrders, filters...)
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		aggregate, err := toDomain(snap.Ref, snap.Data)
		if err != nil {
			// legacy documents with unknown statuses stay out of the admin views
			continue
		}
		orders = append(orders, aggregate)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt().After(orders[j].CreatedAt())
	})
	return orders, nil
}

// StageAssignment stages the order-side write of a rider assignment.
func (r *Repository) StageAssignment(w *ports.WriteSet, aggregate *order.Order) {
	w.Update(aggregate.Ref(), ports.Patch{
		fieldRiderRef:      aggregate.RiderRef(),
		fieldAssignmentRef: aggregate.AssignmentRef(),
		fieldAssigned:      true,
	})
}

// StageCompletion stages the order-side write of a completion. An existing
// delivery timestamp is kept; otherwise the server commit time is stamped.
func (r *Repository) StageCompletion(w *ports.WriteSet, aggregate *order.Order) {
	patch := ports.Patch{
		fieldStatus: order.Completed.WireValue(),
		fieldActive: false,
	}
	if delivered := aggregate.DeliveredAt(); delivered != nil {
		patch[fieldDeliveredAt] = *delivered
	} else {
		patch[fieldDeliveredAt] = ports.ServerTimestamp()
	}
	w.Update(aggregate.Ref(), patch)
}

// Update persists a status-facade mutation outside a transaction.
func (r *Repository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	patch := ports.Patch{
		fieldStatus:     aggregate.Status().WireValue(),
		fieldActive:     aggregate.Active(),
		fieldReadyToPay: aggregate.ReadyToPay(),
	}
	if pin := aggregate.PickupPIN(); pin != "" {
		patch[fieldPickupPIN] = pin
	}
	if delivered := aggregate.DeliveredAt(); delivered != nil {
		patch[fieldDeliveredAt] = *delivered
	}
	return r.store.Update(ctx, aggregate.Ref(), patch)
}

// Watch subscribes to a single order document. The callback receives nil when
// the document is missing, deleted, or no longer maps to a valid aggregate.
func (r *Repository) Watch(ctx context.Context, ref kernel.Ref, fn func(*order.Order)) (ports.Unsubscribe, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	return r.store.Watch(ctx, ref, func(doc ports.Document, exists bool) {
		if !exists {
			fn(nil)
			return
		}
		aggregate, err := toDomain(ref, doc)
		if err != nil {
			fn(nil)
			return
		}
		fn(aggregate)
	})
}
