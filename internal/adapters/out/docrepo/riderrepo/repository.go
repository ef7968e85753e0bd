// Package riderrepo implements the rider repository over the document store.
// The rider collection is owned by the client-facing app; this backend reads
// it and reconciles the assignment counters.
package riderrepo

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/rider"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Field names of the rider collection; the spellings are the wire format.
const (
	fieldName          = "name"
	fieldActive        = "active_rider"
	fieldActiveOrders  = "active_orders"
	fieldDeliveries    = "number_deliverys"
	fieldEarnings      = "earn"
	fieldAssignmentRef = "asigned_rider_ref"
	fieldCreatedAt     = "created_at"
)

// Repository implements ports.RiderRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

var _ ports.RiderRepository = (*Repository)(nil)

// NewRepository creates a rider repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// Get retrieves a rider by reference.
func (r *Repository) Get(ctx context.Context, ref kernel.Ref) (*rider.Rider, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	doc, ok, err := r.store.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("rider", ref.ID())
	}
	return toDomain(ref, doc)
}

// GetInTx retrieves a rider through a transaction reader.
func (r *Repository) GetInTx(tx ports.TxReader, ref kernel.Ref) (*rider.Rider, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	doc, ok, err := tx.Get(ref)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errs.NewObjectNotFoundError("rider", ref.ID())
	}
	return toDomain(ref, doc)
}

// StageAssignment stages the rider-side write of an assignment: the
// back-reference plus an atomic bump of the active-order counter.
func (r *Repository) StageAssignment(w *ports.WriteSet, aggregate *rider.Rider, assignmentRef kernel.Ref) {
	w.Update(aggregate.Ref(), ports.Patch{
		fieldAssignmentRef: assignmentRef,
		fieldActiveOrders:  ports.Increment(1),
	})
}

// StageCompletion stages the rider-side write of a completion. The
// active-order counter is written as an absolute value computed from the
// in-transaction read so the floor-at-zero rule holds even for riders whose
// stored counter drifted; the lifetime counters use atomic increments.
func (r *Repository) StageCompletion(w *ports.WriteSet, aggregate *rider.Rider, deliveryFee float64) {
	w.Update(aggregate.Ref(), ports.Patch{
		fieldAssignmentRef: ports.DeleteField(),
		fieldActiveOrders:  aggregate.NextActiveOrders(),
		fieldDeliveries:    ports.Increment(1),
		fieldEarnings:      ports.Increment(deliveryFee),
	})
}

func toDomain(ref kernel.Ref, doc ports.Document) (*rider.Rider, error) {
	return rider.RestoreRider(ref, rider.Restored{
		DisplayName:         docrepo.StringField(doc, fieldName),
		Active:              docrepo.BoolField(doc, fieldActive),
		ActiveOrders:        docrepo.IntField(doc, fieldActiveOrders),
		CompletedDeliveries: docrepo.IntField(doc, fieldDeliveries),
		Earnings:            docrepo.FloatField(doc, fieldEarnings),
		AssignmentRef:       docrepo.RefField(doc, fieldAssignmentRef),
		CreatedAt:           docrepo.TimeField(doc, fieldCreatedAt),
	})
}
