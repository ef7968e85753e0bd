// Package assignmentrepo implements persistence of the immutable assignment
// records in the asigned_rider collection (historical spelling, part of the
// wire format).
package assignmentrepo

import (
	"context"
	"sort"

	"github.com/RodrigoFK06/rapiditos/internal/adapters/out/docrepo"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/assignment"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/errs"
)

// Field names of the asigned_rider collection; the spellings are the wire format.
const (
	fieldClientRef     = "client_ref"
	fieldClientAddress = "client_address"
	fieldOrderRef      = "order_ref"
	fieldRiderRef      = "rider_ref"
	fieldCreatedAt     = "created_at"
	fieldStatus        = "status"
)

// Repository implements ports.AssignmentRepository over a document store.
type Repository struct {
	store ports.DocumentStore
}

var _ ports.AssignmentRepository = (*Repository)(nil)

// NewRepository creates an assignment repository.
func NewRepository(store ports.DocumentStore) (*Repository, error) {
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	return &Repository{store: store}, nil
}

// NewRef allocates a reference for a fresh assignment record.
func (r *Repository) NewRef() kernel.Ref {
	return r.store.NewDocRef(kernel.CollectionAssignments)
}

// StageCreate stages the creation of an assignment record. A zero creation
// time on the record means "stamp the server commit time".
func (r *Repository) StageCreate(w *ports.WriteSet, record *assignment.Assignment) {
	doc := ports.Document{
		fieldClientRef:     record.ClientRef(),
		fieldClientAddress: record.ClientAddressRef(),
		fieldOrderRef:      record.OrderRef(),
		fieldRiderRef:      record.RiderRef(),
		fieldStatus:        record.Status(),
	}
	if record.CreatedAt().IsZero() {
		doc[fieldCreatedAt] = ports.ServerTimestamp()
	} else {
		doc[fieldCreatedAt] = record.CreatedAt()
	}
	w.Set(record.Ref(), doc)
}

// GetAllForRider retrieves the assignment records referencing the rider,
// newest first.
func (r *Repository) GetAllForRider(ctx context.Context, riderRef kernel.Ref) ([]*assignment.Assignment, error) {
	if err := riderRef.Validate(); err != nil {
		return nil, err
	}

	snaps, err := r.store.Query(ctx, kernel.CollectionAssignments, ports.Where(fieldRiderRef, riderRef))
	if err != nil {
		return nil, err
	}

	records := make([]*assignment.Assignment, 0, len(snaps))
	for _, snap := range snaps {
		record, err := toDomain(snap.Ref, snap.Data)
		if err != nil {
			continue
		}
		records = append(records, record)
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt().After(records[j].CreatedAt())
	})
	return records, nil
}

func toDomain(ref kernel.Ref, doc ports.Document) (*assignment.Assignment, error) {
	return assignment.RestoreAssignment(
		ref,
		docrepo.RefField(doc, fieldOrderRef),
		docrepo.RefField(doc, fieldRiderRef),
		docrepo.RefField(doc, fieldClientRef),
		docrepo.RefField(doc, fieldClientAddress),
		docrepo.StringField(doc, fieldStatus),
		docrepo.TimeField(doc, fieldCreatedAt),
	)
}
