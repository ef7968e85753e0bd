package ports

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/assignment"
	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
)

// AssignmentRepository defines the persistence contract for the immutable
// assignment records binding riders to orders.
type AssignmentRepository interface {
	// NewRef allocates a reference for a fresh assignment record without
	// writing anything. Callers stage the record itself via StageCreate.
	NewRef() kernel.Ref

	// StageCreate stages the creation of an assignment record.
	StageCreate(w *WriteSet, record *assignment.Assignment)

	// GetAllForRider retrieves the assignment records referencing the rider,
	// newest first.
	GetAllForRider(ctx context.Context, riderRef kernel.Ref) ([]*assignment.Assignment, error)
}
