package queries

import (
	"errors"

	"github.com/RodrigoFK06/rapiditos/internal/core/domain/model/kernel"
	"github.com/RodrigoFK06/rapiditos/internal/pkg/guard"
)

var ErrGetRiderAssignmentsQueryIsNotConstructed = errors.New(
	"GetRiderAssignmentsQuery must be created via NewGetRiderAssignmentsQuery constructor",
)

// GetRiderAssignmentsQuery requests the assignment history of one rider.
type GetRiderAssignmentsQuery struct { //nolint:recvcheck //using for validation
	riderRef kernel.Ref

	guard guard.ConstructorGuard
}

// NewGetRiderAssignmentsQuery creates a query for the given rider's assignments.
func NewGetRiderAssignmentsQuery(riderRef kernel.Ref) (GetRiderAssignmentsQuery, error) {
	if err := riderRef.Validate(); err != nil {
		return GetRiderAssignmentsQuery{}, err
	}

	return GetRiderAssignmentsQuery{
		riderRef: riderRef,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetRiderAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetRiderAssignmentsQueryIsNotConstructed)
}

// RiderRef returns the requested rider reference.
func (q GetRiderAssignmentsQuery) RiderRef() kernel.Ref {
	return q.riderRef
}
