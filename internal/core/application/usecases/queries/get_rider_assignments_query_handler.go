package queries

import (
	"context"

	"github.com/RodrigoFK06/rapiditos/internal/core/ports"
)

// GetRiderAssignmentsQueryHandler serves a rider's assignment history,
// newest first.
type GetRiderAssignmentsQueryHandler struct {
	assignmentRepo ports.AssignmentRepository
}

// NewGetRiderAssignmentsQueryHandler creates a handler for assignment history lookups.
func NewGetRiderAssignmentsQueryHandler(assignmentRepo ports.AssignmentRepository) GetRiderAssignmentsQueryHandler {
	return GetRiderAssignmentsQueryHandler{assignmentRepo: assignmentRepo}
}

// Handle retrieves the rider's assignment records.
func (h GetRiderAssignmentsQueryHandler) Handle(ctx context.Context, query GetRiderAssignmentsQuery) ([]AssignmentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	records, err := h.assignmentRepo.GetAllForRider(ctx, query.RiderRef())
	if err != nil {
		return nil, err
	}

	responses := make([]AssignmentResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, NewAssignmentResponse(record))
	}
	return responses, nil
}
